package main

import (
	"fmt"

	"github.com/h0rv/qrkit/internal/camera"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <image>...",
		Short: "Decode QR codes from image files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoder := camera.NewZXingDecoder()
			missing := 0

			for _, path := range args {
				payload, ok, err := camera.DecodeFile(path, decoder)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if !ok {
					missing++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: no QR code found\n", path)
					continue
				}
				if len(args) == 1 {
					fmt.Fprintln(cmd.OutOrStdout(), payload)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, payload)
				}
			}

			if missing == len(args) {
				return fmt.Errorf("no QR code found")
			}
			return nil
		},
	}
}
