package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/h0rv/qrkit/internal/qr"
	"github.com/h0rv/qrkit/internal/store"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		out   string
		size  int
		fg    string
		bg    string
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "generate <text>...",
		Short: "Render text as a QR code",
		Long: `Render text as a QR code in the terminal, or as a PNG with --out.

Arguments are joined with single spaces and encoded verbatim.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			state := store.NewGeneratorState()
			state.SetText(strings.Join(args, " "))
			if err := state.Generate(); err != nil {
				return err
			}

			if cmd.Flags().Changed("size") {
				cfg.Generator.Size = size
			}
			if fg != "" {
				cfg.Generator.Foreground = fg
			}
			if bg != "" {
				cfg.Generator.Background = bg
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			params := generatorParams(cfg)

			img, err := qr.Encode(state.Text(), params)
			if err != nil {
				return err
			}

			if out == "" {
				if plain {
					fmt.Fprint(cmd.OutOrStdout(), img.String())
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), img.Terminal())
				}
				return nil
			}

			data, err := img.PNG()
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d)\n", out, params.Size, params.Size)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write a PNG to this path instead of printing.")
	cmd.Flags().IntVar(&size, "size", 0, "PNG size in pixels. Overrides generator.size.")
	cmd.Flags().StringVar(&fg, "fg", "", "Foreground colour (name, #rgb or #rrggbb).")
	cmd.Flags().StringVar(&bg, "bg", "", "Background colour (name, #rgb or #rrggbb).")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print with block characters only, no colours.")

	return cmd
}
