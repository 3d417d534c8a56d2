package main

import (
	"fmt"

	"github.com/h0rv/qrkit/internal/permission"
	"github.com/spf13/cobra"
)

// newPermissionCmd plays the role of the OS settings app for camera access.
func newPermissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permission",
		Short: "Show or change camera access",
	}

	storeFor := func() (*permission.FileStore, error) {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		return permission.NewFileStore(cfg.Permission.GrantsFile, cfg.Camera.FramesDir, cfg.Permission.OnRequest), nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the camera permission status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := storeFor()
			if err != nil {
				return err
			}
			status, err := s.Check(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", s.Device(), status)
			return nil
		},
	})

	set := func(use, short string, status permission.Status) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := storeFor()
				if err != nil {
					return err
				}
				if err := s.Set(status); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", s.Device(), status)
				return nil
			},
		}
	}
	cmd.AddCommand(
		set("grant", "Allow camera access", permission.Granted),
		set("revoke", "Block camera access", permission.Blocked),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the stored answer so the next use asks again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := storeFor()
			if err != nil {
				return err
			}
			if err := s.Reset(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: reset\n", s.Device())
			return nil
		},
	})

	return cmd
}
