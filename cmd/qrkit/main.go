package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/qrkit/internal/camera"
	"github.com/h0rv/qrkit/internal/config"
	"github.com/h0rv/qrkit/internal/domain"
	"github.com/h0rv/qrkit/internal/permission"
	"github.com/h0rv/qrkit/internal/qr"
	"github.com/h0rv/qrkit/internal/tui"
	"github.com/spf13/cobra"
)

var (
	// CLI flags
	configFlag  string
	framesFlag  string
	logFileFlag string
	screenFlag  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qrkit",
		Short: "Terminal QR code scanner and generator",
		Long: `qrkit scans QR codes from a camera feed and generates QR codes from text.

The camera is a directory of frames. Point any frame grabber at it, e.g.:
  ffmpeg -f v4l2 -i /dev/video0 -vf fps=4 ~/.qrkit/frames/%05d.jpg

Camera access is granted on first use according to permission.on_request
and can be changed with 'qrkit permission'.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", config.DefaultPath(), "Path to config file.")
	rootCmd.PersistentFlags().StringVar(&framesFlag, "frames", "", "Frames directory used as the camera. Overrides camera.frames_dir.")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "", "Write diagnostics to this file. Overrides log.file.")
	rootCmd.Flags().StringVar(&screenFlag, "screen", "", "Open directly on a screen: camera or generator.")

	rootCmd.AddCommand(newGenerateCmd(), newScanCmd(), newPermissionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies persistent flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if framesFlag != "" {
		cfg.Camera.FramesDir = config.ExpandHome(framesFlag)
	}
	return cfg, nil
}

func generatorParams(cfg *config.Config) qr.Params {
	return qr.Params{
		Size:       cfg.Generator.Size,
		Foreground: cfg.Generator.Foreground,
		Background: cfg.Generator.Background,
		Recovery:   cfg.Generator.Recovery,
	}
}

func parseScreen(name string) (domain.Screen, error) {
	switch strings.ToLower(name) {
	case "", "home":
		return domain.ScreenHome, nil
	case "camera":
		return domain.ScreenCamera, nil
	case "generator", "qrgenerator":
		return domain.ScreenQRGenerator, nil
	}
	return "", fmt.Errorf("unknown screen %q (must be 'camera' or 'generator')", name)
}

func run(cmd *cobra.Command, args []string) error {
	start, err := parseScreen(screenFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if logFileFlag != "" {
		cfg.Log.File = config.ExpandHome(logFileFlag)
	}

	// The TUI owns the terminal; diagnostics go to a file or nowhere
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "qrkit")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cam := camera.NewDirCamera(cfg.Camera.FramesDir, cfg.Camera.Extensions, camera.NewZXingDecoder())
	defer cam.Close()

	perms := permission.NewFileStore(cfg.Permission.GrantsFile, cfg.Camera.FramesDir, cfg.Permission.OnRequest)

	deps := tui.Deps{
		Camera:         cam,
		Permissions:    perms,
		Params:         generatorParams(cfg),
		CaptureQuality: cfg.Camera.CaptureQuality,
		Source:         cfg.Camera.FramesDir,
	}

	app := tui.NewAppModel(deps, context.Background(), start)

	// Run Bubble Tea program
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}
