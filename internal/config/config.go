// Package config loads qrkit settings from defaults, an optional YAML file
// and QRKIT_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Camera     CameraConfig     `yaml:"camera"`
	Permission PermissionConfig `yaml:"permission"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Log        LogConfig        `yaml:"log"`
}

type CameraConfig struct {
	FramesDir      string   `yaml:"frames_dir"`
	CaptureQuality float64  `yaml:"capture_quality"`
	Extensions     []string `yaml:"extensions"`
}

type PermissionConfig struct {
	GrantsFile string `yaml:"grants_file"`
	OnRequest  string `yaml:"on_request"` // grant | deny
}

type GeneratorConfig struct {
	Size       int    `yaml:"size"`
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Recovery   string `yaml:"recovery"` // low | medium | high | highest
}

type LogConfig struct {
	File string `yaml:"file"`
}

// Default returns the built-in configuration rooted at the user's home directory.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".qrkit")

	return &Config{
		Camera: CameraConfig{
			FramesDir:      filepath.Join(base, "frames"),
			CaptureQuality: 0.5,
			Extensions:     []string{".jpg", ".jpeg", ".png"},
		},
		Permission: PermissionConfig{
			GrantsFile: filepath.Join(base, "permissions.yaml"),
			OnRequest:  "grant",
		},
		Generator: GeneratorConfig{
			Size:       200,
			Foreground: "black",
			Background: "white",
			Recovery:   "medium",
		},
	}
}

// DefaultPath returns the config file path used when --config is not given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "qrkit", "config.yaml")
}

// Load builds the configuration. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, err
		}
	}

	cfg.loadFromEnv()
	cfg.expandPaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("QRKIT_FRAMES_DIR"); v != "" {
		c.Camera.FramesDir = v
	}
	if v := os.Getenv("QRKIT_CAPTURE_QUALITY"); v != "" {
		if q, err := strconv.ParseFloat(v, 64); err == nil {
			c.Camera.CaptureQuality = q
		}
	}
	if v := os.Getenv("QRKIT_GRANTS_FILE"); v != "" {
		c.Permission.GrantsFile = v
	}
	if v := os.Getenv("QRKIT_PERMISSION_ON_REQUEST"); v != "" {
		c.Permission.OnRequest = v
	}
	if v := os.Getenv("QRKIT_QR_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Generator.Size = n
		}
	}
	if v := os.Getenv("QRKIT_LOG_FILE"); v != "" {
		c.Log.File = v
	}
}

func (c *Config) expandPaths() {
	c.Camera.FramesDir = ExpandHome(c.Camera.FramesDir)
	c.Permission.GrantsFile = ExpandHome(c.Permission.GrantsFile)
	c.Log.File = ExpandHome(c.Log.File)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func (c *Config) Validate() error {
	if c.Camera.FramesDir == "" {
		return fmt.Errorf("camera.frames_dir is required")
	}

	if c.Camera.CaptureQuality <= 0 || c.Camera.CaptureQuality > 1 {
		return fmt.Errorf("camera.capture_quality must be in (0, 1], got %v", c.Camera.CaptureQuality)
	}

	if len(c.Camera.Extensions) == 0 {
		return fmt.Errorf("camera.extensions must not be empty")
	}

	if c.Permission.GrantsFile == "" {
		return fmt.Errorf("permission.grants_file is required")
	}

	if c.Permission.OnRequest != "grant" && c.Permission.OnRequest != "deny" {
		return fmt.Errorf("invalid permission.on_request: %s (must be 'grant' or 'deny')", c.Permission.OnRequest)
	}

	if c.Generator.Size < 21 {
		return fmt.Errorf("generator.size must be at least 21, got %d", c.Generator.Size)
	}

	switch strings.ToLower(c.Generator.Recovery) {
	case "low", "medium", "high", "highest":
	default:
		return fmt.Errorf("invalid generator.recovery: %s", c.Generator.Recovery)
	}

	return nil
}
