package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/h0rv/qrkit/internal/domain"
	"github.com/h0rv/qrkit/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config and state at a temp dir for the duration of a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	configFlag = filepath.Join(dir, "config.yaml")
	framesFlag = filepath.Join(dir, "frames")
	t.Setenv("QRKIT_GRANTS_FILE", filepath.Join(dir, "permissions.yaml"))
	t.Cleanup(func() {
		configFlag = ""
		framesFlag = ""
	})
	return dir
}

func TestParseScreen(t *testing.T) {
	tests := map[string]domain.Screen{
		"":          domain.ScreenHome,
		"home":      domain.ScreenHome,
		"camera":    domain.ScreenCamera,
		"Generator": domain.ScreenQRGenerator,
	}
	for in, want := range tests {
		got, err := parseScreen(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseScreen("settings")
	assert.Error(t, err)
}

func TestGenerateAndScan(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "code.png")

	gen := newGenerateCmd()
	var stdout bytes.Buffer
	gen.SetOut(&stdout)
	gen.SetArgs([]string{"--out", out, "--size", "256", "hello", "world"})
	require.NoError(t, gen.Execute())
	assert.Contains(t, stdout.String(), "Wrote")

	scan := newScanCmd()
	stdout.Reset()
	scan.SetOut(&stdout)
	scan.SetArgs([]string{out})
	require.NoError(t, scan.Execute())
	assert.Equal(t, "hello world", strings.TrimSpace(stdout.String()))
}

func TestGenerate_WhitespaceRejected(t *testing.T) {
	isolate(t)

	gen := newGenerateCmd()
	gen.SetOut(&bytes.Buffer{})
	gen.SetErr(&bytes.Buffer{})
	gen.SetArgs([]string{"   "})
	err := gen.Execute()
	assert.ErrorIs(t, err, store.ErrEmptyInput)
}

func TestGenerate_SizeFlagValidated(t *testing.T) {
	dir := isolate(t)

	gen := newGenerateCmd()
	gen.SetOut(&bytes.Buffer{})
	gen.SetErr(&bytes.Buffer{})
	gen.SetArgs([]string{"--out", filepath.Join(dir, "code.png"), "--size", "10", "hello"})
	err := gen.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generator.size must be at least 21")
	assert.NoFileExists(t, filepath.Join(dir, "code.png"))
}

func TestGenerate_Terminal(t *testing.T) {
	isolate(t)

	gen := newGenerateCmd()
	var stdout bytes.Buffer
	gen.SetOut(&stdout)
	gen.SetArgs([]string{"hello"})
	require.NoError(t, gen.Execute())
	assert.Contains(t, stdout.String(), "▀")
}

func TestPermissionCommands(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "frames"), 0o755))

	run := func(args ...string) string {
		cmd := newPermissionCmd()
		var stdout bytes.Buffer
		cmd.SetOut(&stdout)
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
		return stdout.String()
	}

	assert.Contains(t, run("status"), "denied")
	assert.Contains(t, run("grant"), "granted")
	assert.Contains(t, run("status"), "granted")
	assert.Contains(t, run("revoke"), "blocked")
	assert.Contains(t, run("reset"), "reset")
	assert.Contains(t, run("status"), "denied")
}

func TestPermissionStatus_NoDevice(t *testing.T) {
	isolate(t)

	cmd := newPermissionCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"status"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "unavailable")
}
