package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureColor(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNoColor := color.Output, color.NoColor
	color.Output, color.NoColor = &buf, true
	t.Cleanup(func() { color.Output, color.NoColor = prevOut, prevNoColor })
	return &buf
}

func TestShow_PrintsSampleWithFlags(t *testing.T) {
	buf := captureColor(t)

	cmd := buildShowCmd()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Produce")
	assert.Contains(t, out, "LABEL")
	assert.Contains(t, out, "Apple")
	assert.Contains(t, out, "header")
	assert.Contains(t, out, "disabled")
}

func TestValidate_ReportsEachFile(t *testing.T) {
	buf := captureColor(t)
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte("items:\n  - {id: a, label: A}\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("items:\n  - {id: a, label: A}\n  - {id: a, label: B}\n"), 0o644))

	cmd := buildValidateCmd()
	cmd.SetArgs([]string{good, bad})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")

	out := buf.String()
	assert.Contains(t, out, "OK "+good)
	assert.Contains(t, out, "FAIL "+bad)
}

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := buildRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--strategy", "multiple", "--drag", "drop-indicator"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "multiple", cfg.List.SelectionStrategy)
	assert.Equal(t, "drop-indicator", cfg.List.AllowDragDrop)
}
