// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zwilson999/vin-decoder/internal/config"
	"github.com/zwilson999/vin-decoder/internal/testutil"
)

func TestConfigDump(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Output: config.OutputJSON,
		Strict: true,
		UI:     config.UIConfig{ColorScheme: config.ColorSchemeLight},
	}
	res := runVIN(t, cfg, "config", "dump")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	for _, want := range []string{`output: "json"`, "strict: true", `color_scheme: "light"`} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("dump missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestConfigShow(t *testing.T) {
	t.Parallel()

	res := runVIN(t, &config.Config{Output: config.OutputTOML, UI: config.UIConfig{ColorScheme: config.ColorSchemeDark}}, "config", "show")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	for _, want := range []string{"Current Configuration", "toml", "color_scheme", "dark"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("show missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestConfigShow_LoadError(t *testing.T) {
	t.Parallel()

	loadErr := errors.New("broken config")
	var stdout, stderr strings.Builder
	app := NewApp(Dependencies{
		Config: staticConfigProvider{err: loadErr},
		Stdout: &stdout,
		Stderr: &stderr,
	})
	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs([]string{"config", "show"})

	err := rootCmd.ExecuteContext(t.Context())
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected load error, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no stdout, got %q", stdout.String())
	}
}

func TestConfigInitSetAndPath(t *testing.T) {
	// Not parallel: mutates the package-level config directory override.
	dir := t.TempDir()
	config.SetConfigDirOverride(dir)
	t.Cleanup(config.Reset)

	res := runVIN(t, nil, "config", "init")
	if res.err != nil {
		t.Fatalf("init: unexpected error: %v", res.err)
	}
	cfgPath := filepath.Join(dir, "config.cue")
	if _, err := os.Stat(cfgPath); err != nil {
		t.Fatalf("init did not create %s: %v", cfgPath, err)
	}

	res = runVIN(t, nil, "config", "set", "output", "json")
	if res.err != nil {
		t.Fatalf("set: unexpected error: %v", res.err)
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), `output: "json"`) {
		t.Errorf("config file missing the new value:\n%s", data)
	}

	res = runVIN(t, nil, "config", "set", "output", "yaml")
	if !errors.Is(res.err, config.ErrInvalidOutputFormat) {
		t.Errorf("expected ErrInvalidOutputFormat, got %v", res.err)
	}

	res = runVIN(t, nil, "config", "set", "colour", "dark")
	if !errors.Is(res.err, config.ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", res.err)
	}

	res = runVIN(t, nil, "config", "path")
	if res.err != nil {
		t.Fatalf("path: unexpected error: %v", res.err)
	}
	if !strings.Contains(res.stdout, cfgPath) {
		t.Errorf("path output missing %s:\n%s", cfgPath, res.stdout)
	}
}

func TestConfigSet_WritesLoadedFile(t *testing.T) {
	// Not parallel: mutates the config directory override and the environment.
	userDir := t.TempDir()
	config.SetConfigDirOverride(userDir)
	t.Cleanup(config.Reset)
	t.Cleanup(testutil.MustSetenv(t, "VIN_STRICT", "true"))

	cfgPath := filepath.Join(t.TempDir(), "custom.cue")
	if err := os.WriteFile(cfgPath, []byte(`output: "toml"`), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var stdout, stderr strings.Builder
	app := NewApp(Dependencies{Stdout: &stdout, Stderr: &stderr})
	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs([]string{"--config", cfgPath, "config", "set", "ui.verbose", "true"})

	if err := rootCmd.ExecuteContext(t.Context()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	for _, want := range []string{`output: "toml"`, "verbose: true", "strict: false"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("config file missing %q:\n%s", want, data)
		}
	}
	if _, err := os.Stat(filepath.Join(userDir, "config.cue")); !os.IsNotExist(err) {
		t.Errorf("user config file should not be written, stat err = %v", err)
	}
}
