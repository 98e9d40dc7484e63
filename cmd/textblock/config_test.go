package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig(viper.New(), "", nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("cfg=%+v, want defaults %+v", *cfg, *DefaultConfig())
	}
}

func TestLoadConfig_FileEnvOverridePrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "block.yaml")
	data := "text: from-file\nx: 1\ny: 2\nz: 3\nlog_level: warn\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TEXTBLOCK_Y", "20")
	t.Setenv("TEXTBLOCK_TEXT", "from-env")

	cfg, err := LoadConfig(viper.New(), path, map[string]any{"text": "from-flag"})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Config{Text: "from-flag", X: 1, Y: 20, Z: 3, LogLevel: "warn"}
	if *cfg != want {
		t.Fatalf("cfg=%+v, want %+v", *cfg, want)
	}
}

func TestLoadConfig_SearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "textblock.yaml"), []byte("text: abc\nz: 9\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)

	cfg, err := LoadConfig(viper.New(), "", nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Text != "abc" || cfg.Z != 9 {
		t.Fatalf("cfg=%+v, want text=abc z=9", *cfg)
	}
}

func TestLoadConfig_ExplicitMissingFileFails(t *testing.T) {
	_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}
