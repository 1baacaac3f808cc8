package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestSetAndGet(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Cleanup(viper.Reset)

	Load()
	if got := PackageManager(); got != "npm" {
		t.Errorf("PackageManager() default = %q, want %q", got, "npm")
	}
	if !GetBool(KeyCopyEnv) {
		t.Error("copy_env should default to true")
	}

	if err := Set(KeyPackageManager, "yarn"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got := PackageManager(); got != "yarn" {
		t.Errorf("PackageManager() = %q, want %q", got, "yarn")
	}

	data, err := os.ReadFile(filepath.Join(home, ".impero", "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if len(data) == 0 {
		t.Error("config file should not be empty")
	}
}

func TestSetRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(viper.Reset)

	tests := []struct {
		key   string
		value string
	}{
		{KeyPackageManager, "pnpm"},
		{KeyCopyEnv, "maybe"},
		{KeyCSS, "less"},
		{KeyJS, "typescript"},
		{"colour", "blue"},
	}
	for _, tt := range tests {
		if err := Set(tt.key, tt.value); err == nil {
			t.Errorf("Set(%q, %q) should fail", tt.key, tt.value)
		}
	}

	if _, err := os.Stat(FilePath()); !os.IsNotExist(err) {
		t.Errorf("rejected values should not write %s", FilePath())
	}
}

func TestSetAcceptsLanguageNamesAndKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(viper.Reset)

	Load()
	for _, tt := range []struct{ key, value string }{
		{KeyCSS, "stylus"},
		{KeyCSS, "Sass (SCSS)"},
		{KeyJS, "Vanilla"},
	} {
		if err := Set(tt.key, tt.value); err != nil {
			t.Errorf("Set(%q, %q) error: %v", tt.key, tt.value, err)
		}
	}
	if got := Get(KeyCSS); got != "Sass (SCSS)" {
		t.Errorf("Get(css) = %q, want %q", got, "Sass (SCSS)")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("IMPERO_CSS", "stylus")
	t.Cleanup(viper.Reset)

	Load()
	if got := Get(KeyCSS); got != "stylus" {
		t.Errorf("Get(css) = %q, want %q", got, "stylus")
	}
}
