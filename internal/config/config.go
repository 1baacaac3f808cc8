package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/impero-dev/impero/internal/branding"
	"github.com/impero-dev/impero/internal/generator"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyDescription    = "description"
	KeyCSS            = "css"
	KeyJS             = "js"
	KeyCopyEnv        = "copy_env"
	KeyInstallDeps    = "install_deps"
	KeyPackageManager = "package_manager"
)

// Keys lists every recognized key in display order.
var Keys = []string{KeyDescription, KeyCSS, KeyJS, KeyCopyEnv, KeyInstallDeps, KeyPackageManager}

// PackageManagers are the supported values of KeyPackageManager.
var PackageManagers = []string{"npm", "yarn"}

// Dir returns the path to the Impero config directory (~/.impero/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.impero/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyCopyEnv, true)
	viper.SetDefault(KeyInstallDeps, true)
	viper.SetDefault(KeyPackageManager, "npm")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// PackageManager returns the configured package manager binary name.
func PackageManager() string {
	return viper.GetString(KeyPackageManager)
}

// Set validates and writes a config key-value pair, then saves the config file.
func Set(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func validate(key, value string) error {
	switch key {
	case KeyDescription:
		return nil
	case KeyCSS:
		_, err := generator.ParseCSS(value)
		return err
	case KeyJS:
		_, err := generator.ParseJS(value)
		return err
	case KeyCopyEnv, KeyInstallDeps:
		if value != "true" && value != "false" {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		return nil
	case KeyPackageManager:
		for _, pm := range PackageManagers {
			if value == pm {
				return nil
			}
		}
		return fmt.Errorf("%s must be one of %v, got %q", key, PackageManagers, value)
	default:
		return fmt.Errorf("unknown config key %q (known: %v)", key, Keys)
	}
}
