package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultConfigDir returns the directory searched for gefyra.{yml,toml}.
// Uses $XDG_CONFIG_HOME/gefyra, falling back to ~/.config/gefyra.
func DefaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gefyra")
	}
	return filepath.Join(".config", "gefyra")
}

// DefaultLogPath returns the log file used when file logging is enabled
// without an explicit path.
func DefaultLogPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "gefyra", "gefyra.log")
	}
	return filepath.Join(os.TempDir(), "gefyra.log")
}

// ConfigureViper sets up viper with the config file search paths.
// An explicit path wins; otherwise gefyra.yml or gefyra.toml is looked up in
// the user config dir and then the current directory.
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.SetConfigName("gefyra")
	v.AddConfigPath(DefaultConfigDir())
	v.AddConfigPath(".")
}
