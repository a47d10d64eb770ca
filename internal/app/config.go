// Package app provides the application initialization and wiring.
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/gefyra/gefyra/internal/adapters/out/telemetry"
	"github.com/gefyra/gefyra/internal/domain"
	"github.com/gefyra/gefyra/internal/usecase/network"
)

// EnvPrefix prefixes every environment override, e.g. GEFYRA_NETWORK_NAME.
const EnvPrefix = "GEFYRA"

// Config holds the application configuration.
type Config struct {
	Network struct {
		Name   string   `mapstructure:"name"`
		Driver string   `mapstructure:"driver"`
		Labels []string `mapstructure:"labels"` // key=value, added to created networks
	} `mapstructure:"network"`

	Ownership struct {
		Key string `mapstructure:"key"`
	} `mapstructure:"ownership"`

	Docker struct {
		Host string `mapstructure:"host"` // empty: DOCKER_HOST or the platform default
	} `mapstructure:"docker"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	Telemetry telemetry.Config `mapstructure:"telemetry"`
}

// NetworkConfig returns the use case configuration derived from cfg.
func (c Config) NetworkConfig() (network.Config, error) {
	labels, err := parseLabels(c.Network.Labels)
	if err != nil {
		return network.Config{}, err
	}
	return network.Config{
		NetworkName: c.Network.Name,
		Driver:      c.Network.Driver,
		Ownership:   domain.NewOwnership(c.Ownership.Key),
		Labels:      labels,
	}, nil
}

func parseLabels(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	labels := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: network.labels entry %q must be key=value", domain.ErrInvalidConfig, pair)
		}
		labels[key] = value
	}
	return labels, nil
}

// initConfig loads configuration from fs.
func initConfig(fs afero.Fs, configPath string) (Config, error) {
	v := viper.New()
	if fs != nil {
		v.SetFs(fs)
	}
	if err := loadConfig(v, configPath); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.Network.Name) == "" {
		return Config{}, fmt.Errorf("%w: network.name must not be empty", domain.ErrInvalidConfig)
	}
	if _, err := parseLabels(cfg.Network.Labels); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("network.name", "gefyra")
	v.SetDefault("network.driver", domain.DefaultDriver)
	v.SetDefault("network.labels", []string{})
	v.SetDefault("ownership.key", domain.LabelManaged)
	v.SetDefault("docker.host", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size", 10)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.auth_token", "")
	v.SetDefault("telemetry.traces", true)
	v.SetDefault("telemetry.metrics", true)
	v.SetDefault("telemetry.trace_sample_rate", 1.0)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}
