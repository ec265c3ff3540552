package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable that overrides a setting,
// e.g. RSA_CRYPTO_PORT or RSA_CRYPTO_LOGGER_LOG_LEVEL.
const EnvPrefix = "RSA_CRYPTO"

// RestConfig holds the settings of the REST host application
type RestConfig struct {
	Port            string         `mapstructure:"port" validate:"required,numeric"`
	AllowedOrigins  []string       `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`
	ShutdownTimeout time.Duration  `mapstructure:"shutdown_timeout" validate:"gt=0"`
	MaxBodyBytes    int64          `mapstructure:"max_body_bytes" validate:"gt=0"`
	Logger          LoggerSettings `mapstructure:"logger"`
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return nil
}

func restDefaults() map[string]any {
	logger := DefaultLoggerSettings()
	return map[string]any{
		"port":               "8080",
		"allowed_origins":    []string{"*"},
		"shutdown_timeout":   "15s",
		"max_body_bytes":     int64(1 << 20),
		"logger.log_level":   logger.LogLevel,
		"logger.log_type":    logger.LogType,
		"logger.file_path":   "",
		"logger.max_size":    0,
		"logger.max_backups": 0,
		"logger.max_age":     0,
	}
}

// NewViper returns a viper instance seeded with defaults and bound to RSA_CRYPTO_* environment variables.
func NewViper(defaults map[string]any) *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// InitializeRestConfig loads the REST configuration from configPath, applies environment overrides and validates it.
// An empty configPath uses defaults and environment variables only.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := NewViper(restDefaults())

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
