package commands

import (
	"fmt"

	"github.com/MGTheTrain/rsa-crypto-core/internal/pkg/config"
	"github.com/MGTheTrain/rsa-crypto-core/internal/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Viper keys of the persistent logging flags; RSA_CRYPTO_LOG_LEVEL etc. override them.
const (
	logLevelKey = "log_level"
	logTypeKey  = "log_type"
	logFileKey  = "log_file"
)

// bindLoggerFlags registers the logging flags on rootCmd and returns a viper instance bound to them.
func bindLoggerFlags(rootCmd *cobra.Command) (*viper.Viper, error) {
	defaults := config.DefaultLoggerSettings()
	v := config.NewViper(map[string]any{
		logLevelKey: defaults.LogLevel,
		logTypeKey:  defaults.LogType,
		logFileKey:  "",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", defaults.LogLevel, "Log level (info, debug, warning, error, critical)")
	flags.String("log-type", defaults.LogType, "Log type (console, file)")
	flags.String("log-file", "", "Log file path, required with --log-type file")

	for key, flag := range map[string]string{logLevelKey: "log-level", logTypeKey: "log-type", logFileKey: "log-file"} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	return v, nil
}

// setupLogger initializes the process logger from the flag and environment values held by v.
func setupLogger(v *viper.Viper) (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel:   v.GetString(logLevelKey),
		LogType:    v.GetString(logTypeKey),
		FilePath:   v.GetString(logFileKey),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
