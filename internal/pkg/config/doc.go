// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from YAML files and RSA_CRYPTO_* environment variables through viper,
// then validated with go-playground/validator before anything else uses them.
package config
