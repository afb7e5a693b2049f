// Package config wires together file, environment and flag configuration.
package config

import (
	"fmt"
	"strings"

	"ubench/internal/format"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; missing files are fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.ubench")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("UBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Set defaults
	viper.SetDefault("rounds", 50)
	viper.SetDefault("sign_digits", 4)
	viper.SetDefault("units", "")
	viper.SetDefault("threshold", 10.0)
	viper.SetDefault("history_file", ".ubench/history.db")
	viper.SetDefault("verbose", false)

	// Config file is optional; ignore a missing one.
	_ = viper.ReadInConfig()
}

// Validate checks configuration values and fails fast with a descriptive
// error before any round runs.
func Validate() error {
	var errs []string

	if rounds := viper.GetInt("rounds"); rounds < 1 {
		errs = append(errs, fmt.Sprintf("rounds must be at least 1, got: %d", rounds))
	}
	if digits := viper.GetInt("sign_digits"); digits < 0 {
		errs = append(errs, fmt.Sprintf("sign_digits must not be negative, got: %d", digits))
	}
	if _, err := format.ParseUnit(viper.GetString("units")); err != nil {
		errs = append(errs, err.Error())
	}
	if threshold := viper.GetFloat64("threshold"); threshold <= 0 {
		errs = append(errs, fmt.Sprintf("threshold must be positive, got: %v", threshold))
	}
	if viper.GetString("history_file") == "" {
		errs = append(errs, "history_file must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
