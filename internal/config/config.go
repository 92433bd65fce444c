// Package config loads application configuration from file and
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database   DatabaseConfig
	Categories []string
	Log        LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// defaultCategories is the built-in category catalog. It is configuration,
// not learned state: deployments override it in the config file.
var defaultCategories = []string{
	"Income",
	"Groceries",
	"Dining",
	"Transport",
	"Utilities",
	"Rent",
	"Shopping",
	"Health",
	"Entertainment",
	"Travel",
	"Transfers",
	"Fees",
	"Uncategorized",
}

// Load reads configuration from file and env. Env var overrides use
// prefix BANKFEED_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "bankfeed", "bankfeed.db"))
	v.SetDefault("categories", defaultCategories)
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BANKFEED_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "bankfeed"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BANKFEED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Categories) == 0 {
		c.Categories = defaultCategories
	}
	return c, nil
}
