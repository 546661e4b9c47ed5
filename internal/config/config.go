// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Novelty NoveltyConfig `mapstructure:"novelty" yaml:"novelty"`
	Order   OrderConfig   `mapstructure:"order" yaml:"order"`
}

// LoggerConfig holds the logging settings.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// StorageConfig locates the order history file.
type StorageConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// NoveltyConfig tunes the novelty penalty curve.
type NoveltyConfig struct {
	// ResetDays is the renewal period N: an ingredient ordered at least this
	// many days ago no longer counts against its selection.
	ResetDays int `mapstructure:"reset_days" yaml:"reset_days"`
}

// OrderConfig tunes order generation.
type OrderConfig struct {
	// MinToppings and MaxToppings bound how many topping draws each order
	// gets. Duplicate draws collapse, so the final order may carry fewer.
	MinToppings int `mapstructure:"min_toppings" yaml:"min_toppings"`
	MaxToppings int `mapstructure:"max_toppings" yaml:"max_toppings"`
}

// NewDefaultConfig creates a configuration populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Cannot happen with the defaults above.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "bobagen")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Storage --
	v.SetDefault("storage.path", "~/.bobagen/previous_orders.json")

	// -- Novelty --
	v.SetDefault("novelty.reset_days", 5)

	// -- Order --
	v.SetDefault("order.min_toppings", 1)
	v.SetDefault("order.max_toppings", 3)
}

// Validate rejects configurations the generator cannot run with.
func (c *Config) Validate() error {
	if c.Novelty.ResetDays <= 0 {
		return fmt.Errorf("novelty.reset_days must be positive, got %d", c.Novelty.ResetDays)
	}
	if c.Order.MinToppings < 1 {
		return fmt.Errorf("order.min_toppings must be at least 1, got %d", c.Order.MinToppings)
	}
	if c.Order.MaxToppings < c.Order.MinToppings {
		return fmt.Errorf("order.max_toppings (%d) must not be below order.min_toppings (%d)",
			c.Order.MaxToppings, c.Order.MinToppings)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path must not be empty")
	}
	return nil
}
