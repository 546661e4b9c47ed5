// File: internal/config/config_test.go
package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "bobagen", cfg.Logger.ServiceName)
	assert.Equal(t, "~/.bobagen/previous_orders.json", cfg.Storage.Path)
	assert.Equal(t, 5, cfg.Novelty.ResetDays)
	assert.Equal(t, 1, cfg.Order.MinToppings)
	assert.Equal(t, 3, cfg.Order.MaxToppings)

	assert.NoError(t, cfg.Validate())
}

func TestConfigOverridesDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("novelty.reset_days", 10)
	v.Set("storage.path", "/tmp/orders.json")

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, 10, cfg.Novelty.ResetDays)
	assert.Equal(t, "/tmp/orders.json", cfg.Storage.Path)
	// Untouched sections keep their defaults.
	assert.Equal(t, 3, cfg.Order.MaxToppings)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"zero reset days", func(c *Config) { c.Novelty.ResetDays = 0 }, "reset_days"},
		{"negative reset days", func(c *Config) { c.Novelty.ResetDays = -3 }, "reset_days"},
		{"zero min toppings", func(c *Config) { c.Order.MinToppings = 0 }, "min_toppings"},
		{"max below min", func(c *Config) { c.Order.MinToppings = 3; c.Order.MaxToppings = 2 }, "max_toppings"},
		{"empty storage path", func(c *Config) { c.Storage.Path = "" }, "storage.path"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}
