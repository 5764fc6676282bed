package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:      "5000",
		JWTSecret: "0123456789abcdef0123456789abcdef",
		TokenTTL:  time.Hour,
		Env:       "development",
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	cfg = validConfig()
	cfg.Port = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.JWTSecret = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.TokenTTL = 0
	assert.Error(t, cfg.Validate())
}

func TestValidate_ProductionStrictness(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "production"
	cfg.DBPassword = "s3cure-db-pass"
	require.NoError(t, cfg.Validate())

	t.Run("default jwt secret rejected", func(t *testing.T) {
		c := validConfig()
		c.Env = "production"
		c.DBPassword = "s3cure-db-pass"
		c.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, c.Validate())
	})

	t.Run("short jwt secret rejected", func(t *testing.T) {
		c := validConfig()
		c.Env = "production"
		c.DBPassword = "s3cure-db-pass"
		c.JWTSecret = "short"
		assert.Error(t, c.Validate())
	})

	t.Run("weak db password rejected", func(t *testing.T) {
		c := validConfig()
		c.Env = "production"
		c.DBPassword = "password"
		assert.Error(t, c.Validate())
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "foodiegram", cfg.DBName)
	assert.NotEmpty(t, cfg.JWTSecret)
}
