package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("значения по умолчанию", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		t.Setenv("HTTP_ADDR", "")
		t.Setenv("PREMIUM_FEATURES", "")
		t.Setenv("LOG_LEVEL", "")

		cfg := Load()

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Empty(t, cfg.Features.PremiumFeatures)
	})

	t.Run("значения из окружения", func(t *testing.T) {
		t.Setenv("DB_HOST", "db")
		t.Setenv("HTTP_ADDR", ":9090")
		t.Setenv("PREMIUM_FEATURES", "advanced_permissions, sso,,")
		t.Setenv("FEATURES_FILE", "/etc/features.yaml")

		cfg := Load()

		assert.Equal(t, "db", cfg.Database.Host)
		assert.Equal(t, ":9090", cfg.Server.HTTPAddr)
		assert.Equal(t, []string{"advanced_permissions", "sso"}, cfg.Features.PremiumFeatures)
		assert.Equal(t, "/etc/features.yaml", cfg.Features.File)
	})
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
	assert.Equal(t, []string{"a", "b"}, splitList("a,b"))
}
