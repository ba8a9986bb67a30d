package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.Equal(t, DefaultCurrency, cfg.Currency)
	assert.Equal(t, DefaultToastDuration, cfg.Toast.Duration)
	assert.Equal(t, domain.MergeByPrice, cfg.MergeKey())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Catalog.DB)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
locale: en-US
currency: USD
catalog:
  db: /tmp/shop.db
  seed: /tmp/seed.yaml
toast:
  duration: 1500ms
cart:
  merge_key: id
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "/tmp/shop.db", cfg.Catalog.DB)
	assert.Equal(t, "/tmp/seed.yaml", cfg.Catalog.Seed)
	assert.Equal(t, 1500*time.Millisecond, cfg.Toast.Duration)
	assert.Equal(t, domain.MergeByID, cfg.MergeKey())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "currency: USD\n")
	t.Setenv("STOREFRONT_CURRENCY", "EUR")
	t.Setenv("STOREFRONT_CART_MERGE_KEY", "title")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, domain.MergeByTitle, cfg.MergeKey())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValue(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "cart:\n  merge_key: weight\n")

	_, err := Load(path)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "cart.merge_key", vErr.Key)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad locale", func(c *Config) { c.Locale = "not a locale!" }, "locale"},
		{"bad currency", func(c *Config) { c.Currency = "XXXX" }, "currency"},
		{"zero toast", func(c *Config) { c.Toast.Duration = 0 }, "toast.duration"},
		{"bad merge key", func(c *Config) { c.Cart.MergeKey = "weight" }, "cart.merge_key"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantKey, vErr.Key)
		})
	}
}
