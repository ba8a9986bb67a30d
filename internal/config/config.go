package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"storefront/internal/domain"
)

const (
	DefaultLocale        = "es-AR"
	DefaultCurrency      = "ARS"
	DefaultToastDuration = 3 * time.Second
	DefaultLogLevel      = "info"

	envPrefix = "STOREFRONT"
)

// Config is the complete storefront configuration
type Config struct {
	Locale   string      `mapstructure:"locale"`
	Currency string      `mapstructure:"currency"`
	Catalog  CatalogConf `mapstructure:"catalog"`
	Toast    ToastConf   `mapstructure:"toast"`
	Cart     CartConf    `mapstructure:"cart"`
	Log      LogConf     `mapstructure:"log"`
}

// CatalogConf locates the product catalog
type CatalogConf struct {
	DB   string `mapstructure:"db"`   // sqlite path, empty for the XDG default
	Seed string `mapstructure:"seed"` // optional YAML seed loaded when the catalog is empty
}

// ToastConf controls the "added to cart" notification
type ToastConf struct {
	Duration time.Duration `mapstructure:"duration"`
}

// CartConf controls line-item merging
type CartConf struct {
	MergeKey string `mapstructure:"merge_key"`
}

// LogConf controls the zap logger
type LogConf struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ValidationError reports an invalid configuration value
type ValidationError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s=%q: %s", e.Key, e.Value, e.Reason)
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() *Config {
	return &Config{
		Locale:   DefaultLocale,
		Currency: DefaultCurrency,
		Toast:    ToastConf{Duration: DefaultToastDuration},
		Cart:     CartConf{MergeKey: string(domain.MergeByPrice)},
		Log:      LogConf{Level: DefaultLogLevel},
	}
}

// Load reads the configuration. An explicit path must exist; otherwise
// storefront.yaml is looked up in the XDG config dir and the working directory
// and is optional. STOREFRONT_* environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("locale", def.Locale)
	v.SetDefault("currency", def.Currency)
	v.SetDefault("catalog.db", "")
	v.SetDefault("catalog.seed", "")
	v.SetDefault("toast.duration", def.Toast.Duration)
	v.SetDefault("cart.merge_key", def.Cart.MergeKey)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", def.Log.Level)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("storefront")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every value that would otherwise fail later at startup
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return &ValidationError{Key: "locale", Value: c.Locale, Reason: "not a BCP 47 tag"}
	}
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return &ValidationError{Key: "currency", Value: c.Currency, Reason: "not an ISO 4217 code"}
	}
	if c.Toast.Duration <= 0 {
		return &ValidationError{Key: "toast.duration", Value: c.Toast.Duration.String(), Reason: "must be positive"}
	}
	if _, err := domain.ParseMergeKey(c.Cart.MergeKey); err != nil {
		return &ValidationError{Key: "cart.merge_key", Value: c.Cart.MergeKey, Reason: "expected price, title or id"}
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return &ValidationError{Key: "log.level", Value: c.Log.Level, Reason: "expected debug, info, warn or error"}
	}
	return nil
}

// MergeKey returns the parsed cart merge key
func (c *Config) MergeKey() domain.MergeKey {
	k, err := domain.ParseMergeKey(c.Cart.MergeKey)
	if err != nil {
		return domain.MergeByPrice
	}
	return k
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "storefront")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "storefront")
}
