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
	Session SessionConfig
	Preview PreviewConfig
	Series  SeriesConfig
	Cache   CacheConfig
	UI      UIConfig
	Keys    map[string][]string
}

// SessionConfig holds sqlite settings for the session store.
type SessionConfig struct {
	Path string
}

// PreviewConfig holds CSV preview settings.
type PreviewConfig struct {
	Dir  string
	Rows int
}

// SeriesConfig holds synthetic series generation settings.
type SeriesConfig struct {
	Seed int64
	Days int
}

// CacheConfig holds optional redis settings for the series cache.
type CacheConfig struct {
	RedisAddr string `mapstructure:"redis_addr"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
}

// Load reads configuration from file and env. Env var overrides use prefix TUILAB_.
func Load() (Config, error) {
	v := viper.New()

	// default values; an empty session.path keeps the store in memory so
	// state resets when the session ends
	v.SetDefault("session.path", "")
	v.SetDefault("preview.dir", ".")
	v.SetDefault("preview.rows", 10)
	v.SetDefault("series.seed", 42)
	v.SetDefault("series.days", 30)
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("ui.currency_symbol", "₹")
	v.SetDefault("ui.date_format", "2006-01-02")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TUILAB_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tuilab"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TUILAB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Preview.Rows < 1 {
		c.Preview.Rows = 10
	}
	if c.Series.Days < 1 {
		c.Series.Days = 30
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// Key overrides under [keys] are preserved as action -> key list.
func Save(cfg Config) error {
	path := os.Getenv("TUILAB_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "tuilab", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("session.path", cfg.Session.Path)
	v.Set("preview.dir", cfg.Preview.Dir)
	v.Set("preview.rows", cfg.Preview.Rows)
	v.Set("series.seed", cfg.Series.Seed)
	v.Set("series.days", cfg.Series.Days)
	v.Set("cache.redis_addr", cfg.Cache.RedisAddr)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
