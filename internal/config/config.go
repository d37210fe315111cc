package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Index  IndexConfig
	Site   SiteConfig
	Export ExportConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type IndexConfig struct {
	URL     string
	Timeout time.Duration
	TTL     time.Duration
}

type SiteConfig struct {
	Title    string
	Featured []string
}

type ExportConfig struct {
	Dir string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("INDEX_URL", "https://hub.espanso.org/json/registry/index.json")
	v.SetDefault("INDEX_TIMEOUT", "30s")
	v.SetDefault("INDEX_TTL", "5m")
	v.SetDefault("SITE_TITLE", "Snippet Hub")
	v.SetDefault("SITE_FEATURED", "")
	v.SetDefault("EXPORT_DIR", "out")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("INDEX_TIMEOUT"))
	if err != nil {
		timeout = 30 * time.Second
	}
	ttl, err := time.ParseDuration(v.GetString("INDEX_TTL"))
	if err != nil {
		ttl = 5 * time.Minute
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Index: IndexConfig{
			URL:     v.GetString("INDEX_URL"),
			Timeout: timeout,
			TTL:     ttl,
		},
		Site: SiteConfig{
			Title:    v.GetString("SITE_TITLE"),
			Featured: splitList(v.GetString("SITE_FEATURED")),
		},
		Export: ExportConfig{
			Dir: v.GetString("EXPORT_DIR"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
