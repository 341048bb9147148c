// Package config loads the service configuration from the environment.
//
// Variables are read with koanf from the process environment, after a .env file
// in the working directory (if any) has been loaded by godotenv. Keys map onto
// Config fields by lower-casing the variable name: DATABASE_URL becomes
// database_url.
package config

import (
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the complete runtime configuration of the API server.
type Config struct {
	DatabaseURL string `koanf:"database_url" validate:"required"`
	HTTPAddr    string `koanf:"http_addr" validate:"required"`
	LogLevel    string `koanf:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Version     string `koanf:"version"`

	DBMaxOpenConns    int           `koanf:"db_max_open_conns" validate:"gte=1"`
	DBMaxIdleConns    int           `koanf:"db_max_idle_conns" validate:"gte=0"`
	DBConnMaxLifetime time.Duration `koanf:"db_conn_max_lifetime" validate:"gt=0"`
	DBConnMaxIdleTime time.Duration `koanf:"db_conn_max_idle_time" validate:"gt=0"`

	RateLimitEnabled bool    `koanf:"rate_limit_enabled"`
	RateLimitRPS     float64 `koanf:"rate_limit_rps" validate:"gt=0"`
	RateLimitBurst   int     `koanf:"rate_limit_burst" validate:"gte=1"`
	// TrustedProxies is a comma-separated list of IPs or CIDRs whose
	// X-Forwarded-For and X-Real-IP headers are believed. Empty trusts nobody.
	TrustedProxies string `koanf:"trusted_proxies"`

	// RequestBodyLimit caps request bodies in bytes.
	RequestBodyLimit int64         `koanf:"request_body_limit" validate:"gte=1024"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Default returns the configuration used for every key that is not set.
func Default() Config {
	return Config{
		HTTPAddr:          ":8080",
		LogLevel:          "info",
		Version:           "dev",
		DBMaxOpenConns:    25,
		DBMaxIdleConns:    10,
		DBConnMaxLifetime: time.Hour,
		DBConnMaxIdleTime: 30 * time.Minute,
		RateLimitEnabled:  true,
		RateLimitRPS:      20,
		RateLimitBurst:    40,
		RequestBodyLimit:  1 << 20, // 1MB
		ShutdownTimeout:   10 * time.Second,
	}
}

// Load reads Config from the environment and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if _, err := cfg.TrustedProxyPrefixes(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// TrustedProxyPrefixes parses TrustedProxies. A bare address becomes a
// single-host prefix.
func (c *Config) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, item := range strings.Split(c.TrustedProxies, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(item); err == nil {
			out = append(out, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, fmt.Errorf("trusted_proxies: invalid IP or CIDR %q", item)
		}
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}
