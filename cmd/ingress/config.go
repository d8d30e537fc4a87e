package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig is the layout of the TOML configuration file.
type fileConfig struct {
	Listen          string  `toml:"listen"`
	Handler         string  `toml:"handler"`
	TokenSecret     string  `toml:"token_secret"`
	ConnIDSecret    string  `toml:"conn_id_secret"`
	Trace           bool    `toml:"trace"`
	Workers         int     `toml:"workers"`
	QueueSize       int     `toml:"queue_size"`
	DispatchTimeout string  `toml:"dispatch_timeout"`
	TokenValidity   string  `toml:"token_validity"`
	IdleTimeout     string  `toml:"idle_timeout"`
	RateLimit       float64 `toml:"rate_limit"`
	RateBurst       int     `toml:"rate_burst"`
	MetricsAddr     string  `toml:"metrics_addr"`
	Qlog            string  `toml:"qlog"`
}

type cmdConfig struct {
	Listen          string
	Handler         string
	TokenSecret     []byte
	ConnIDSecret    []byte
	Trace           bool
	Workers         int
	QueueSize       int
	DispatchTimeout time.Duration
	TokenValidity   time.Duration
	IdleTimeout     time.Duration
	// RateLimit is the number of datagrams per second handed to the workers. 0 means unlimited.
	RateLimit   float64
	RateBurst   int
	MetricsAddr string
	Qlog        string
}

func defaultConfig() cmdConfig {
	return cmdConfig{
		Listen:      "0.0.0.0:4433",
		Handler:     "ingress",
		Workers:     4,
		IdleTimeout: 30 * time.Second,
	}
}

func loadConfig(path string) (cmdConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cmdConfig{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cmdConfig{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("listen") {
		cfg.Listen = strings.TrimSpace(raw.Listen)
	}
	if meta.IsDefined("handler") {
		cfg.Handler = strings.TrimSpace(raw.Handler)
	}
	if meta.IsDefined("token_secret") {
		if cfg.TokenSecret, err = parseSecret(raw.TokenSecret); err != nil {
			return cmdConfig{}, fmt.Errorf("parse token_secret: %w", err)
		}
	}
	if meta.IsDefined("conn_id_secret") {
		if cfg.ConnIDSecret, err = parseSecret(raw.ConnIDSecret); err != nil {
			return cmdConfig{}, fmt.Errorf("parse conn_id_secret: %w", err)
		}
	}
	if meta.IsDefined("trace") {
		cfg.Trace = raw.Trace
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("queue_size") {
		cfg.QueueSize = raw.QueueSize
	}
	for _, d := range []struct {
		key   string
		value string
		dest  *time.Duration
	}{
		{"dispatch_timeout", raw.DispatchTimeout, &cfg.DispatchTimeout},
		{"token_validity", raw.TokenValidity, &cfg.TokenValidity},
		{"idle_timeout", raw.IdleTimeout, &cfg.IdleTimeout},
	} {
		if !meta.IsDefined(d.key) {
			continue
		}
		v, err := time.ParseDuration(strings.TrimSpace(d.value))
		if err != nil {
			return cmdConfig{}, fmt.Errorf("parse %s: %w", d.key, err)
		}
		*d.dest = v
	}
	if meta.IsDefined("rate_limit") {
		cfg.RateLimit = raw.RateLimit
	}
	if meta.IsDefined("rate_burst") {
		cfg.RateBurst = raw.RateBurst
	}
	if meta.IsDefined("metrics_addr") {
		cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	}
	if meta.IsDefined("qlog") {
		cfg.Qlog = strings.TrimSpace(raw.Qlog)
	}
	return cfg, nil
}

// parseSecret decodes a hex-encoded secret.
func parseSecret(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	if len(b) < 16 {
		return nil, errors.New("secret must be at least 16 bytes long")
	}
	return b, nil
}

// validate checks the configuration.
// Both secrets are required: every process of a deployment has to use the same ones,
// otherwise Retry tokens issued by one process can't be validated by another.
func (c *cmdConfig) validate() error {
	if len(c.TokenSecret) == 0 {
		return errors.New("token_secret required")
	}
	if len(c.ConnIDSecret) == 0 {
		return errors.New("conn_id_secret required")
	}
	if c.Workers <= 0 {
		return errors.New("workers must be positive")
	}
	if c.RateLimit < 0 {
		return errors.New("rate_limit must not be negative")
	}
	if c.RateLimit > 0 && c.RateBurst <= 0 {
		c.RateBurst = int(c.RateLimit)
		if c.RateBurst == 0 {
			c.RateBurst = 1
		}
	}
	return nil
}
