// Package config handles configuration for the blog server: defaults,
// environment overlay and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the blog server.
//
// Fields:
//   - Addr: HTTP bind address.
//   - DBPath: sqlite database file.
//   - SessionSecret: HMAC key for signing session cookies. Do not use the
//     test default in prod.
//   - SessionMaxAge: session lifetime.
//   - GoogleClientID / GoogleClientSecret / GoogleCallbackURL /
//     GoogleProfileURL: federated provider settings; login via Google is
//     disabled when the client credentials are empty.
//   - TemplateDir / StaticDir / UploadDir: filesystem locations for
//     templates, static assets and uploaded images.
type Config struct {
	Addr               string
	DBPath             string
	SessionSecret      string
	SessionMaxAge      time.Duration
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
	GoogleProfileURL   string
	TemplateDir        string
	StaticDir          string
	UploadDir          string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the session secret is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DBPath = "blog.db"
	c.SessionSecret = "Our little secret"
	c.SessionMaxAge = 24 * time.Hour
	c.GoogleProfileURL = "https://www.googleapis.com/oauth2/v3/userinfo"
	c.TemplateDir = "web/templates"
	c.StaticDir = "web/static"
	c.UploadDir = "public/images"
}

// Load builds a Config by applying defaults, then overlaying environment
// variables and finally command-line flags.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.applyEnv()
	parseFlags(cfg, os.Args[1:])
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Addr = ":" + v
	}
	if v := os.Getenv("ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.SessionSecret = v
	}
	if v := os.Getenv("CLIENT_ID"); v != "" {
		c.GoogleClientID = v
	}
	if v := os.Getenv("CLIENT_SECRET"); v != "" {
		c.GoogleClientSecret = v
	}
	if v := os.Getenv("CALLBACK_URL"); v != "" {
		c.GoogleCallbackURL = v
	}
	if v := os.Getenv("USER_PROFILE"); v != "" {
		c.GoogleProfileURL = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		c.UploadDir = v
	}
}
