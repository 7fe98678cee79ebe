package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "blog.db", c.DBPath)
	assert.Equal(t, "Our little secret", c.SessionSecret)
	assert.Equal(t, 24*time.Hour, c.SessionMaxAge)
	assert.Equal(t, "https://www.googleapis.com/oauth2/v3/userinfo", c.GoogleProfileURL)
	assert.Equal(t, "web/templates", c.TemplateDir)
	assert.Equal(t, "public/images", c.UploadDir)
	assert.Empty(t, c.GoogleClientID)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DB_PATH", "/tmp/blog.db")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("CLIENT_ID", "cid")
	t.Setenv("CLIENT_SECRET", "csecret")
	t.Setenv("CALLBACK_URL", "http://localhost:3000/auth/google/blog")
	t.Setenv("USER_PROFILE", "https://example.com/userinfo")

	var c Config
	c.LoadDefaults()
	c.applyEnv()

	assert.Equal(t, ":3000", c.Addr)
	assert.Equal(t, "/tmp/blog.db", c.DBPath)
	assert.Equal(t, "s3cret", c.SessionSecret)
	assert.Equal(t, "cid", c.GoogleClientID)
	assert.Equal(t, "csecret", c.GoogleClientSecret)
	assert.Equal(t, "http://localhost:3000/auth/google/blog", c.GoogleCallbackURL)
	assert.Equal(t, "https://example.com/userinfo", c.GoogleProfileURL)
}

func TestAddrEnvWinsOverPort(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("ADDR", "127.0.0.1:9000")

	var c Config
	c.LoadDefaults()
	c.applyEnv()

	assert.Equal(t, "127.0.0.1:9000", c.Addr)
}

func TestParseFlags(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseFlags(&c, []string{"-a", ":9999", "-d", "custom.db", "-t", "1h"})

	require.Equal(t, ":9999", c.Addr)
	assert.Equal(t, "custom.db", c.DBPath)
	assert.Equal(t, time.Hour, c.SessionMaxAge)
	// untouched flags keep their defaults
	assert.Equal(t, "Our little secret", c.SessionSecret)
}
