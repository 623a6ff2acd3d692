package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":3000", c.Addr)
	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, "public", c.PublicDir)
	assert.Equal(t, 6*time.Hour, c.SessionTTL)
	assert.Equal(t, "admindp", c.AdminUser)
	assert.Equal(t, "detecporc-salt-v1", c.AdminSalt)
	assert.NotEmpty(t, c.AdminHash)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATA_DIR", "/tmp/detecporc")
	t.Setenv("ADMIN_USER", "chef")
	t.Setenv("SESSION_TTL_HOURS", "2")

	c := Load()
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "/tmp/detecporc", c.DataDir)
	assert.Equal(t, "chef", c.AdminUser)
	assert.Equal(t, 2*time.Hour, c.SessionTTL)
}

func TestLoadIgnoresInvalidTTL(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "soon")
	c := Load()
	assert.Equal(t, 6*time.Hour, c.SessionTTL)
}
