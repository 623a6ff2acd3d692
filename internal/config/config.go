// Package config loads runtime settings from the environment, with an
// optional .env overlay for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DataDir: directory holding points.json and pending.json.
//   - PublicDir: directory of static assets for the browser client.
//   - SessionSecret: key signing the session cookie. Override in prod.
//   - SessionTTL: admin session lifetime.
//   - AdminUser / AdminSalt / AdminHash: the configured administrator
//     identity and its scrypt credential (see cmd/hash-admin).
type Config struct {
	Addr          string
	DataDir       string
	PublicDir     string
	SessionSecret string
	SessionTTL    time.Duration
	AdminUser     string
	AdminSalt     string
	AdminHash     string
}

// LoadDefaults populates Config with the reference deployment values.
// NOTE: the secret and the admin credential are insecure defaults and
// must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.Addr = ":3000"
	c.DataDir = "data"
	c.PublicDir = "public"
	c.SessionSecret = "detecporc-session-secret"
	c.SessionTTL = 6 * time.Hour
	c.AdminUser = "admindp"
	c.AdminSalt = "detecporc-salt-v1"
	c.AdminHash = "873866cbfde6c0f6aab3eaa6f43b539cd702406ee025a43dfaa5594622fa0094b8636fd3dd1c9ded039c6658c79df2bd2abee8fadcf6f53cb7cbf7776afa8419"
}

// Load builds a Config from defaults, then .env, then the environment.
func Load() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	cfg.LoadDefaults()

	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("PUBLIC_DIR"); v != "" {
		cfg.PublicDir = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			cfg.SessionTTL = time.Duration(hours) * time.Hour
		}
	}
	if v := os.Getenv("ADMIN_USER"); v != "" {
		cfg.AdminUser = v
	}
	if v := os.Getenv("ADMIN_SALT"); v != "" {
		cfg.AdminSalt = v
	}
	if v := os.Getenv("ADMIN_HASH"); v != "" {
		cfg.AdminHash = v
	}
	return cfg
}
