package geoweb

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// OrgConfig describes the publishing organization for the site-level
// structured data (Organization and SoftwareApplication documents).
type OrgConfig struct {
	Name           string `yaml:"name"`
	URL            string `yaml:"url"`
	LogoURL        string `yaml:"logo_url"`
	AppName        string `yaml:"app_name"`
	AppCategory    string `yaml:"app_category"`
	AppDescription string `yaml:"app_description"`
}

// SiteConfig holds all configuration for a geoweb site. Site identity can
// come from a YAML file; secrets come from the environment only.
type SiteConfig struct {
	Name        string `yaml:"name"`        // Site name (default "Blog")
	URL         string `yaml:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description"` // Site description for RSS and meta tags
	Author      string `yaml:"author"`      // Author name for JSON-LD

	Addr         string `yaml:"addr"`          // Listen address (default ":3000")
	DatabasePath string `yaml:"database_path"` // SQLite path (default "data/articles.db")
	StaticDir    string `yaml:"static_dir"`    // User static assets (default "public")
	PageSize     int    `yaml:"page_size"`     // Articles per listing page (default 20)

	Organization OrgConfig `yaml:"organization"`

	CookieSecure bool `yaml:"cookie_secure"` // Set true for HTTPS

	// Secrets, environment only.
	APISecretKey  string `yaml:"-"` // Required: webhook x-api-key credential
	AdminPassword string `yaml:"-"` // Required for the admin surface
	SessionSecret string `yaml:"-"` // Required for the admin surface

	CacheTTL time.Duration `yaml:"-"` // Read cache TTL (default 5min)
}

// LoadConfig reads the optional YAML config file at path and applies
// environment overrides on top. Pass an empty path to configure from the
// environment alone.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return SiteConfig{}, fmt.Errorf("geoweb: read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return SiteConfig{}, fmt.Errorf("geoweb: parse config: %w", err)
		}
	}
	cfg.Name = EnvOr("SITE_NAME", cfg.Name)
	cfg.URL = EnvOr("SITE_URL", cfg.URL)
	cfg.Description = EnvOr("SITE_DESCRIPTION", cfg.Description)
	cfg.Author = EnvOr("SITE_AUTHOR", cfg.Author)
	cfg.Addr = EnvOr("ADDR", cfg.Addr)
	cfg.DatabasePath = EnvOr("DATABASE_PATH", cfg.DatabasePath)

	cfg.APISecretKey = os.Getenv("API_SECRET_KEY")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if os.Getenv("COOKIE_SECURE") == "true" {
		cfg.CookieSecure = true
	}

	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/articles.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.PageSize == 0 {
		c.PageSize = 20
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
	if c.Organization.Name == "" {
		c.Organization.Name = c.Name
	}
	if c.Organization.URL == "" {
		c.Organization.URL = c.URL
	}
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
