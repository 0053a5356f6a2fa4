package geoweb

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeConfigFile(t, `
name: Example Blog
url: https://blog.example.com
description: A test site
author: Jane
page_size: 10
organization:
  name: Example Org
  logo_url: https://blog.example.com/logo.png
  app_name: Example App
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "Example Blog" || cfg.URL != "https://blog.example.com" {
		t.Errorf("identity not loaded: %+v", cfg)
	}
	if cfg.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", cfg.PageSize)
	}
	if cfg.Organization.Name != "Example Org" || cfg.Organization.AppName != "Example App" {
		t.Errorf("organization not loaded: %+v", cfg.Organization)
	}
	// Defaults still fill the gaps.
	if cfg.Addr != ":3000" || cfg.DatabasePath != "data/articles.db" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "name: From File\nurl: https://file.example.com\n")
	t.Setenv("SITE_NAME", "From Env")
	t.Setenv("API_SECRET_KEY", "env-secret")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "From Env" {
		t.Errorf("Name = %q, env should win over file", cfg.Name)
	}
	if cfg.URL != "https://file.example.com" {
		t.Errorf("URL = %q, file value should survive without env override", cfg.URL)
	}
	if cfg.APISecretKey != "env-secret" {
		t.Errorf("APISecretKey = %q, want env value", cfg.APISecretKey)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "Blog" || cfg.PageSize != 20 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	// Organization inherits site identity when unset.
	if cfg.Organization.Name != "Blog" || cfg.Organization.URL != cfg.URL {
		t.Errorf("organization fallback wrong: %+v", cfg.Organization)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadConfigSecretsNeverFromYAML(t *testing.T) {
	path := writeConfigFile(t, "apisecretkey: leaked\nadmin_password: leaked\n")
	t.Setenv("API_SECRET_KEY", "")
	t.Setenv("ADMIN_PASSWORD", "")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.APISecretKey != "" || cfg.AdminPassword != "" {
		t.Errorf("secrets must not load from YAML: %+v", cfg)
	}
}
