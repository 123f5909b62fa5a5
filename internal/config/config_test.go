package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PAGES_API_KEY", "PORT", "LISTEN_ADDR",
		"DATABASE_PATH", "SITE_NAME", "STATIC_DIR", "GIN_MODE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error when PAGES_API_KEY is unset")
	}

	t.Setenv("PAGES_API_KEY", "   ")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when PAGES_API_KEY is blank")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAGES_API_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.APIKey != "secret" {
		t.Fatalf("expected api key to pass through, got %q", cfg.APIKey)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr :8080, got %q", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "dabipages.db" {
		t.Fatalf("expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.SiteName != "Dabby" {
		t.Fatalf("expected default site name, got %q", cfg.SiteName)
	}
	if cfg.StaticDir != "web/static" {
		t.Fatalf("expected default static dir, got %q", cfg.StaticDir)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("expected default gin mode, got %q", cfg.GinMode)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAGES_API_KEY", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/data/pages.db")
	t.Setenv("SITE_NAME", "My Site")
	t.Setenv("STATIC_DIR", "/srv/static")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.ListenAddr != ":9000" {
		t.Fatalf("expected listen addr derived from PORT, got %q", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "/data/pages.db" || cfg.SiteName != "My Site" || cfg.StaticDir != "/srv/static" {
		t.Fatalf("expected overrides applied, got %+v", cfg)
	}

	t.Setenv("LISTEN_ADDR", "127.0.0.1:7000")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:7000" {
		t.Fatalf("expected explicit LISTEN_ADDR to win, got %q", cfg.ListenAddr)
	}
}
