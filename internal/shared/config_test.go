package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c := Load()
	if c.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", c.HTTPAddr)
	}
	if c.CatalogSeed != 42 {
		t.Errorf("CatalogSeed = %d", c.CatalogSeed)
	}
	if c.SessionTTL != time.Hour {
		t.Errorf("SessionTTL = %v", c.SessionTTL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("CATALOG_SEED", "7")
	t.Setenv("PARSER_RPS", "2.5")

	c := Load()
	if c.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q", c.HTTPAddr)
	}
	if c.CatalogSeed != 7 {
		t.Errorf("CatalogSeed = %d", c.CatalogSeed)
	}
	if c.ParserRPS != 2.5 {
		t.Errorf("ParserRPS = %v", c.ParserRPS)
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "http_addr: \":7070\"\ncatalog_seed: 99\nsession_ttl_seconds: 120\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("TRIPRECO_CONFIG", path)

	c := Load()
	if c.HTTPAddr != ":7070" {
		t.Errorf("HTTPAddr = %q, want overlay value", c.HTTPAddr)
	}
	if c.CatalogSeed != 99 {
		t.Errorf("CatalogSeed = %d", c.CatalogSeed)
	}
	if c.SessionTTL != 2*time.Minute {
		t.Errorf("SessionTTL = %v", c.SessionTTL)
	}
}

func TestLoadBadYAMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":::"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("TRIPRECO_CONFIG", path)

	c := Load()
	if c.HTTPAddr != ":8080" {
		t.Errorf("bad overlay should keep env defaults, HTTPAddr = %q", c.HTTPAddr)
	}
}
