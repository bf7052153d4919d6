package config

import "testing"

func TestLoadRequiresDatabaseURL(t *testing.T) {
	_, err := LoadForTests(map[string]string{
		"DATABASE_URL": "",
		"REDIS_URL":    "redis://localhost:6379/0",
	})
	if err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"DATABASE_URL":          "postgres://localhost:5432/checkout",
		"REDIS_URL":             "redis://localhost:6379/0",
		"PORT":                  "",
		"RECEIPT_COLUMNS":       "",
		"CATALOG_CACHE_TTL":     "",
		"RATE_LIMIT_PER_MINUTE": "",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr() != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.HTTPAddr())
	}
	if cfg.ReceiptColumns != 40 {
		t.Fatalf("expected 40 receipt columns, got %d", cfg.ReceiptColumns)
	}
	if cfg.CatalogCacheTTL.Minutes() != 5 {
		t.Fatalf("expected 5m cache ttl, got %s", cfg.CatalogCacheTTL)
	}
	if cfg.RateLimitPerMinute != 120 {
		t.Fatalf("expected default rate limit, got %d", cfg.RateLimitPerMinute)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"DATABASE_URL":         "postgres://localhost:5432/checkout",
		"REDIS_URL":            "redis://localhost:6379/0",
		"PORT":                 "9090",
		"RECEIPT_COLUMNS":      "60",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr() != ":9090" {
		t.Fatalf("unexpected addr %s", cfg.HTTPAddr())
	}
	if cfg.ReceiptColumns != 60 {
		t.Fatalf("unexpected columns %d", cfg.ReceiptColumns)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
}
