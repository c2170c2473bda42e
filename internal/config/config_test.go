package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "4000" {
		t.Errorf("ServerPort = %q; want 4000", cfg.ServerPort)
	}
	if cfg.JWTExpiry != 168*time.Hour {
		t.Errorf("JWTExpiry = %v; want 168h", cfg.JWTExpiry)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d; want 10", cfg.BcryptCost)
	}
	if cfg.SMTPPort != 587 {
		t.Errorf("SMTPPort = %d; want 587", cfg.SMTPPort)
	}
	if cfg.SMTPSecure {
		t.Error("SMTPSecure should default to false")
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v; want 5m", cfg.CacheTTL)
	}
	if cfg.AllowedOrigins != nil {
		t.Errorf("AllowedOrigins = %v; want nil (allow all)", cfg.AllowedOrigins)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRY_HOURS", "24")
	t.Setenv("SMTP_SECURE", "true")
	t.Setenv("MAX_DB_CONNS", "not-a-number")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q; want 9090", cfg.ServerPort)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v; want 24h", cfg.JWTExpiry)
	}
	if !cfg.SMTPSecure {
		t.Error("SMTPSecure should be true")
	}
	// Unparseable numbers fall back to the default.
	if cfg.MaxDBConns != 16 {
		t.Errorf("MaxDBConns = %d; want fallback 16", cfg.MaxDBConns)
	}
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "https://vezoprint.com", []string{"https://vezoprint.com"}},
		{"multiple with spaces", "https://a.com, https://b.com ,https://c.com", []string{"https://a.com", "https://b.com", "https://c.com"}},
		{"trailing comma", "https://a.com,", []string{"https://a.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOrigins(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("parseOrigins(%q) = %v; want %v", tt.raw, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("parseOrigins(%q) = %v; want %v", tt.raw, got, tt.want)
				}
			}
		})
	}
}
