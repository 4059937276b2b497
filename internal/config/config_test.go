package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "COINGECKO_URL", "REQUEST_TIMEOUT", "REFRESH_INTERVAL", "PER_PAGE",
		"TRENDING_LIMIT", "LIVE_PORTFOLIO_PRICES", "SESSION_STORE", "SUBMIT_DELAY", "REDIRECT_DELAY",
		"JWT_EXPIRES_IN",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.CoinGeckoURL != "https://api.coingecko.com/api/v3" {
		t.Errorf("CoinGeckoURL = %q", cfg.CoinGeckoURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Errorf("RefreshInterval = %v, want 30s", cfg.RefreshInterval)
	}
	if cfg.PerPage != 20 {
		t.Errorf("PerPage = %d, want 20", cfg.PerPage)
	}
	if cfg.TrendingLimit != 5 {
		t.Errorf("TrendingLimit = %d, want 5", cfg.TrendingLimit)
	}
	if cfg.LivePortfolioPrices {
		t.Error("LivePortfolioPrices should default to false")
	}
	if cfg.SessionStore != SessionStoreDatabase {
		t.Errorf("SessionStore = %q, want %q", cfg.SessionStore, SessionStoreDatabase)
	}
	if cfg.SubmitDelay != time.Second || cfg.RedirectDelay != 2*time.Second {
		t.Errorf("delays = %v/%v, want 1s/2s", cfg.SubmitDelay, cfg.RedirectDelay)
	}
	if cfg.JWTExpirationDur != 24*time.Hour {
		t.Errorf("JWTExpirationDur = %v, want 24h", cfg.JWTExpirationDur)
	}
	if got := cfg.RefreshSchedule(); got != "@every 30s" {
		t.Errorf("RefreshSchedule() = %q, want @every 30s", got)
	}
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("COINGECKO_URL", "http://localhost:9999/api/v3/")
	t.Setenv("AUTH_URL", "http://localhost:9998/api/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CoinGeckoURL != "http://localhost:9999/api/v3" {
		t.Errorf("CoinGeckoURL = %q", cfg.CoinGeckoURL)
	}
	if cfg.AuthURL != "http://localhost:9998/api" {
		t.Errorf("AuthURL = %q", cfg.AuthURL)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "bad_timeout", key: "REQUEST_TIMEOUT", value: "soon", wantErr: "REQUEST_TIMEOUT"},
		{name: "negative_interval", key: "REFRESH_INTERVAL", value: "-5s", wantErr: "REFRESH_INTERVAL"},
		{name: "per_page_too_large", key: "PER_PAGE", value: "1000", wantErr: "PER_PAGE"},
		{name: "per_page_not_int", key: "PER_PAGE", value: "ten", wantErr: "PER_PAGE"},
		{name: "bad_bool", key: "LIVE_PORTFOLIO_PRICES", value: "yes", wantErr: "LIVE_PORTFOLIO_PRICES"},
		{name: "bad_store", key: "SESSION_STORE", value: "memcached", wantErr: "SESSION_STORE"},
		{name: "bad_jwt_expiry", key: "JWT_EXPIRES_IN", value: "bogus", wantErr: "JWT_EXPIRES_IN"},
		{name: "negative_jwt_expiry", key: "JWT_EXPIRES_IN", value: "-1h", wantErr: "JWT_EXPIRES_IN"},
		{name: "zero_jwt_expiry", key: "JWT_EXPIRES_IN", value: "0s", wantErr: "JWT_EXPIRES_IN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"", true, false},
		{"true", true, false},
		{"1", true, false},
		{"FALSE", false, false},
		{"0", false, false},
		{"maybe", false, true},
	}
	for _, tt := range tests {
		got, err := parseBool(tt.in, true)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseBool(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseBool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
