package config

import "testing"

func TestLoad(t *testing.T) {
	cfg := FromMap(map[string]string{
		"STRIPE_SECRET_KEY":      "sk_test_123",
		"STRIPE_PUBLISHABLE_KEY": "pk_test_123",
		"SITE_URL":               "https://site.example",
		"URL":                    "https://url.example",
		"FRONTEND_URL":           "https://frontend.example",
		"BASEURL":                "https://base.example",
	})

	if cfg.StripeSecretKey != "sk_test_123" {
		t.Errorf("Expected secret key sk_test_123, got %s", cfg.StripeSecretKey)
	}
	if cfg.StripePublishableKey != "pk_test_123" {
		t.Errorf("Expected publishable key pk_test_123, got %s", cfg.StripePublishableKey)
	}
	if cfg.SiteURL != "https://site.example" || cfg.URL != "https://url.example" {
		t.Errorf("Unexpected site URLs: %+v", cfg)
	}
	if cfg.FrontendURL != "https://frontend.example" || cfg.BaseURL != "https://base.example" {
		t.Errorf("Unexpected fallback URLs: %+v", cfg)
	}
}

func TestLoad_Empty(t *testing.T) {
	cfg := FromMap(nil)
	if *cfg != (Config{}) {
		t.Errorf("Expected zero config, got %+v", cfg)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "pk_env_123")
	t.Setenv("STRIPE_SECRET_KEY", "")

	cfg := FromEnv()
	if cfg.StripePublishableKey != "pk_env_123" {
		t.Errorf("Expected publishable key from env, got %q", cfg.StripePublishableKey)
	}
	if cfg.StripeSecretKey != "" {
		t.Errorf("Expected no secret key, got %q", cfg.StripeSecretKey)
	}
}

func TestCheckoutSiteURL(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		requestOrigin string
		expected      string
	}{
		{
			name:          "SITE_URL has priority",
			env:           map[string]string{"SITE_URL": "https://a", "URL": "https://b"},
			requestOrigin: "https://c",
			expected:      "https://a",
		},
		{
			name:          "URL without SITE_URL",
			env:           map[string]string{"URL": "https://b"},
			requestOrigin: "https://c",
			expected:      "https://b",
		},
		{
			name:          "FRONTEND_URL before request origin",
			env:           map[string]string{"FRONTEND_URL": "https://f"},
			requestOrigin: "https://c",
			expected:      "https://f",
		},
		{
			name:          "request origin",
			env:           map[string]string{},
			requestOrigin: "https://c",
			expected:      "https://c",
		},
		{
			name:     "wildcard",
			env:      map[string]string{},
			expected: "*",
		},
		{
			name:          "empty values are skipped",
			env:           map[string]string{"SITE_URL": "", "URL": ""},
			requestOrigin: "https://c",
			expected:      "https://c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromMap(tt.env).CheckoutSiteURL(tt.requestOrigin)
			if got != tt.expected {
				t.Errorf("CheckoutSiteURL() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPreflightOrigin(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected string
	}{
		{"SITE_URL", map[string]string{"SITE_URL": "https://a", "URL": "https://b"}, "https://a"},
		{"URL", map[string]string{"URL": "https://b"}, "https://b"},
		{"FRONTEND_URL is ignored", map[string]string{"FRONTEND_URL": "https://f"}, "*"},
		{"wildcard", nil, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromMap(tt.env).PreflightOrigin(); got != tt.expected {
				t.Errorf("PreflightOrigin() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPublishableKeyOrigin(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected string
	}{
		{"SITE_URL", map[string]string{"SITE_URL": "https://a", "BASEURL": "https://base"}, "https://a"},
		{"BASEURL", map[string]string{"BASEURL": "https://base", "URL": "https://b"}, "https://base"},
		{"URL is ignored", map[string]string{"URL": "https://b"}, "*"},
		{"wildcard", nil, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromMap(tt.env).PublishableKeyOrigin(); got != tt.expected {
				t.Errorf("PublishableKeyOrigin() = %q, want %q", got, tt.expected)
			}
		})
	}
}
