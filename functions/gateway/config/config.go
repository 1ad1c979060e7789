// Package config holds the process-wide settings for the checkout functions.
// A Config is built once at cold start and only read afterwards.
package config

import (
	"os"

	"github.com/meetnearme/stripe-checkout/functions/gateway/helpers"
)

type Config struct {
	StripeSecretKey      string
	StripePublishableKey string
	SiteURL              string
	URL                  string
	FrontendURL          string
	BaseURL              string
}

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

func Load(lookup LookupFunc) *Config {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	return &Config{
		StripeSecretKey:      get(helpers.STRIPE_SECRET_KEY_ENV),
		StripePublishableKey: get(helpers.STRIPE_PUBLISHABLE_KEY_ENV),
		SiteURL:              get(helpers.SITE_URL_ENV),
		URL:                  get(helpers.URL_ENV),
		FrontendURL:          get(helpers.FRONTEND_URL_ENV),
		BaseURL:              get(helpers.BASEURL_ENV),
	}
}

func FromEnv() *Config {
	return Load(os.LookupEnv)
}

// FromMap is Load over a fixed set of values, handy for tests and tooling.
func FromMap(values map[string]string) *Config {
	return Load(func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	})
}

// PreflightOrigin is the allowed origin for OPTIONS responses.
func (c *Config) PreflightOrigin() string {
	return helpers.FirstNonEmpty(c.SiteURL, c.URL, helpers.ANY_ORIGIN)
}

// CheckoutSiteURL resolves the base of the success/cancel redirects, which
// is also the allowed origin of a successful checkout response.
func (c *Config) CheckoutSiteURL(requestOrigin string) string {
	return helpers.FirstNonEmpty(c.SiteURL, c.URL, c.FrontendURL, requestOrigin, helpers.ANY_ORIGIN)
}

func (c *Config) PublishableKeyOrigin() string {
	return helpers.FirstNonEmpty(c.SiteURL, c.BaseURL, helpers.ANY_ORIGIN)
}
