// Package legacystore talks HTTP to the legacy storefront's CGI endpoints
// and turns their feeds into domain records via the legacyxml pipeline.
package legacystore

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	// bulkScript serves product and customer downloads
	bulkScript = "db_xml.cgi"
	// orderScript serves order downloads with query filters
	orderScript = "order_xml.cgi"

	// protocolVersion is the version token the download scripts expect
	protocolVersion = "2.0"

	defaultTimeoutSeconds = 60
)

// Errors for legacy store configuration
var (
	ErrConfigMissingBaseURL  = errors.New("legacystore: base URL is required")
	ErrConfigMissingMerchant = errors.New("legacystore: merchant ID is required")
	ErrConfigMissingPassword = errors.New("legacystore: password is required")
)

// Config holds connection settings for the legacy storefront
type Config struct {
	// BaseURL is the store URL; a trailing CGI script segment is tolerated
	// and replaced per operation
	BaseURL string `validate:"required,url"`
	// MerchantID and Password form the Basic auth credentials
	MerchantID string `validate:"required"`
	Password   string `validate:"required"`
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int `validate:"gte=0"`
}

// NewConfig creates a legacy store configuration with defaults
func NewConfig(baseURL, merchantID, password string) Config {
	return Config{
		BaseURL:        baseURL,
		MerchantID:     merchantID,
		Password:       password,
		TimeoutSeconds: defaultTimeoutSeconds,
	}
}

// Validate checks the configuration before a client is constructed
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.MerchantID == "" {
		return ErrConfigMissingMerchant
	}
	if c.Password == "" {
		return ErrConfigMissingPassword
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
	return validator.New().Struct(c)
}
