// Package sheets exports pet health records to a Google Sheets spreadsheet.
package sheets

import (
	"errors"
	"time"
)

// Config holds the credentials and tuning knobs for the spreadsheet writer.
// Exactly one auth method must be set: a service account key file, or an
// OAuth2 client with a refresh token.
type Config struct {
	ServiceAccountPath string
	ClientID           string
	ClientSecret       string
	RefreshToken       string

	SpreadsheetID   string
	SpreadsheetName string
	TimeZone        string

	BatchSize        int
	RetryAttempts    int
	RetryDelay       time.Duration
	EnableFormatting bool
}

// DefaultConfig returns the writer defaults. Credentials still have to come
// from the config file or environment.
func DefaultConfig() Config {
	return Config{
		SpreadsheetName:  "MedPetRx Health Records",
		TimeZone:         "America/New_York",
		BatchSize:        1000,
		RetryAttempts:    3,
		RetryDelay:       time.Second,
		EnableFormatting: true,
	}
}

func (c *Config) hasOAuth() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// Validate checks that exactly one auth method is configured and the tuning
// knobs are sane.
func (c *Config) Validate() error {
	switch {
	case !c.hasOAuth() && c.ServiceAccountPath == "":
		return errors.New("no authentication method configured")
	case c.hasOAuth() && c.ServiceAccountPath != "":
		return errors.New("multiple authentication methods configured; use either OAuth2 or a service account")
	}

	if c.BatchSize <= 0 {
		return errors.New("batch size must be positive")
	}
	if c.RetryAttempts < 0 || c.RetryDelay < 0 {
		return errors.New("retry settings cannot be negative")
	}
	return nil
}
