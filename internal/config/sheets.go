package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/shouniet/medpetrx/internal/sheets"
)

// LoadSheetsConfig assembles the Google Sheets export configuration. Keys in
// the config file (sheets.*) win over the GOOGLE_SHEETS_* environment
// variables, which win over the defaults.
func LoadSheetsConfig() (*sheets.Config, error) {
	cfg := sheets.DefaultConfig()

	if v := sheetsSetting("service_account_path"); v != "" {
		cfg.ServiceAccountPath = ExpandPath(v)
	}
	cfg.ClientID = sheetsSetting("client_id")
	cfg.ClientSecret = sheetsSetting("client_secret")
	cfg.RefreshToken = sheetsSetting("refresh_token")
	cfg.SpreadsheetID = sheetsSetting("spreadsheet_id")
	if v := sheetsSetting("spreadsheet_name"); v != "" {
		cfg.SpreadsheetName = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// sheetsSetting resolves one sheets key, e.g. "client_id" from
// sheets.client_id in viper or GOOGLE_SHEETS_CLIENT_ID in the environment.
func sheetsSetting(key string) string {
	if v := viper.GetString("sheets." + key); v != "" {
		return v
	}
	return os.Getenv("GOOGLE_SHEETS_" + strings.ToUpper(key))
}
