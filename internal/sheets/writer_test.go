package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouniet/medpetrx/internal/model"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "oauth credentials",
			mutate: func(c *Config) {},
		},
		{
			name: "service account",
			mutate: func(c *Config) {
				c.ClientID, c.ClientSecret, c.RefreshToken = "", "", ""
				c.ServiceAccountPath = "/tmp/key.json"
			},
		},
		{
			name: "no auth",
			mutate: func(c *Config) {
				c.ClientID, c.ClientSecret, c.RefreshToken = "", "", ""
			},
			wantErr: "no authentication method",
		},
		{
			name: "both auth methods",
			mutate: func(c *Config) {
				c.ServiceAccountPath = "/tmp/key.json"
			},
			wantErr: "multiple authentication methods",
		},
		{
			name:    "zero batch size",
			mutate:  func(c *Config) { c.BatchSize = 0 },
			wantErr: "batch size must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ClientID = "id"
			cfg.ClientSecret = "secret"
			cfg.RefreshToken = "token"
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestPrepareExportRows(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	exports := []PetExport{
		{
			Pet: model.Pet{Name: "Biscuit", Species: "Dog", Breed: "Corgi"},
			Medications: []model.Medication{
				{DrugName: "Carprofen", Strength: "75mg", IsActive: true},
				{DrugName: "Amoxicillin", Strength: "250mg", IsActive: false},
			},
			Vaccines: []model.Vaccine{
				{Name: "Rabies", NextDueDate: model.NewDate(2025, 1, 15)},
			},
			Allergies: []model.Allergy{
				{SubstanceName: "Penicillin", AllergyType: model.AllergyTypeDrug, VetVerified: true},
			},
		},
	}

	rows := prepareExportRows(exports, now)
	require.NotEmpty(t, rows)

	flat := make(map[any]bool)
	for _, row := range rows {
		for _, cell := range row {
			flat[cell] = true
		}
	}

	assert.True(t, flat["Biscuit"], "pet header row present")
	assert.True(t, flat["Carprofen"])
	assert.True(t, flat["inactive"], "inactive medications are exported with status")
	assert.True(t, flat["OVERDUE"], "overdue vaccines are flagged")
	assert.True(t, flat["vet verified"])
}

func TestPrepareExportRowsEmpty(t *testing.T) {
	rows := prepareExportRows(nil, time.Now())
	require.Len(t, rows, 2, "just the report header")
	assert.Equal(t, "MedPetRx Health Records", rows[0][0])
}
