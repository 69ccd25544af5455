package model

import "time"

// Insurance is a pet's insurance policy details.
type Insurance struct {
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	ProviderName   string    `json:"provider_name,omitempty"`
	PolicyNumber   string    `json:"policy_number,omitempty"`
	GroupNumber    string    `json:"group_number,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	CoverageType   string    `json:"coverage_type,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	EffectiveDate  Date      `json:"effective_date,omitempty"`
	ExpirationDate Date      `json:"expiration_date,omitempty"`
	Deductible     float64   `json:"deductible,omitempty"`
	CoPayPercent   float64   `json:"co_pay_percent,omitempty"`
	AnnualLimit    float64   `json:"annual_limit,omitempty"`
	ID             int64     `json:"id"`
	PetID          int64     `json:"pet_id"`
	HasInsurance   bool      `json:"has_insurance"`
}
