package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shouniet/medpetrx/internal/model"
)

// MedicationCreate is the request body for adding a medication.
type MedicationCreate struct {
	DrugName           string     `json:"drug_name"`
	Strength           string     `json:"strength,omitempty"`
	Directions         string     `json:"directions,omitempty"`
	Indication         string     `json:"indication,omitempty"`
	Prescriber         string     `json:"prescriber,omitempty"`
	Pharmacy           string     `json:"pharmacy,omitempty"`
	StartDate          model.Date `json:"start_date,omitempty"`
	StopDate           model.Date `json:"stop_date,omitempty"`
	RefillReminderDate model.Date `json:"refill_reminder_date,omitempty"`
	IsActive           bool       `json:"is_active"`
}

// ListMedications returns a pet's medications, optionally only active ones.
func (c *Client) ListMedications(ctx context.Context, petID int64, activeOnly bool) ([]model.Medication, error) {
	path := fmt.Sprintf("/pets/%d/medications", petID)
	if activeOnly {
		path += "?active_only=true"
	}
	var meds []model.Medication
	if err := c.do(ctx, http.MethodGet, path, nil, &meds); err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return meds, nil
}

// CreateMedication adds a medication. The result includes any allergy
// conflicts the backend found against the pet's allergy list.
func (c *Client) CreateMedication(ctx context.Context, petID int64, req MedicationCreate) (*model.MedicationCreateResult, error) {
	var result model.MedicationCreateResult
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/pets/%d/medications", petID), req, &result); err != nil {
		return nil, fmt.Errorf("failed to create medication: %w", err)
	}
	return &result, nil
}

// DeactivateMedication marks a medication inactive without deleting it.
func (c *Client) DeactivateMedication(ctx context.Context, petID, medID int64) error {
	path := fmt.Sprintf("/pets/%d/medications/%d/deactivate", petID, medID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to deactivate medication %d: %w", medID, err)
	}
	return nil
}

// VaccineCreate is the request body for adding a vaccine.
type VaccineCreate struct {
	Name        string     `json:"name"`
	Clinic      string     `json:"clinic,omitempty"`
	LotNumber   string     `json:"lot_number,omitempty"`
	DateGiven   model.Date `json:"date_given,omitempty"`
	NextDueDate model.Date `json:"next_due_date,omitempty"`
}

// ListVaccines returns a pet's vaccine history.
func (c *Client) ListVaccines(ctx context.Context, petID int64) ([]model.Vaccine, error) {
	var vaccines []model.Vaccine
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pets/%d/vaccines", petID), nil, &vaccines); err != nil {
		return nil, fmt.Errorf("failed to list vaccines: %w", err)
	}
	return vaccines, nil
}

// CreateVaccine adds a vaccine record.
func (c *Client) CreateVaccine(ctx context.Context, petID int64, req VaccineCreate) (*model.Vaccine, error) {
	var vaccine model.Vaccine
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/pets/%d/vaccines", petID), req, &vaccine); err != nil {
		return nil, fmt.Errorf("failed to create vaccine: %w", err)
	}
	return &vaccine, nil
}

// AllergyCreate is the request body for adding an allergy.
type AllergyCreate struct {
	SubstanceName string            `json:"substance_name"`
	AllergyType   model.AllergyType `json:"allergy_type"`
	ReactionDesc  string            `json:"reaction_desc,omitempty"`
	Severity      string            `json:"severity,omitempty"`
	DateNoticed   model.Date        `json:"date_noticed,omitempty"`
}

// ListAllergies returns a pet's known allergies.
func (c *Client) ListAllergies(ctx context.Context, petID int64) ([]model.Allergy, error) {
	var allergies []model.Allergy
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pets/%d/allergies", petID), nil, &allergies); err != nil {
		return nil, fmt.Errorf("failed to list allergies: %w", err)
	}
	return allergies, nil
}

// CreateAllergy adds an allergy record.
func (c *Client) CreateAllergy(ctx context.Context, petID int64, req AllergyCreate) (*model.Allergy, error) {
	var allergy model.Allergy
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/pets/%d/allergies", petID), req, &allergy); err != nil {
		return nil, fmt.Errorf("failed to create allergy: %w", err)
	}
	return &allergy, nil
}

// ProblemCreate is the request body for adding a problem.
type ProblemCreate struct {
	ConditionName string     `json:"condition_name"`
	Notes         string     `json:"notes,omitempty"`
	OnsetDate     model.Date `json:"onset_date,omitempty"`
	IsActive      bool       `json:"is_active"`
}

// ListProblems returns a pet's problem list.
func (c *Client) ListProblems(ctx context.Context, petID int64) ([]model.Problem, error) {
	var problems []model.Problem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pets/%d/problems", petID), nil, &problems); err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	return problems, nil
}

// CreateProblem adds a condition to the problem list.
func (c *Client) CreateProblem(ctx context.Context, petID int64, req ProblemCreate) (*model.Problem, error) {
	var problem model.Problem
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/pets/%d/problems", petID), req, &problem); err != nil {
		return nil, fmt.Errorf("failed to create problem: %w", err)
	}
	return &problem, nil
}
