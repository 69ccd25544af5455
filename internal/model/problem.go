package model

import "time"

// Problem is a diagnosed condition on a pet's problem list.
type Problem struct {
	CreatedAt     time.Time `json:"created_at"`
	ConditionName string    `json:"condition_name"`
	Notes         string    `json:"notes,omitempty"`
	OnsetDate     Date      `json:"onset_date,omitempty"`
	ID            int64     `json:"id"`
	PetID         int64     `json:"pet_id"`
	IsActive      bool      `json:"is_active"`
}
