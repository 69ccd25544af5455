package model

import "time"

// VetProvider is a veterinary clinic or practitioner on the owner's list.
type VetProvider struct {
	CreatedAt        time.Time `json:"created_at"`
	ClinicName       string    `json:"clinic_name"`
	VeterinarianName string    `json:"veterinarian_name,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Email            string    `json:"email,omitempty"`
	Address          string    `json:"address,omitempty"`
	Website          string    `json:"website,omitempty"`
	Specialty        string    `json:"specialty,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	ID               int64     `json:"id"`
	OwnerID          int64     `json:"owner_id"`
	IsPrimary        bool      `json:"is_primary"`
}
