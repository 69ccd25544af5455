package model

import "time"

// AllergyType categorizes the source of an allergic reaction.
type AllergyType string

// Allergy type constants, matching the backend enum.
const (
	AllergyTypeDrug          AllergyType = "Drug"
	AllergyTypeFood          AllergyType = "Food"
	AllergyTypeEnvironmental AllergyType = "Environmental"
	AllergyTypeVaccine       AllergyType = "Vaccine"
)

// Allergy is a known allergy or adverse drug reaction on a pet's record.
type Allergy struct {
	CreatedAt     time.Time   `json:"created_at"`
	SubstanceName string      `json:"substance_name"`
	AllergyType   AllergyType `json:"allergy_type"`
	ReactionDesc  string      `json:"reaction_desc,omitempty"`
	Severity      string      `json:"severity,omitempty"`
	DateNoticed   Date        `json:"date_noticed,omitempty"`
	ID            int64       `json:"id"`
	PetID         int64       `json:"pet_id"`
	DocumentID    int64       `json:"document_id,omitempty"`
	VetVerified   bool        `json:"vet_verified"`
}
