package model

import "time"

// Medication is a prescription or OTC drug on a pet's record.
type Medication struct {
	CreatedAt          time.Time `json:"created_at"`
	DrugName           string    `json:"drug_name"`
	Strength           string    `json:"strength,omitempty"`
	Directions         string    `json:"directions,omitempty"`
	Indication         string    `json:"indication,omitempty"`
	Prescriber         string    `json:"prescriber,omitempty"`
	Pharmacy           string    `json:"pharmacy,omitempty"`
	StartDate          Date      `json:"start_date,omitempty"`
	StopDate           Date      `json:"stop_date,omitempty"`
	RefillReminderDate Date      `json:"refill_reminder_date,omitempty"`
	ID                 int64     `json:"id"`
	PetID              int64     `json:"pet_id"`
	DocumentID         int64     `json:"document_id,omitempty"`
	IsActive           bool      `json:"is_active"`
}

// AllergyWarning flags a saved medication that matches a known allergy
// on file for the same pet. Returned by the backend after a save, so it
// always arrives after the fact.
type AllergyWarning struct {
	DrugName         string `json:"drug_name"`
	AllergySubstance string `json:"allergy_substance,omitempty"`
	Severity         string `json:"severity,omitempty"`
}

// MedicationCreateResult pairs a created medication with any allergy
// conflicts the backend detected while saving it.
type MedicationCreateResult struct {
	Medication      Medication       `json:"medication"`
	AllergyWarnings []AllergyWarning `json:"allergy_warnings"`
}
