package model

import "time"

// LabType identifies which panel template a lab result uses.
type LabType string

// Lab panel types supported by the backend.
const (
	LabChemistry    LabType = "chemistry"
	LabElectrolytes LabType = "electrolytes"
	LabCBC          LabType = "cbc"
	LabNSAIDScreen  LabType = "nsaid_screen"
	LabUrinalysis   LabType = "urinalysis"
	LabThyroid      LabType = "thyroid"
	LabOther        LabType = "other"
)

// LabTypeLabels maps panel types to their display names.
var LabTypeLabels = map[LabType]string{
	LabChemistry:    "Chemistry Panel",
	LabElectrolytes: "Electrolytes",
	LabCBC:          "CBC (Complete Blood Count)",
	LabNSAIDScreen:  "NSAID Screen",
	LabUrinalysis:   "Urinalysis",
	LabThyroid:      "Thyroid Panel",
	LabOther:        "Other",
}

// Lab is one lab panel result. Results is an open map of analyte key to
// reported value; the set of keys depends on the panel type.
type Lab struct {
	CreatedAt    time.Time         `json:"created_at"`
	Results      map[string]string `json:"results,omitempty"`
	LabType      LabType           `json:"lab_type"`
	Veterinarian string            `json:"veterinarian,omitempty"`
	Clinic       string            `json:"clinic,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	LabDate      Date              `json:"lab_date,omitempty"`
	ID           int64             `json:"id"`
	PetID        int64             `json:"pet_id"`
	DocumentID   int64             `json:"document_id,omitempty"`
}
