package model

// CommonMedication is a reference entry from the veterinary medications
// guide. Reference data only; never tied to a specific pet.
type CommonMedication struct {
	DrugName          string   `json:"drug_name"`
	DrugClass         string   `json:"drug_class"`
	CommonIndications string   `json:"common_indications"`
	TypicalDose       string   `json:"typical_dose"`
	Route             string   `json:"route"`
	Warnings          string   `json:"warnings"`
	Species           []string `json:"species"`
	CommonSideEffects []string `json:"common_side_effects"`
	ID                int64    `json:"id"`
}
