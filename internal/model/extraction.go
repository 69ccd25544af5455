package model

// Category is one of the record kinds an extraction can produce.
type Category string

// Extraction categories, in display and commit order.
const (
	CategoryMedications Category = "medications"
	CategoryVaccines    Category = "vaccines"
	CategoryAllergies   Category = "allergies"
	CategoryProblems    Category = "problems"
)

// Categories lists every extraction category in its canonical order.
var Categories = []Category{
	CategoryMedications,
	CategoryVaccines,
	CategoryAllergies,
	CategoryProblems,
}

// PrimaryField names the field that identifies an item of this category.
func (c Category) PrimaryField() string {
	switch c {
	case CategoryMedications:
		return "drug_name"
	case CategoryVaccines:
		return "name"
	case CategoryAllergies:
		return "substance_name"
	case CategoryProblems:
		return "condition_name"
	}
	return ""
}

// Valid reports whether c is a known extraction category.
func (c Category) Valid() bool {
	return c.PrimaryField() != ""
}

// ExtractedItem is one AI-suggested record: an open mapping from field name
// to value, plus a confidence score under the "confidence" key. The shape
// varies by category, so fields are not modeled individually.
type ExtractedItem map[string]any

// Confidence returns the extraction service's certainty score in [0,1],
// or zero when the item carries none.
func (it ExtractedItem) Confidence() float64 {
	switch v := it["confidence"].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// PrimaryLabel returns the item's identifying value for the given category,
// e.g. the drug name for a medication.
func (it ExtractedItem) PrimaryLabel(c Category) string {
	if v, ok := it[c.PrimaryField()].(string); ok {
		return v
	}
	return ""
}

// Clone returns a shallow copy of the item. Field values are strings,
// numbers, and booleans, so a shallow copy is a full copy in practice.
func (it ExtractedItem) Clone() ExtractedItem {
	out := make(ExtractedItem, len(it))
	for k, v := range it {
		out[k] = v
	}
	return out
}

// Decision is the human disposition applied to one extracted item.
type Decision string

// Review decisions.
const (
	DecisionApproved Decision = "approved"
	DecisionEdited   Decision = "edited"
	DecisionRejected Decision = "rejected"
)

// Valid reports whether d is a known review decision.
func (d Decision) Valid() bool {
	switch d {
	case DecisionApproved, DecisionEdited, DecisionRejected:
		return true
	}
	return false
}

// ConfirmResult is the backend's response to a batch confirmation.
type ConfirmResult struct {
	AllergyWarnings  []AllergyWarning `json:"allergy_warnings"`
	MedicationsSaved int              `json:"medications_saved"`
	VaccinesSaved    int              `json:"vaccines_saved"`
	AllergiesSaved   int              `json:"allergies_saved"`
	ProblemsSaved    int              `json:"problems_saved"`
}

// TotalSaved sums the per-category save counts.
func (r ConfirmResult) TotalSaved() int {
	return r.MedicationsSaved + r.VaccinesSaved + r.AllergiesSaved + r.ProblemsSaved
}
