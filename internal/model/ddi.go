package model

// InteractionReport is the result of a drug-drug interaction check.
// The disclaimer comes from the backend and must be shown verbatim.
type InteractionReport struct {
	Disclaimer   string        `json:"disclaimer"`
	DrugsChecked []string      `json:"drugs_checked"`
	Interactions []Interaction `json:"interactions"`
}

// Interaction is one reported conflict between two drugs.
type Interaction struct {
	DrugA       string `json:"drug_a"`
	DrugB       string `json:"drug_b"`
	Description string `json:"description"`
	Severity    string `json:"severity,omitempty"`
}
