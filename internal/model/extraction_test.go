package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryPrimaryField(t *testing.T) {
	assert.Equal(t, "drug_name", CategoryMedications.PrimaryField())
	assert.Equal(t, "name", CategoryVaccines.PrimaryField())
	assert.Equal(t, "substance_name", CategoryAllergies.PrimaryField())
	assert.Equal(t, "condition_name", CategoryProblems.PrimaryField())

	assert.False(t, Category("labs").Valid())
}

func TestExtractedItemConfidence(t *testing.T) {
	assert.InDelta(t, 0.92, ExtractedItem{"confidence": 0.92}.Confidence(), 1e-9)
	assert.InDelta(t, 1.0, ExtractedItem{"confidence": 1}.Confidence(), 1e-9)
	assert.Zero(t, ExtractedItem{}.Confidence())
	assert.Zero(t, ExtractedItem{"confidence": "high"}.Confidence())
}

func TestExtractedItemClone(t *testing.T) {
	item := ExtractedItem{"drug_name": "Amoxicillin", "confidence": 0.92}
	clone := item.Clone()
	clone["drug_name"] = "Carprofen"

	assert.Equal(t, "Amoxicillin", item["drug_name"], "clones do not share state")
}

func TestConfirmResultTotalSaved(t *testing.T) {
	result := ConfirmResult{
		MedicationsSaved: 2,
		VaccinesSaved:    1,
		AllergiesSaved:   1,
	}
	assert.Equal(t, 4, result.TotalSaved())
}
