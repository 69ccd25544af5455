package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouniet/medpetrx/internal/model"
)

func sampleExtraction() map[string][]model.ExtractedItem {
	return map[string][]model.ExtractedItem{
		"medications": {
			{"drug_name": "Amoxicillin", "strength": "500mg", "confidence": 0.92},
			{"drug_name": "Carprofen", "strength": "75mg", "confidence": 0.61},
		},
		"vaccines": {
			{"name": "Rabies", "clinic": "Main St Vet", "confidence": 0.88},
		},
		"allergies": {
			{"substance_name": "Penicillin", "severity": "Severe", "confidence": 0.43},
		},
		// problems deliberately absent: must map to an empty list.
	}
}

func TestNewLoadsEveryItem(t *testing.T) {
	src := sampleExtraction()
	s := New(src)

	assert.Equal(t, 2, s.Len(model.CategoryMedications))
	assert.Equal(t, 1, s.Len(model.CategoryVaccines))
	assert.Equal(t, 1, s.Len(model.CategoryAllergies))
	assert.Equal(t, 0, s.Len(model.CategoryProblems))
	assert.Equal(t, 4, s.TotalItems())

	for _, c := range model.Categories {
		for i, e := range s.Entries(c) {
			assert.Equal(t, model.DecisionApproved, e.Decision)
			assert.Equal(t, src[string(c)][i], e.Data, "data must equal source exactly")
		}
	}
}

func TestNewCopiesSourceItems(t *testing.T) {
	src := sampleExtraction()
	s := New(src)

	// Mutating the caller's maps after load must not leak into the state.
	src["medications"][0]["drug_name"] = "Tampered"

	assert.Equal(t, "Amoxicillin", s.Entry(model.CategoryMedications, 0).Data["drug_name"])
}

func TestEntriesReturnsDetachedCopies(t *testing.T) {
	s := New(sampleExtraction())

	entries := s.Entries(model.CategoryMedications)
	entries[0].Decision = model.DecisionRejected
	entries[0].Data["drug_name"] = "Tampered"

	e := s.Entry(model.CategoryMedications, 0)
	assert.Equal(t, model.DecisionApproved, e.Decision, "state only changes through SetDecision")
	assert.Equal(t, "Amoxicillin", e.Data["drug_name"])
}

func TestSetDecisionRejectLeavesOthersUntouched(t *testing.T) {
	s := New(sampleExtraction())

	s.SetDecision(model.CategoryMedications, 0, model.DecisionRejected, nil)

	first := s.Entry(model.CategoryMedications, 0)
	assert.Equal(t, model.DecisionRejected, first.Decision)
	assert.Equal(t, "Amoxicillin", first.Data["drug_name"], "rejected items keep original data")

	second := s.Entry(model.CategoryMedications, 1)
	assert.Equal(t, model.DecisionApproved, second.Decision)
	assert.Equal(t, "Carprofen", second.Data["drug_name"])

	vax := s.Entry(model.CategoryVaccines, 0)
	assert.Equal(t, model.DecisionApproved, vax.Decision)
}

func TestSetDecisionEditReplacesData(t *testing.T) {
	s := New(sampleExtraction())

	edited := s.Original(model.CategoryMedications, 0)
	edited["strength"] = "250mg"
	s.SetDecision(model.CategoryMedications, 0, model.DecisionEdited, edited)

	e := s.Entry(model.CategoryMedications, 0)
	assert.Equal(t, model.DecisionEdited, e.Decision)
	assert.Equal(t, "250mg", e.Data["strength"])
	assert.Equal(t, "Amoxicillin", e.Data["drug_name"])

	// Edits committed into the state must not alias the caller's map.
	edited["strength"] = "999mg"
	assert.Equal(t, "250mg", s.Entry(model.CategoryMedications, 0).Data["strength"])
}

func TestToggleAwayFromEditDiscardsEdits(t *testing.T) {
	s := New(sampleExtraction())

	edited := s.Original(model.CategoryMedications, 0)
	edited["strength"] = "250mg"
	s.SetDecision(model.CategoryMedications, 0, model.DecisionEdited, edited)
	s.SetDecision(model.CategoryMedications, 0, model.DecisionApproved, nil)

	e := s.Entry(model.CategoryMedications, 0)
	assert.Equal(t, model.DecisionApproved, e.Decision)
	assert.Equal(t, "500mg", e.Data["strength"], "switching away from edited resets to source values")
}

func TestSetDecisionContractViolationsPanic(t *testing.T) {
	s := New(sampleExtraction())

	assert.Panics(t, func() {
		s.SetDecision(model.CategoryMedications, 5, model.DecisionApproved, nil)
	}, "out-of-range index")
	assert.Panics(t, func() {
		s.SetDecision(model.Category("labs"), 0, model.DecisionApproved, nil)
	}, "unknown category")
	assert.Panics(t, func() {
		s.SetDecision(model.CategoryMedications, 0, model.DecisionEdited, nil)
	}, "edited without data")
	assert.Panics(t, func() {
		s.SetDecision(model.CategoryMedications, 0, model.Decision("skipped"), nil)
	}, "unknown decision")
}

func TestPayloadIncludesRejectedItems(t *testing.T) {
	s := New(sampleExtraction())
	s.SetDecision(model.CategoryMedications, 0, model.DecisionRejected, nil)
	s.SetDecision(model.CategoryMedications, 1, model.DecisionRejected, nil)

	payload := s.Payload()

	require.Len(t, payload[model.CategoryMedications], 2,
		"every source item appears in the payload exactly once, tagged")
	for _, item := range payload[model.CategoryMedications] {
		assert.Equal(t, "rejected", item["decision"])
	}
	require.Len(t, payload[model.CategoryVaccines], 1)
	assert.Equal(t, "approved", payload[model.CategoryVaccines][0]["decision"])
}

func TestPayloadSingleMedicationScenario(t *testing.T) {
	s := New(map[string][]model.ExtractedItem{
		"medications": {{"drug_name": "Amoxicillin", "confidence": 0.92}},
	})

	payload := s.Payload()

	require.Len(t, payload[model.CategoryMedications], 1)
	assert.Equal(t, DecisionItem{
		"decision":   "approved",
		"drug_name":  "Amoxicillin",
		"confidence": 0.92,
	}, payload[model.CategoryMedications][0])

	assert.Empty(t, payload[model.CategoryVaccines])
	assert.Empty(t, payload[model.CategoryAllergies])
	assert.Empty(t, payload[model.CategoryProblems])
	assert.NotNil(t, payload[model.CategoryVaccines], "absent categories serialize as [], not null")
}

func TestPayloadEditedMedicationScenario(t *testing.T) {
	s := New(map[string][]model.ExtractedItem{
		"medications": {{"drug_name": "Amoxicillin", "confidence": 0.92}},
	})

	edited := s.Original(model.CategoryMedications, 0)
	edited["strength"] = "250mg"
	s.SetDecision(model.CategoryMedications, 0, model.DecisionEdited, edited)

	payload := s.Payload()
	require.Len(t, payload[model.CategoryMedications], 1)
	assert.Equal(t, DecisionItem{
		"decision":   "edited",
		"drug_name":  "Amoxicillin",
		"strength":   "250mg",
		"confidence": 0.92,
	}, payload[model.CategoryMedications][0])
}

func TestPayloadIdempotent(t *testing.T) {
	s := New(sampleExtraction())
	s.SetDecision(model.CategoryAllergies, 0, model.DecisionRejected, nil)

	first := s.Payload()
	second := s.Payload()

	assert.Equal(t, first, second, "unchanged state yields the same payload every time")
}

func TestCountByDecision(t *testing.T) {
	s := New(sampleExtraction())
	s.SetDecision(model.CategoryMedications, 0, model.DecisionRejected, nil)
	edited := s.Original(model.CategoryVaccines, 0)
	edited["clinic"] = "Elm St Vet"
	s.SetDecision(model.CategoryVaccines, 0, model.DecisionEdited, edited)

	counts := s.CountByDecision()
	assert.Equal(t, 2, counts[model.DecisionApproved])
	assert.Equal(t, 1, counts[model.DecisionEdited])
	assert.Equal(t, 1, counts[model.DecisionRejected])
}
