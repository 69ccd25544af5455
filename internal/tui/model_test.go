package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouniet/medpetrx/internal/model"
	"github.com/shouniet/medpetrx/internal/review"
)

// stubBackend records the confirmation payload it receives.
type stubBackend struct {
	doc     *model.Document
	result  *model.ConfirmResult
	err     error
	payload map[model.Category][]review.DecisionItem
}

func (s *stubBackend) GetDocument(_ context.Context, _ int64) (*model.Document, error) {
	return s.doc, nil
}

func (s *stubBackend) ConfirmExtraction(_ context.Context, _, _ int64, payload map[model.Category][]review.DecisionItem) (*model.ConfirmResult, error) {
	s.payload = payload
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func sampleDocument() *model.Document {
	return &model.Document{
		ID:               7,
		PetID:            3,
		Filename:         "visit-summary.pdf",
		ExtractionStatus: model.ExtractionCompleted,
		ExtractedData: map[string][]model.ExtractedItem{
			"medications": {
				{"drug_name": "Amoxicillin", "strength": "500mg", "confidence": 0.92},
				{"drug_name": "Carprofen", "strength": "75mg", "confidence": 0.4},
			},
			"allergies": {
				{"substance_name": "Penicillin", "confidence": 0.7},
			},
		},
	}
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(Config{PetID: 3, DocumentID: 7})
	next, _ := m.Update(documentLoadedMsg{doc: sampleDocument()})
	loaded, ok := next.(Model)
	require.True(t, ok)
	require.Equal(t, stateReviewing, loaded.state)
	return loaded
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestLoadBuildsOneEntryPerItem(t *testing.T) {
	m := loadedModel(t)

	assert.Equal(t, 3, m.review.TotalItems())
	assert.Len(t, m.positions, 3)
	assert.Equal(t, model.CategoryMedications, m.positions[0].cat)
	assert.Equal(t, model.CategoryAllergies, m.positions[2].cat)

	counts := m.review.CountByDecision()
	assert.Equal(t, 3, counts[model.DecisionApproved], "every item defaults to approved")
}

func TestDecisionKeysMutateReviewState(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(t, m, runeKey('r'))
	assert.Equal(t, model.DecisionRejected, m.review.Entry(model.CategoryMedications, 0).Decision)
	assert.Equal(t, 1, m.cursor, "deciding advances to the next item")

	m, _ = press(t, m, runeKey('a'))
	assert.Equal(t, model.DecisionApproved, m.review.Entry(model.CategoryMedications, 1).Decision)
}

func TestTabJumpsToNextCategory(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.CategoryAllergies, m.positions[m.cursor].cat)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.CategoryMedications, m.positions[m.cursor].cat, "wraps around")
	assert.Equal(t, 0, m.positions[m.cursor].item)
}

func TestEditFormCommitsEditedDecision(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(t, m, runeKey('e'))
	require.Equal(t, stateEditing, m.state)
	require.NotEmpty(t, m.editor)
	assert.Equal(t, "drug_name", m.editor[0].name, "primary field comes first")

	// Keep the drug name, replace the strength.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.editor[m.editField].input.SetValue("150mg")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, stateReviewing, m.state)
	entry := m.review.Entry(model.CategoryMedications, 0)
	assert.Equal(t, model.DecisionEdited, entry.Decision)
	assert.Equal(t, "Amoxicillin", entry.Data["drug_name"])
	assert.Equal(t, "150mg", entry.Data["strength"])
	assert.InDelta(t, 0.92, entry.Data["confidence"], 1e-9, "confidence survives edits untouched")
}

func TestEditCancelKeepsDecision(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(t, m, runeKey('e'))
	m.editor[0].input.SetValue("Something else")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, stateReviewing, m.state)
	entry := m.review.Entry(model.CategoryMedications, 0)
	assert.Equal(t, model.DecisionApproved, entry.Decision)
	assert.Equal(t, "Amoxicillin", entry.Data["drug_name"])
}

func TestEditWithoutChangesStaysApproved(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(t, m, runeKey('e'))
	for range m.editor {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}

	entry := m.review.Entry(model.CategoryMedications, 0)
	assert.Equal(t, model.DecisionApproved, entry.Decision)
}

func TestConfirmNotRepeatableWhileInFlight(t *testing.T) {
	m := loadedModel(t)

	m, cmd := press(t, m, runeKey('c'))
	require.Equal(t, stateSubmitting, m.state)
	require.NotNil(t, cmd, "first confirm issues the submit command")

	m, cmd = press(t, m, runeKey('c'))
	assert.Equal(t, stateSubmitting, m.state)
	assert.Nil(t, cmd, "confirm is ignored while a submission is in flight")
}

func TestConfirmSubmitsCurrentDecisions(t *testing.T) {
	backend := &stubBackend{result: &model.ConfirmResult{MedicationsSaved: 1, AllergiesSaved: 1}}
	m := loadedModel(t)
	m.cfg.Backend = backend

	m, _ = press(t, m, runeKey('r'))
	_, cmd := press(t, m, runeKey('c'))
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, confirmResultMsg{}, msg)

	meds := backend.payload[model.CategoryMedications]
	require.Len(t, meds, 2)
	assert.Equal(t, "rejected", meds[0]["decision"], "rejected items go out tagged, not omitted")
	assert.Equal(t, "Amoxicillin", meds[0]["drug_name"])
	assert.Equal(t, "approved", meds[1]["decision"])

	allergies := backend.payload[model.CategoryAllergies]
	require.Len(t, allergies, 1)
	assert.Equal(t, "Penicillin", allergies[0]["substance_name"])
}

func TestSubmitFailurePreservesDecisions(t *testing.T) {
	m := loadedModel(t)
	m, _ = press(t, m, runeKey('r'))
	m, _ = press(t, m, runeKey('c'))
	require.Equal(t, stateSubmitting, m.state)

	m, _ = press(t, m, errorMsg{err: errors.New("server error")})

	assert.Equal(t, stateReviewing, m.state)
	assert.Equal(t, model.DecisionRejected, m.review.Entry(model.CategoryMedications, 0).Decision,
		"a failed submission keeps every decision")
	assert.Contains(t, m.View(), "Nothing was saved")
}

func TestDoneViewShowsCountsAndAllergyAlert(t *testing.T) {
	m := loadedModel(t)
	m, _ = press(t, m, runeKey('c'))

	result := &model.ConfirmResult{
		MedicationsSaved: 2,
		AllergiesSaved:   1,
		AllergyWarnings: []model.AllergyWarning{
			{DrugName: "Amoxicillin", AllergySubstance: "Penicillin", Severity: "severe"},
		},
	}
	m, _ = press(t, m, confirmResultMsg{result: result})

	require.Equal(t, stateDone, m.state)
	view := m.View()
	assert.Contains(t, view, "3 records saved")
	assert.Contains(t, view, "Amoxicillin")
	assert.Contains(t, view, "Penicillin")
	assert.Contains(t, view, "ALLERGY CONFLICT")
}

func TestLoadFailureShowsError(t *testing.T) {
	m := NewModel(Config{PetID: 3, DocumentID: 7})
	next, _ := m.Update(errorMsg{err: errors.New("extraction not completed")})
	failed, ok := next.(Model)
	require.True(t, ok)

	assert.Equal(t, stateFailed, failed.state)
	assert.Error(t, failed.Err())
	assert.Contains(t, failed.View(), "extraction not completed")
}
