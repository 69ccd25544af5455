package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouniet/medpetrx/internal/model"
	"github.com/shouniet/medpetrx/internal/review"
)

func testState() *review.State {
	return review.New(map[string][]model.ExtractedItem{
		"medications": {
			{"drug_name": "Amoxicillin", "strength": "500mg", "confidence": 0.92},
			{"drug_name": "Carprofen", "strength": "75mg", "confidence": 0.4},
		},
	})
}

func TestRunApprovesByDefault(t *testing.T) {
	state := testState()
	var out bytes.Buffer
	// Empty line per item accepts the default, then y to submit.
	p := NewReviewPrompter(strings.NewReader("\n\ny\n"), &out)

	submit, err := p.Run(context.Background(), state)
	require.NoError(t, err)
	assert.True(t, submit)

	counts := state.CountByDecision()
	assert.Equal(t, 2, counts[model.DecisionApproved])
	assert.Contains(t, out.String(), "Amoxicillin")
	assert.Contains(t, out.String(), "high confidence")
	assert.Contains(t, out.String(), "low confidence")
}

func TestRunRejectAndEdit(t *testing.T) {
	state := testState()
	var out bytes.Buffer
	// Reject item 1; edit item 2 keeping the drug name and changing the
	// strength; then submit.
	input := strings.Join([]string{
		"r",     // first medication: reject
		"e",     // second medication: edit
		"",      // drug_name: keep
		"150mg", // strength: replace
		"y",     // submit
	}, "\n") + "\n"
	p := NewReviewPrompter(strings.NewReader(input), &out)

	submit, err := p.Run(context.Background(), state)
	require.NoError(t, err)
	assert.True(t, submit)

	first := state.Entry(model.CategoryMedications, 0)
	assert.Equal(t, model.DecisionRejected, first.Decision)

	second := state.Entry(model.CategoryMedications, 1)
	assert.Equal(t, model.DecisionEdited, second.Decision)
	assert.Equal(t, "Carprofen", second.Data["drug_name"])
	assert.Equal(t, "150mg", second.Data["strength"])
	assert.InDelta(t, 0.4, second.Data["confidence"], 1e-9, "confidence is never offered for editing")
}

func TestRunDeclineSubmit(t *testing.T) {
	state := testState()
	var out bytes.Buffer
	p := NewReviewPrompter(strings.NewReader("a\na\nn\n"), &out)

	submit, err := p.Run(context.Background(), state)
	require.NoError(t, err)
	assert.False(t, submit)
	assert.Equal(t, 2, state.TotalItems(), "declining to submit leaves the state intact")
}

func TestRunRepromptsOnInvalidChoice(t *testing.T) {
	state := review.New(map[string][]model.ExtractedItem{
		"medications": {{"drug_name": "Amoxicillin", "confidence": 0.9}},
	})
	var out bytes.Buffer
	p := NewReviewPrompter(strings.NewReader("z\na\ny\n"), &out)

	submit, err := p.Run(context.Background(), state)
	require.NoError(t, err)
	assert.True(t, submit)
	assert.Contains(t, out.String(), "Invalid choice")
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state := testState()
	blocked, w := io.Pipe()
	defer func() { _ = w.Close() }()
	p := NewReviewPrompter(blocked, &bytes.Buffer{})

	_, err := p.Run(ctx, state)
	require.ErrorIs(t, err, ErrInputCancelled)
}
