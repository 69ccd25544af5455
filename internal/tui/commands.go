package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shouniet/medpetrx/internal/common"
	"github.com/shouniet/medpetrx/internal/model"
)

// loadDocument fetches the document and its extracted data.
func (m Model) loadDocument() tea.Cmd {
	backend, docID := m.cfg.Backend, m.cfg.DocumentID
	return func() tea.Msg {
		doc, err := backend.GetDocument(context.Background(), docID)
		if err != nil {
			return errorMsg{err: err}
		}
		switch {
		case doc.ExtractionStatus == model.ExtractionPending || doc.ExtractionStatus == model.ExtractionProcessing:
			return errorMsg{err: fmt.Errorf("%w: %s is still %s", common.ErrExtractionNotReady, doc.Filename, doc.ExtractionStatus)}
		case doc.ExtractionStatus != model.ExtractionCompleted || doc.ExtractedData == nil:
			return errorMsg{err: fmt.Errorf("%w for %s", common.ErrNoExtractionData, doc.Filename)}
		}
		return documentLoadedMsg{doc: doc}
	}
}

// submitConfirmation sends the decision batch. The payload snapshot is taken
// before the command runs so edits made while a submission is in flight
// (which the UI prevents anyway) cannot leak into it.
func (m Model) submitConfirmation() tea.Cmd {
	backend := m.cfg.Backend
	petID, docID := m.cfg.PetID, m.cfg.DocumentID
	payload := m.review.Payload()
	store := m.cfg.Store

	return func() tea.Msg {
		result, err := backend.ConfirmExtraction(context.Background(), petID, docID, payload)
		if err != nil {
			return errorMsg{err: err}
		}

		if store != nil {
			if logErr := store.RecordConfirmation(context.Background(), petID, docID, *result); logErr != nil {
				slog.Warn("Failed to log confirmation locally", "error", logErr)
			}
		}
		return confirmResultMsg{result: result}
	}
}
