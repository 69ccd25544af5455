package tui

import (
	"github.com/shouniet/medpetrx/internal/model"
)

// documentLoadedMsg carries the fetched document into the model.
type documentLoadedMsg struct {
	doc *model.Document
}

// confirmResultMsg carries a successful batch confirmation response.
type confirmResultMsg struct {
	result *model.ConfirmResult
}

// errorMsg carries a terminal failure for the current attempt. The review
// state survives it so the user can retry.
type errorMsg struct {
	err error
}
