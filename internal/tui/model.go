// Package tui implements the interactive extraction review session: one
// bubbletea program that walks the reviewer through every extracted item,
// collects approve/edit/reject decisions, and submits the batch confirmation.
package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shouniet/medpetrx/internal/model"
	"github.com/shouniet/medpetrx/internal/review"
	"github.com/shouniet/medpetrx/internal/service"
)

// Config holds the dependencies for a review session.
type Config struct {
	Backend    service.ReviewBackend
	Store      service.ReferenceStore
	PetName    string
	PetID      int64
	DocumentID int64
}

// sessionState tracks which screen the session is on.
type sessionState int

const (
	stateLoading sessionState = iota
	stateReviewing
	stateEditing
	stateSubmitting
	stateDone
	stateFailed
)

// position addresses one entry in the review state.
type position struct {
	cat  model.Category
	item int
}

// fieldEditor is one field of the in-progress edit form.
type fieldEditor struct {
	name  string
	input textinput.Model
}

// Model is the bubbletea model for the review session.
type Model struct {
	cfg   Config
	keys  KeyMap
	state sessionState

	doc       *model.Document
	review    *review.State
	positions []position
	cursor    int

	editor    []fieldEditor
	editField int

	result    *model.ConfirmResult
	submitErr error
	loadErr   error

	width  int
	height int
}

// NewModel creates the session model. The document and its extracted data are
// fetched as the program starts.
func NewModel(cfg Config) Model {
	return Model{
		cfg:   cfg,
		keys:  DefaultKeyMap(),
		state: stateLoading,
	}
}

// Init starts the document fetch.
func (m Model) Init() tea.Cmd {
	return m.loadDocument()
}

// Result returns the confirmation response, or nil when the session ended
// without a successful submission.
func (m Model) Result() *model.ConfirmResult {
	return m.result
}

// Err returns the error the session failed on, if any.
func (m Model) Err() error {
	return m.loadErr
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case documentLoadedMsg:
		m.doc = msg.doc
		m.review = review.New(msg.doc.ExtractedData)
		m.positions = buildPositions(m.review)
		m.cursor = 0
		m.state = stateReviewing
		return m, nil

	case confirmResultMsg:
		m.result = msg.result
		m.state = stateDone
		return m, nil

	case errorMsg:
		switch m.state {
		case stateLoading:
			m.loadErr = msg.err
			m.state = stateFailed
		case stateSubmitting:
			// Nothing was committed. Keep every decision so the user can
			// retry or quit.
			m.submitErr = msg.err
			m.state = stateReviewing
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateEditing:
		return m.handleEditKey(msg)
	case stateReviewing:
		return m.handleReviewKey(msg)
	case stateDone, stateFailed:
		if key.Matches(msg, m.keys.Quit) || msg.String() == "enter" {
			return m, tea.Quit
		}
	case stateLoading, stateSubmitting:
		// Quitting mid-submit would leave the outcome unknown, so only the
		// loading screen honors it.
		if m.state == stateLoading && key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.positions)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.NextCategory):
		m.cursor = m.nextCategoryStart()
		return m, nil

	case key.Matches(msg, m.keys.Approve):
		if pos, ok := m.current(); ok {
			m.review.SetDecision(pos.cat, pos.item, model.DecisionApproved, nil)
			m.advance()
		}
		return m, nil

	case key.Matches(msg, m.keys.Reject):
		if pos, ok := m.current(); ok {
			m.review.SetDecision(pos.cat, pos.item, model.DecisionRejected, nil)
			m.advance()
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if pos, ok := m.current(); ok {
			m.startEdit(pos)
			m.state = stateEditing
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.submitErr = nil
		m.state = stateSubmitting
		return m, m.submitConfirmation()
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CancelEdit):
		m.editor = nil
		m.state = stateReviewing
		return m, nil

	case key.Matches(msg, m.keys.CommitField):
		if m.editField < len(m.editor)-1 {
			m.editor[m.editField].input.Blur()
			m.editField++
			m.editor[m.editField].input.Focus()
			return m, textinput.Blink
		}
		m.commitEdit()
		m.state = stateReviewing
		m.advance()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor[m.editField].input, cmd = m.editor[m.editField].input.Update(msg)
	return m, cmd
}

// startEdit builds the edit form for the item at pos, one input per field,
// prefilled with the item's current values. Confidence is display metadata
// and never appears in the form.
func (m *Model) startEdit(pos position) {
	entry := m.review.Entry(pos.cat, pos.item)
	fields := editableFields(pos.cat, entry.Data)

	m.editor = make([]fieldEditor, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.SetValue(fmt.Sprintf("%v", entry.Data[f]))
		in.CharLimit = 200
		if i == 0 {
			in.Focus()
		}
		m.editor[i] = fieldEditor{name: f, input: in}
	}
	m.editField = 0
}

// commitEdit applies the form values as an edited decision. Fields whose
// text is unchanged keep their original value (and type); only touched
// fields are replaced.
func (m *Model) commitEdit() {
	pos := m.positions[m.cursor]
	entry := m.review.Entry(pos.cat, pos.item)

	edited := entry.Data.Clone()
	changed := false
	for _, fe := range m.editor {
		if fe.input.Value() != fmt.Sprintf("%v", entry.Data[fe.name]) {
			edited[fe.name] = fe.input.Value()
			changed = true
		}
	}
	m.editor = nil

	if !changed && entry.Decision != model.DecisionEdited {
		return
	}
	m.review.SetDecision(pos.cat, pos.item, model.DecisionEdited, edited)
}

func (m Model) current() (position, bool) {
	if len(m.positions) == 0 {
		return position{}, false
	}
	return m.positions[m.cursor], true
}

func (m *Model) advance() {
	if m.cursor < len(m.positions)-1 {
		m.cursor++
	}
}

// nextCategoryStart returns the index of the first item of the next non-empty
// category, wrapping around.
func (m Model) nextCategoryStart() int {
	if len(m.positions) == 0 {
		return 0
	}
	cur := m.positions[m.cursor].cat
	for i := 1; i <= len(m.positions); i++ {
		idx := (m.cursor + i) % len(m.positions)
		if m.positions[idx].cat != cur {
			// Rewind to the category's first item.
			for idx > 0 && m.positions[idx-1].cat == m.positions[idx].cat {
				idx--
			}
			return idx
		}
	}
	return m.cursor
}

// buildPositions flattens the review state into display order.
func buildPositions(s *review.State) []position {
	var out []position
	for _, c := range model.Categories {
		for i := 0; i < s.Len(c); i++ {
			out = append(out, position{cat: c, item: i})
		}
	}
	return out
}

// editableFields returns the item's field names in stable order, primary
// label first, confidence excluded.
func editableFields(cat model.Category, item model.ExtractedItem) []string {
	fields := make([]string, 0, len(item))
	for k := range item {
		if k == "confidence" {
			continue
		}
		fields = append(fields, k)
	}
	sort.Strings(fields)

	primary := cat.PrimaryField()
	for i, f := range fields {
		if f == primary && i > 0 {
			copy(fields[1:i+1], fields[:i])
			fields[0] = primary
			break
		}
	}
	return fields
}
