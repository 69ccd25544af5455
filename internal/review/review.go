// Package review implements the extraction review reconciler. It holds the
// per-item human decisions over one document's AI extraction result and
// builds the batch confirmation payload. It owns no I/O: fetching the
// extraction and submitting the confirmation belong to the API client, so
// the reconciliation rules hold under any front end.
package review

import (
	"fmt"

	"github.com/shouniet/medpetrx/internal/model"
)

// Entry pairs a review decision with the current field values for one item.
// Data holds the original extracted values while the decision is approved or
// rejected, and the user's replacement values while it is edited.
type Entry struct {
	Data     model.ExtractedItem
	Decision model.Decision
}

// State is the review state for one document: an ordered sequence of entries
// per category, in source extraction order. Every item present in the source
// extraction has exactly one entry at all times; entries are never added or
// removed, only their decision and data change.
//
// State is owned by a single review session and is not safe for concurrent
// use.
type State struct {
	entries   map[model.Category][]Entry
	originals map[model.Category][]model.ExtractedItem
}

// New builds a State from a document's extracted data, one entry per source
// item with decision approved and data equal to the source values. Category
// keys absent from the source are treated as empty lists, never as errors.
func New(extracted map[string][]model.ExtractedItem) *State {
	s := &State{
		entries:   make(map[model.Category][]Entry, len(model.Categories)),
		originals: make(map[model.Category][]model.ExtractedItem, len(model.Categories)),
	}

	for _, c := range model.Categories {
		items := extracted[string(c)]
		entries := make([]Entry, len(items))
		originals := make([]model.ExtractedItem, len(items))
		for i, item := range items {
			originals[i] = item.Clone()
			entries[i] = Entry{Decision: model.DecisionApproved, Data: item.Clone()}
		}
		s.entries[c] = entries
		s.originals[c] = originals
	}

	return s
}

// Len returns the number of entries in a category.
func (s *State) Len(c model.Category) int {
	return len(s.entries[c])
}

// Entry returns the entry at position i in category c.
func (s *State) Entry(c model.Category, i int) Entry {
	s.mustIndex(c, i)
	return s.entries[c][i]
}

// Entries returns the entries for a category in source order. The returned
// slice and its data maps are copies; all changes go through SetDecision.
func (s *State) Entries(c model.Category) []Entry {
	out := make([]Entry, len(s.entries[c]))
	for i, e := range s.entries[c] {
		out[i] = Entry{Decision: e.Decision, Data: e.Data.Clone()}
	}
	return out
}

// Original returns the untouched source values for the item at position i in
// category c. Used to seed the edit form.
func (s *State) Original(c model.Category, i int) model.ExtractedItem {
	s.mustIndex(c, i)
	return s.originals[c][i].Clone()
}

// SetDecision replaces the entry at position i in category c. The sequence
// length and item position never change. data supplies the full replacement
// field map and is required exactly when decision is edited; switching to
// approved or rejected resets the entry's data to the original source values,
// discarding any in-progress edits.
//
// The caller guarantees a valid category and in-bounds index: violating that
// is a programming error and panics rather than surfacing a user error.
func (s *State) SetDecision(c model.Category, i int, decision model.Decision, data model.ExtractedItem) {
	s.mustIndex(c, i)

	switch decision {
	case model.DecisionEdited:
		if data == nil {
			panic("review: edited decision requires replacement data")
		}
		s.entries[c][i] = Entry{Decision: decision, Data: data.Clone()}
	case model.DecisionApproved, model.DecisionRejected:
		s.entries[c][i] = Entry{Decision: decision, Data: s.originals[c][i].Clone()}
	default:
		panic(fmt.Sprintf("review: invalid decision %q", decision))
	}
}

// CountByDecision tallies entries across all categories per decision.
func (s *State) CountByDecision() map[model.Decision]int {
	counts := make(map[model.Decision]int, 3)
	for _, c := range model.Categories {
		for _, e := range s.entries[c] {
			counts[e.Decision]++
		}
	}
	return counts
}

// TotalItems returns the number of entries across all categories.
func (s *State) TotalItems() int {
	n := 0
	for _, c := range model.Categories {
		n += len(s.entries[c])
	}
	return n
}

// DecisionItem is one outbound payload element: the item's current field
// values flattened alongside its decision tag.
type DecisionItem map[string]any

// Payload builds the flat batch confirmation payload: for every entry in
// every category, the current data plus a "decision" key. Rejected items are
// included, tagged, not omitted — every source item appears exactly once so
// the backend can make an explicit per-item no-op decision instead of
// inferring omission as rejection. Payload reads the State without mutating
// it, so repeated calls on an unchanged State produce equal payloads.
func (s *State) Payload() map[model.Category][]DecisionItem {
	out := make(map[model.Category][]DecisionItem, len(model.Categories))
	for _, c := range model.Categories {
		items := make([]DecisionItem, len(s.entries[c]))
		for i, e := range s.entries[c] {
			item := make(DecisionItem, len(e.Data)+1)
			for k, v := range e.Data {
				item[k] = v
			}
			item["decision"] = string(e.Decision)
			items[i] = item
		}
		out[c] = items
	}
	return out
}

func (s *State) mustIndex(c model.Category, i int) {
	list, ok := s.entries[c]
	if !ok {
		panic(fmt.Sprintf("review: unknown category %q", c))
	}
	if i < 0 || i >= len(list) {
		panic(fmt.Sprintf("review: index %d out of range for %s (%d items)", i, c, len(list)))
	}
}
