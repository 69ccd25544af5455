package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/shouniet/medpetrx/internal/model"
	"github.com/shouniet/medpetrx/internal/review"
)

// ReviewPrompter walks a review state item by item on a plain terminal.
// It is the fallback front end for dumb terminals; the bubbletea session in
// internal/tui is the default. Both drive the same review.State, so the
// reconciliation rules are identical.
type ReviewPrompter struct {
	reader *LineReader
	writer io.Writer
}

// NewReviewPrompter creates a prompter over the given streams, defaulting
// to stdin/stdout.
func NewReviewPrompter(reader io.Reader, writer io.Writer) *ReviewPrompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &ReviewPrompter{
		reader: NewLineReader(reader),
		writer: writer,
	}
}

// Run presents every extracted item for a decision and finishes with a
// submission prompt. It returns true when the user asks to submit the batch.
// The state always holds one entry per source item when Run returns,
// whatever the user did.
func (p *ReviewPrompter) Run(ctx context.Context, state *review.State) (bool, error) {
	for _, cat := range model.Categories {
		n := state.Len(cat)
		if n == 0 {
			continue
		}

		title := fmt.Sprintf("%s (%d)", strings.ToUpper(string(cat)[:1])+string(cat)[1:], n)
		if _, err := fmt.Fprintln(p.writer, FormatTitle(title)); err != nil {
			return false, fmt.Errorf("failed to write category title: %w", err)
		}

		for i := 0; i < n; i++ {
			if err := p.reviewItem(ctx, state, cat, i); err != nil {
				return false, err
			}
		}
	}

	return p.confirmSubmit(ctx, state)
}

func (p *ReviewPrompter) reviewItem(ctx context.Context, state *review.State, cat model.Category, i int) error {
	entry := state.Entry(cat, i)
	if _, err := fmt.Fprintln(p.writer, RenderBox(itemTitle(cat, i, entry), formatItem(cat, entry))); err != nil {
		return fmt.Errorf("failed to write item box: %w", err)
	}

	if _, err := fmt.Fprintln(p.writer, "  [A] Approve as-is (default)"); err != nil {
		return fmt.Errorf("failed to write options: %w", err)
	}
	if _, err := fmt.Fprintln(p.writer, "  [E] Edit fields before saving"); err != nil {
		return fmt.Errorf("failed to write options: %w", err)
	}
	if _, err := fmt.Fprintln(p.writer, "  [R] Reject (not saved)"); err != nil {
		return fmt.Errorf("failed to write options: %w", err)
	}

	choice, err := p.promptChoice(ctx, "Decision", []string{"a", "e", "r", ""})
	if err != nil {
		return err
	}

	switch choice {
	case "a", "":
		state.SetDecision(cat, i, model.DecisionApproved, nil)
	case "r":
		state.SetDecision(cat, i, model.DecisionRejected, nil)
	case "e":
		edited, err := p.promptEdits(ctx, cat, state.Original(cat, i))
		if err != nil {
			return err
		}
		state.SetDecision(cat, i, model.DecisionEdited, edited)
	}
	return nil
}

// promptEdits asks for a replacement value per field, keeping the current
// value on empty input. Confidence is display metadata and is never offered
// for editing.
func (p *ReviewPrompter) promptEdits(ctx context.Context, cat model.Category, item model.ExtractedItem) (model.ExtractedItem, error) {
	edited := item.Clone()
	for _, field := range editableFields(cat, item) {
		current := fmt.Sprintf("%v", item[field])
		prompt := fmt.Sprintf("%s [%s]", strings.ReplaceAll(field, "_", " "), current)
		if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
			return nil, fmt.Errorf("failed to write edit prompt: %w", err)
		}

		line, err := p.reader.ReadLine(ctx)
		if err != nil {
			return nil, err
		}
		if line != "" {
			edited[field] = line
		}
	}
	return edited, nil
}

func (p *ReviewPrompter) confirmSubmit(ctx context.Context, state *review.State) (bool, error) {
	counts := state.CountByDecision()
	summary := fmt.Sprintf("%s approved, %s edited, %s rejected",
		SuccessStyle.Render(fmt.Sprintf("%d", counts[model.DecisionApproved])),
		EditStyle.Render(fmt.Sprintf("%d", counts[model.DecisionEdited])),
		ErrorStyle.Render(fmt.Sprintf("%d", counts[model.DecisionRejected])))

	if _, err := fmt.Fprintln(p.writer, RenderBox("Ready to submit", summary)); err != nil {
		return false, fmt.Errorf("failed to write summary: %w", err)
	}

	choice, err := p.promptChoice(ctx, "Confirm all & save? [y/N]", []string{"y", "n", ""})
	if err != nil {
		return false, err
	}
	return choice == "y", nil
}

func (p *ReviewPrompter) promptChoice(ctx context.Context, prompt string, valid []string) (string, error) {
	for {
		if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := p.reader.ReadLine(ctx)
		if err != nil {
			return "", err
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		for _, v := range valid {
			if choice == v {
				return choice, nil
			}
		}

		if _, err := fmt.Fprintln(p.writer, FormatError("Invalid choice, try again")); err != nil {
			return "", fmt.Errorf("failed to write error: %w", err)
		}
	}
}

func itemTitle(cat model.Category, i int, entry review.Entry) string {
	label := entry.Data.PrimaryLabel(cat)
	if label == "" {
		label = fmt.Sprintf("item %d", i+1)
	}
	tier := review.Tier(entry.Data.Confidence())
	badge := TierStyle(tier).Render(fmt.Sprintf("%.0f%% · %s", entry.Data.Confidence()*100, tier.Label()))
	return fmt.Sprintf("%s  %s", label, badge)
}

func formatItem(cat model.Category, entry review.Entry) string {
	var lines []string
	for _, field := range editableFields(cat, entry.Data) {
		if field == cat.PrimaryField() {
			continue
		}
		value := entry.Data[field]
		if value == nil || value == "" {
			continue
		}
		name := strings.ReplaceAll(field, "_", " ")
		lines = append(lines, fmt.Sprintf("%s: %v", SubtleStyle.Render(name), value))
	}
	if len(lines) == 0 {
		return SubtleStyle.Render("(no additional fields)")
	}
	return strings.Join(lines, "\n")
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
