package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shouniet/medpetrx/internal/cli"
	"github.com/shouniet/medpetrx/internal/common"
	"github.com/shouniet/medpetrx/internal/model"
	"github.com/shouniet/medpetrx/internal/review"
)

var (
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	helpStyle   = lipgloss.NewStyle().Foreground(cli.SubtleColor)
)

// View renders the current screen.
func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return cli.FormatTitle("Extraction review") + "\n\nLoading document…\n"
	case stateFailed:
		return m.failedView()
	case stateDone:
		return m.doneView()
	case stateEditing:
		return m.editView()
	default:
		return m.reviewView()
	}
}

func (m Model) reviewView() string {
	var b strings.Builder

	title := "Extraction review"
	if m.cfg.PetName != "" && m.doc != nil {
		title = fmt.Sprintf("Extraction review — %s / %s", m.cfg.PetName, m.doc.Filename)
	}
	b.WriteString(cli.FormatTitle(title))
	b.WriteString("\n")

	if len(m.positions) == 0 {
		b.WriteString(cli.SubtleStyle.Render("No items were extracted from this document."))
		b.WriteString("\n\n")
	}

	for _, c := range model.Categories {
		entries := m.review.Entries(c)
		b.WriteString(fmt.Sprintf("\n%s (%d)\n", categoryHeading(c), len(entries)))
		if len(entries) == 0 {
			b.WriteString(cli.SubtleStyle.Render("  none") + "\n")
			continue
		}
		for i, e := range entries {
			b.WriteString(m.renderEntry(c, i, e))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.summaryLine())
	b.WriteString("\n")

	if m.submitErr != nil {
		b.WriteString(cli.FormatError("Save failed: "+common.FormatUserError(m.submitErr)) + "\n")
		b.WriteString(cli.SubtleStyle.Render("Nothing was saved. Your decisions are unchanged; press c to try again.") + "\n")
	}

	if m.state == stateSubmitting {
		b.WriteString(cli.WarningStyle.Render("Saving…") + "\n")
	} else {
		b.WriteString(helpStyle.Render("↑/↓ move · Tab category · a approve · e edit · r reject · c confirm all & save · q quit"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderEntry(c model.Category, i int, e review.Entry) string {
	marker := "  "
	if pos, ok := m.current(); ok && pos.cat == c && pos.item == i && m.state != stateSubmitting {
		marker = cursorStyle.Render("▸ ")
	}

	label := e.Data.PrimaryLabel(c)
	if label == "" {
		label = fmt.Sprintf("item %d", i+1)
	}

	tier := review.Tier(e.Data.Confidence())
	badge := cli.TierStyle(tier).Render(fmt.Sprintf("%.0f%% %s", e.Data.Confidence()*100, tier.Label()))
	decision := cli.DecisionStyle(string(e.Decision)).Render(string(e.Decision))

	line := fmt.Sprintf("%s%-30s %-22s %s", marker, label, badge, decision)

	if detail := entryDetail(c, e); detail != "" {
		line += "\n    " + cli.SubtleStyle.Render(detail)
	}
	return line
}

// entryDetail summarizes the secondary fields on one line.
func entryDetail(c model.Category, e review.Entry) string {
	var parts []string
	for _, f := range editableFields(c, e.Data) {
		if f == c.PrimaryField() {
			continue
		}
		v := e.Data[f]
		if v == nil || v == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", strings.ReplaceAll(f, "_", " "), v))
	}
	return strings.Join(parts, " · ")
}

func (m Model) summaryLine() string {
	counts := m.review.CountByDecision()
	return fmt.Sprintf("%s approved · %s edited · %s rejected",
		cli.SuccessStyle.Render(fmt.Sprintf("%d", counts[model.DecisionApproved])),
		cli.EditStyle.Render(fmt.Sprintf("%d", counts[model.DecisionEdited])),
		cli.ErrorStyle.Render(fmt.Sprintf("%d", counts[model.DecisionRejected])))
}

func (m Model) editView() string {
	pos := m.positions[m.cursor]
	entry := m.review.Entry(pos.cat, pos.item)

	var b strings.Builder
	label := entry.Data.PrimaryLabel(pos.cat)
	if label == "" {
		label = fmt.Sprintf("item %d", pos.item+1)
	}
	b.WriteString(cli.FormatTitle(fmt.Sprintf("Edit %s — %s", strings.TrimSuffix(string(pos.cat), "s"), label)))
	b.WriteString("\n\n")

	for i, fe := range m.editor {
		name := strings.ReplaceAll(fe.name, "_", " ")
		if i == m.editField {
			b.WriteString(cursorStyle.Render(name) + "\n")
		} else {
			b.WriteString(cli.SubtleStyle.Render(name) + "\n")
		}
		b.WriteString(fe.input.View() + "\n\n")
	}

	b.WriteString(helpStyle.Render("Enter next field / save · Esc cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) doneView() string {
	var b strings.Builder
	b.WriteString(cli.FormatTitle("Records saved"))
	b.WriteString("\n\n")
	b.WriteString(cli.FormatSuccess(fmt.Sprintf("%d records saved to the pet's chart", m.result.TotalSaved())))
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("medications %d · vaccines %d · allergies %d · problems %d",
		m.result.MedicationsSaved, m.result.VaccinesSaved, m.result.AllergiesSaved, m.result.ProblemsSaved)))
	b.WriteString("\n")

	for _, w := range m.result.AllergyWarnings {
		b.WriteString("\n")
		b.WriteString(cli.FormatAlert(fmt.Sprintf("ALLERGY CONFLICT: %s conflicts with recorded allergy to %s (%s)",
			w.DrugName, w.AllergySubstance, w.Severity)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Press q to exit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) failedView() string {
	var b strings.Builder
	b.WriteString(cli.FormatTitle("Extraction review"))
	b.WriteString("\n\n")
	b.WriteString(cli.FormatError(common.FormatUserError(m.loadErr)))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Press q to exit"))
	b.WriteString("\n")
	return b.String()
}

func categoryHeading(c model.Category) string {
	s := string(c)
	return cli.TitleStyle.UnsetMargins().Render(strings.ToUpper(s[:1]) + s[1:])
}
