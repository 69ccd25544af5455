// Package cli provides styled terminal output and the plain-terminal
// review prompter.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/shouniet/medpetrx/internal/review"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#5B8DEF")
	// SuccessColor indicates approved items and successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates medium confidence and caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates rejected items, low confidence, and failures.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// EditColor indicates edited items.
	EditColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages and approved items.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warnings.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats errors and rejections.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// EditStyle formats edited items.
	EditStyle = lipgloss.NewStyle().
			Foreground(EditColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// AlertStyle renders patient-safety signals with maximum prominence.
	AlertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ErrorColor).
			Padding(0, 1)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// PromptStyle is used for user prompts.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	PawIcon     = "🐾"
	EditIcon    = "✎"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatAlert formats a patient-safety alert. Allergy conflicts arrive
// after a successful save, so they must out-shout everything else on screen.
func FormatAlert(message string) string {
	return AlertStyle.Render(WarningIcon + " " + message)
}

// FormatTitle formats a title with the app icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(PawIcon + " " + title)
}

// FormatPrompt formats a prompt message.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " → ")
}

// RenderBox renders content in a styled box with a title.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.UnsetMargins().Render(title)
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, boxTitle, content))
}

// DecisionStyle returns the style for a decision label.
func DecisionStyle(decision string) lipgloss.Style {
	switch decision {
	case "approved":
		return SuccessStyle
	case "edited":
		return EditStyle
	case "rejected":
		return ErrorStyle
	}
	return SubtleStyle
}

// TierStyle returns the style for a confidence tier label.
func TierStyle(tier review.ConfidenceTier) lipgloss.Style {
	switch tier {
	case review.TierHigh:
		return SuccessStyle
	case review.TierMedium:
		return WarningStyle
	}
	return ErrorStyle
}
