package styles

import "github.com/charmbracelet/lipgloss"

// Theme contains the composed styles for CLI output.
var Theme = struct {
	Title lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
	Label lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	BadgeSuccess lipgloss.Style
	BadgeError   lipgloss.Style
	BadgeWarning lipgloss.Style
	BadgeMuted   lipgloss.Style

	ListItem   lipgloss.Style
	ListBullet lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary),

	Muted: lipgloss.NewStyle().
		Foreground(ColorTextMuted),

	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText),

	Label: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Width(10),

	Success: lipgloss.NewStyle().
		Foreground(ColorSuccess),

	Error: lipgloss.NewStyle().
		Foreground(ColorError),

	Warning: lipgloss.NewStyle().
		Foreground(ColorWarning),

	Info: lipgloss.NewStyle().
		Foreground(ColorInfo),

	BadgeSuccess: lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true),

	BadgeError: lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true),

	BadgeWarning: lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true),

	BadgeMuted: lipgloss.NewStyle().
		Foreground(ColorTextMuted),

	ListItem: lipgloss.NewStyle().
		Foreground(ColorText),

	ListBullet: lipgloss.NewStyle().
		Foreground(ColorPrimary),
}

// RenderBadge returns a colored word for a lifecycle outcome.
func RenderBadge(outcome string) string {
	switch outcome {
	case "created", "removed", "killed", "managed":
		return Theme.BadgeSuccess.Render(outcome)
	case "failed":
		return Theme.BadgeError.Render(outcome)
	case "foreign", "skipped-foreign", "skipped":
		return Theme.BadgeWarning.Render(outcome)
	default:
		return Theme.BadgeMuted.Render(outcome)
	}
}

// RenderListItem returns a formatted list item with bullet.
func RenderListItem(item string) string {
	return Theme.ListBullet.Render(IconBullet) + " " + Theme.ListItem.Render(item)
}

// RenderError returns a styled error message.
func RenderError(msg string) string {
	return Theme.Error.Render(IconError + " " + msg)
}

// RenderSuccess returns a styled success message.
func RenderSuccess(msg string) string {
	return Theme.Success.Render(IconSuccess + " " + msg)
}

// RenderWarning returns a styled warning message.
func RenderWarning(msg string) string {
	return Theme.Warning.Render(IconWarning + " " + msg)
}

// RenderInfo returns a styled info message.
func RenderInfo(msg string) string {
	return Theme.Info.Render(IconInfo + " " + msg)
}
