// Красота

package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ilkoid/phoenix-lab/pkg/tui"
)

// Styles — стили формы, собранные из цветовой схемы темы.
type Styles struct {
	Header   lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style

	Button        lipgloss.Style
	ButtonActive  lipgloss.Style
	ButtonFocused lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	Result   lipgloss.Style
	Channels lipgloss.Style

	Notice        lipgloss.Style
	NoticeError   lipgloss.Style
	NoticeSuccess lipgloss.Style
	NoticeHint    lipgloss.Style
}

// NewStyles строит стили из схемы.
func NewStyles(s tui.ColorScheme) Styles {
	button := lipgloss.NewStyle().
		Foreground(s.Button).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Border).
		Padding(0, 1)

	panel := lipgloss.NewStyle().
		Foreground(s.Foreground).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Border).
		Padding(0, 1)

	notice := lipgloss.NewStyle().
		Foreground(s.Foreground).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(s.Notice).
		Padding(1, 3)

	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(s.Title).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(s.Subtitle).
			Italic(true),
		Label: lipgloss.NewStyle().
			Foreground(s.Foreground).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(s.Muted),

		Button: button,
		ButtonActive: button.
			Foreground(s.ButtonActiveFg).
			Background(s.ButtonActive).
			BorderForeground(s.ButtonActive),
		ButtonFocused: button.
			BorderForeground(s.Focus).
			Bold(true),

		Input: panel,
		InputFocused: panel.
			BorderForeground(s.Focus),

		Result:   panel,
		Channels: panel.BorderForeground(s.Focus),

		Notice:        notice,
		NoticeError:   notice.BorderForeground(s.Error),
		NoticeSuccess: notice.BorderForeground(s.Success),
		NoticeHint:    lipgloss.NewStyle().Foreground(s.Muted),
	}
}
