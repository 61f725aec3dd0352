// Рендер
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ilkoid/phoenix-lab/internal/app"
	"github.com/ilkoid/phoenix-lab/pkg/rewrite"
)

func (m MainModel) View() string {
	if !m.ready {
		return "Initializing UI..."
	}

	// Уведомление блокирует форму и рисуется поверх неё.
	if n, ok := m.state.Notice(); ok {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderNotice(n))
	}

	sections := []string{
		m.renderHeader(),
		m.renderURL(),
		m.renderStyles(),
		m.renderSocials(),
		m.renderSubmit(),
	}
	if m.state.ShowResult {
		sections = append(sections, m.renderResult())
	}
	if m.state.ShowChannels {
		sections = append(sections, m.renderChannels())
	}
	sections = append(sections,
		m.status.Render(),
		m.help.View(m.keys),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m MainModel) renderHeader() string {
	return m.styles.Header.Render("🔥 "+m.title) + "  " + m.styles.Subtitle.Render(m.subtitle)
}

func (m MainModel) renderURL() string {
	box := m.styles.Input
	if m.focus == focusURL {
		box = m.styles.InputFocused
	}
	return m.styles.Label.Render("URL статьи") + "\n" + box.Render(m.input.View())
}

func (m MainModel) renderStyles() string {
	selected := m.selectedStyleIndex()
	buttons := make([]string, 0, len(rewrite.Styles))
	for i, s := range rewrite.Styles {
		buttons = append(buttons, m.renderButton(s.DisplayName(), i == selected, m.focus == focusStyles && i == m.styleIdx))
	}
	return m.styles.Label.Render("Стиль рерайта") + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m MainModel) renderSocials() string {
	buttons := make([]string, 0, len(app.Socials))
	for i, s := range app.Socials {
		buttons = append(buttons, m.renderButton(s.DisplayName(), false, m.focus == focusSocials && i == m.socialIdx))
	}
	return m.styles.Label.Render("Публикация в соцсетях") + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m MainModel) renderSubmit() string {
	label := "Рерайт статьи"
	if m.state.Loading {
		label = "Обработка статьи..."
	}
	return m.renderButton(label, false, m.focus == focusSubmit)
}

func (m MainModel) renderResult() string {
	width := m.width - 2
	if width < 20 {
		width = 20
	}
	return m.styles.Result.Width(width).Render(m.result.View())
}

func (m MainModel) renderChannels() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render("Выберите каналы для отправки:"))
	for i, ch := range m.state.Channels {
		mark := "[ ]"
		if m.state.IsSelected(ch.ID) {
			mark = "[x]"
		}
		cursor := "  "
		if m.focus == focusChannels && i == m.channelIdx {
			cursor = "› "
		}
		b.WriteString("\n" + cursor + mark + " " + ch.Label())
	}

	sendLabel := "Отправить в Telegram"
	if m.state.Sending {
		sendLabel = "Отправка..."
	}
	b.WriteString("\n" + m.renderButton(sendLabel, false, m.focus == focusSend))

	return m.styles.Channels.Render(b.String())
}

// renderButton рисует кнопку: выбранную, в фокусе или обычную.
func (m MainModel) renderButton(label string, active, focused bool) string {
	style := m.styles.Button
	switch {
	case active && focused:
		style = m.styles.ButtonActive.BorderForeground(m.state.ColorScheme().Focus)
	case active:
		style = m.styles.ButtonActive
	case focused:
		style = m.styles.ButtonFocused
	}
	return style.Render(label)
}

func (m MainModel) renderNotice(n app.Notice) string {
	style := m.styles.Notice
	switch n.Kind {
	case app.NoticeError:
		style = m.styles.NoticeError
	case app.NoticeSuccess:
		style = m.styles.NoticeSuccess
	}

	maxWidth := m.width - 10
	if maxWidth < 30 {
		maxWidth = 30
	}
	body := lipgloss.NewStyle().Width(min(lipgloss.Width(n.Text), maxWidth)).Render(n.Text)
	hint := m.styles.NoticeHint.Render("Нажмите любую клавишу")
	return style.Render(body + "\n\n" + hint)
}
