// Логика - Обрабатывает нажатия клавиш и результаты сетевых команд.

package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ilkoid/phoenix-lab/internal/app"
	"github.com/ilkoid/phoenix-lab/pkg/rewrite"
)

// Высота элементов вокруг панели результата.
const (
	chromeHeight  = 17 // шапка, поле URL, стили, соцсети, кнопка, статус, помощь
	minResultRows = 3
)

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// 1. Изменение размера окна терминала
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.Width = msg.Width - 8
		m.help.Width = msg.Width
		m.resizeResult()
		return m, nil

	// 2. Спиннер статус-бара
	case spinner.TickMsg:
		return m, m.status.Update(msg)

	// 3. Результаты сетевых команд (прилетают асинхронно)
	case app.ChannelsLoadedMsg:
		wasOpen := m.state.ShowChannels
		m.state.ApplyChannels(msg)
		if m.state.ShowChannels && (!wasOpen || msg.Purpose == app.LoadForTelegram) {
			m.channelIdx = 0
			m.setFocus(focusChannels)
		}
		m.clampChannelIdx()
		m.ensureFocusValid()
		m.resizeResult()
		return m, nil

	case app.RewriteDoneMsg:
		m.state.ApplyRewrite(msg)
		m.result.SetText(m.state.ArticleText)
		m.syncStatus()
		m.ensureFocusValid()
		m.resizeResult()
		return m, nil

	case app.SendDoneMsg:
		cmd := m.state.ApplySend(msg)
		m.syncStatus()
		m.ensureFocusValid()
		m.resizeResult()
		return m, cmd

	case app.ArchivedMsg:
		m.state.ApplyArchived(msg)
		return m, nil

	// 4. Клавиши
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey обрабатывает нажатия клавиш.
func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Уведомление блокирует форму: любая клавиша только закрывает его.
	if m.state.HasNotice() {
		m.state.DismissNotice()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleTheme):
		m.state.ToggleTheme(context.Background())
		m.applyTheme()
		return m, nil

	case key.Matches(msg, m.keys.ReloadChannels):
		return m, m.state.LoadChannels(app.LoadRefresh)

	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeResult()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.moveFocus(-1)
		return m, nil
	}

	if m.focus == focusURL {
		return m.handleURLKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveInRow(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveInRow(1)
	case key.Matches(msg, m.keys.Up):
		m.moveVertical(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveVertical(1)
	case key.Matches(msg, m.keys.Activate), key.Matches(msg, m.keys.ToggleCheck):
		return m, m.activate()
	}
	return m, nil
}

// handleURLKey передает ввод в поле URL. Enter запускает рерайт.
func (m MainModel) handleURLKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Activate) {
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state.SetURL(m.input.Value())
	return m, cmd
}

// moveInRow двигает выбор внутри ряда кнопок.
func (m *MainModel) moveInRow(delta int) {
	switch m.focus {
	case focusStyles:
		m.styleIdx = wrapIndex(m.styleIdx+delta, len(rewrite.Styles))
	case focusSocials:
		m.socialIdx = wrapIndex(m.socialIdx+delta, len(app.Socials))
	}
}

// moveVertical двигает курсор по списку каналов или прокручивает результат.
func (m *MainModel) moveVertical(delta int) {
	if m.focus == focusChannels {
		m.channelIdx += delta
		m.clampChannelIdx()
		return
	}
	if delta < 0 {
		m.result.ScrollUp(-delta)
	} else {
		m.result.ScrollDown(delta)
	}
}

// activate выполняет действие элемента в фокусе.
func (m *MainModel) activate() tea.Cmd {
	switch m.focus {
	case focusStyles:
		m.state.SelectStyle(rewrite.Styles[m.styleIdx])
	case focusSocials:
		return m.state.OpenFor(app.Socials[m.socialIdx])
	case focusSubmit:
		return m.submit()
	case focusChannels:
		if m.channelIdx < len(m.state.Channels) {
			m.state.ToggleChannel(m.state.Channels[m.channelIdx].ID)
		}
	case focusSend:
		return m.send()
	}
	return nil
}

func (m *MainModel) submit() tea.Cmd {
	cmd := m.state.Submit()
	if cmd == nil {
		return nil
	}
	m.syncStatus()
	m.ensureFocusValid()
	m.resizeResult()
	return tea.Batch(cmd, m.status.Tick())
}

func (m *MainModel) send() tea.Cmd {
	cmd := m.state.Send()
	if cmd == nil {
		return nil
	}
	m.syncStatus()
	return tea.Batch(cmd, m.status.Tick())
}

// syncStatus приводит спиннер в соответствие с состоянием запросов.
func (m *MainModel) syncStatus() {
	switch {
	case m.state.Loading:
		m.status.SetProcessing(true, "Обработка статьи...")
	case m.state.Sending:
		m.status.SetProcessing(true, "Отправка в Telegram...")
	default:
		m.status.SetProcessing(false, "")
	}
}

func (m *MainModel) clampChannelIdx() {
	n := len(m.state.Channels)
	switch {
	case n == 0:
		m.channelIdx = 0
	case m.channelIdx < 0:
		m.channelIdx = 0
	case m.channelIdx >= n:
		m.channelIdx = n - 1
	}
}

// resizeResult подгоняет панель результата под окно.
func (m *MainModel) resizeResult() {
	if !m.ready {
		return
	}
	rows := m.height - chromeHeight
	if m.state.ShowChannels {
		rows -= len(m.state.Channels) + 4
	}
	if m.help.ShowAll {
		rows -= 3
	}
	if rows < minResultRows {
		rows = minResultRows
	}
	m.result.Resize(m.width-4, rows)
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return (i%n + n) % n
}
