// Package ui реализует Model компонент Bubble Tea TUI.
//
// Содержит форму рерайта поверх app.AppState: поле URL, кнопки стилей
// и соцсетей, панель результата и панель выбора каналов.
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ilkoid/phoenix-lab/internal/app"
	"github.com/ilkoid/phoenix-lab/pkg/config"
	"github.com/ilkoid/phoenix-lab/pkg/rewrite"
	"github.com/ilkoid/phoenix-lab/pkg/tui"
	"github.com/ilkoid/phoenix-lab/pkg/tui/primitives"
)

// focusArea — элемент формы, принимающий клавиши.
type focusArea int

const (
	focusURL focusArea = iota
	focusStyles
	focusSocials
	focusSubmit
	focusChannels
	focusSend
)

// MainModel представляет главную модель UI (Bubble Tea Model).
//
// Содержит все компоненты TUI:
//   - state: состояние формы (app.AppState), единственный источник правды
//   - input: поле ввода URL
//   - result: вьюпорт с текстом статьи
//   - status: статус-бар со спиннером
//   - focus и индексы внутри рядов кнопок
//
// Компоненты с мьютексами хранятся по указателю, поэтому копирование
// MainModel в Update безопасно.
type MainModel struct {
	state *app.AppState

	input  textinput.Model
	result *primitives.TextViewport
	status *primitives.StatusBarManager
	help   help.Model
	keys   tui.KeyMap
	styles Styles

	title    string
	subtitle string

	focus      focusArea
	styleIdx   int
	socialIdx  int
	channelIdx int

	width  int
	height int
	ready  bool
}

// InitialModel создает начальное состояние UI.
//
// Тема уже должна быть загружена в state (app.AppState.LoadTheme).
func InitialModel(state *app.AppState, cfg config.UIConfig) MainModel {
	ti := textinput.New()
	ti.Placeholder = "https://example.com/article"
	ti.Prompt = "› "
	ti.CharLimit = 2048
	ti.SetValue(state.URL)
	ti.Focus()

	m := MainModel{
		state:    state,
		input:    ti,
		result:   primitives.NewTextViewport(),
		status:   primitives.NewStatusBarManager(primitives.DefaultStatusBarConfig()),
		help:     help.New(),
		keys:     tui.DefaultKeyMap(),
		title:    cfg.Title,
		subtitle: cfg.Subtitle,
		focus:    focusURL,
	}
	m.result.SetText(state.ArticleText)
	m.applyTheme()
	m.status.SetCustomExtra(m.themeHint)
	return m
}

// Init запускается один раз при старте Bubble Tea программы.
//
// Возвращает команду для:
//   - Мигания курсора в поле ввода
//   - Первой загрузки каналов
func (m MainModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.state.LoadChannels(app.LoadOnMount),
	)
}

// State возвращает состояние формы.
func (m MainModel) State() *app.AppState {
	return m.state
}

// applyTheme пересобирает стили под текущую тему.
func (m *MainModel) applyTheme() {
	scheme := m.state.ColorScheme()
	m.styles = NewStyles(scheme)
	m.status.SetConfig(primitives.StatusBarConfigFromScheme(scheme))
	m.input.PromptStyle = m.styles.Label
	m.input.TextStyle = m.styles.Label.UnsetBold()
	m.input.PlaceholderStyle = m.styles.Muted
}

// themeHint — подсказка в статус-баре, как в кнопке переключения темы.
func (m MainModel) themeHint() string {
	if m.state.IsDark() {
		return "Ctrl+T ☀️ Светлая"
	}
	return "Ctrl+T 🌙 Тёмная"
}

// focusRing возвращает доступные элементы в порядке Tab.
func (m MainModel) focusRing() []focusArea {
	ring := []focusArea{focusURL, focusStyles, focusSocials, focusSubmit}
	if m.state.ShowChannels && len(m.state.Channels) > 0 {
		ring = append(ring, focusChannels, focusSend)
	}
	return ring
}

// moveFocus сдвигает фокус на delta позиций по кольцу.
func (m *MainModel) moveFocus(delta int) {
	ring := m.focusRing()
	idx := 0
	for i, f := range ring {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(ring)) % len(ring)
	m.setFocus(ring[idx])
}

func (m *MainModel) setFocus(f focusArea) {
	m.focus = f
	if f == focusURL {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// ensureFocusValid возвращает фокус на кнопку рерайта, если панель
// каналов закрылась под фокусом.
func (m *MainModel) ensureFocusValid() {
	for _, f := range m.focusRing() {
		if f == m.focus {
			return
		}
	}
	m.setFocus(focusSubmit)
}

// selectedStyleIndex возвращает индекс выбранного стиля или -1.
func (m MainModel) selectedStyleIndex() int {
	if m.state.Style == nil {
		return -1
	}
	for i, s := range rewrite.Styles {
		if s == *m.state.Style {
			return i
		}
	}
	return -1
}
