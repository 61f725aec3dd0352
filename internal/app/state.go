// Package app предоставляет состояние формы рерайта (AppState).
//
// AppState — единственный явный объект состояния клиента. Им владеет
// горутина Update из Bubble Tea: методы меняют состояние синхронно,
// а сетевые вызовы возвращают как tea.Cmd. Команды не трогают AppState,
// результат приходит обратно сообщением (*Msg из types.go) и
// применяется соответствующим Apply*-методом.
//
// Все ошибки превращаются в Notice, никаких panic.
package app

import (
	"context"
	"time"

	"github.com/ilkoid/phoenix-lab/pkg/api"
	"github.com/ilkoid/phoenix-lab/pkg/archive"
	"github.com/ilkoid/phoenix-lab/pkg/prefs"
	"github.com/ilkoid/phoenix-lab/pkg/rewrite"
	"github.com/ilkoid/phoenix-lab/pkg/tui"
)

// DefaultTimeout ограничивает каждый сетевой вызов, если в Deps не задан свой.
const DefaultTimeout = 30 * time.Second

// ChannelAPI — часть api.Client, нужная для работы с каналами.
type ChannelAPI interface {
	ListChannels(ctx context.Context) ([]api.Channel, error)
	SendArticle(ctx context.Context, req api.SendRequest) (*api.SendResult, error)
}

// Deps — внешние зависимости формы.
type Deps struct {
	API      ChannelAPI
	Rewriter rewrite.Rewriter
	Prefs    prefs.Store      // nil — тема не сохраняется
	Archive  archive.Archiver // nil — архив выключен
	Timeout  time.Duration
}

// AppState представляет состояние формы рерайта.
type AppState struct {
	deps Deps

	// Theme — "light" или "dark".
	Theme string

	// Style — выбранный стиль рерайта, nil пока не выбран.
	Style *rewrite.Style

	// URL — содержимое поля ввода.
	URL string

	// Loading — идёт рерайт.
	Loading bool

	// Sending — идёт отправка в каналы.
	Sending bool

	Phase Phase

	// ArticleText — последний успешный результат рерайта.
	// Показывается в панели результата и уходит в каналы.
	ArticleText string

	// articleStyle — стиль, которым получен ArticleText.
	articleStyle rewrite.Style

	ShowResult   bool
	ShowChannels bool

	// Channels — известные каналы в порядке ответа backend.
	Channels []api.Channel

	selected map[string]struct{}
	notices  []Notice
}

// NewAppState создает состояние с темой по умолчанию и пустой формой.
func NewAppState(deps Deps) *AppState {
	if deps.Timeout <= 0 {
		deps.Timeout = DefaultTimeout
	}
	return &AppState{
		deps:     deps,
		Theme:    tui.SchemeLight,
		Phase:    PhaseIdle,
		selected: make(map[string]struct{}),
	}
}

// SetURL обновляет значение поля URL.
func (s *AppState) SetURL(url string) {
	s.URL = url
}

// SelectStyle выбирает стиль рерайта.
func (s *AppState) SelectStyle(style rewrite.Style) {
	st := style
	s.Style = &st
}

// ColorScheme возвращает цветовую схему активной темы.
func (s *AppState) ColorScheme() tui.ColorScheme {
	return tui.GetColorScheme(s.Theme)
}

// --- Notices ---

// Notify ставит уведомление в очередь.
func (s *AppState) Notify(text string, kind NoticeKind) {
	s.notices = append(s.notices, Notice{Text: text, Kind: kind})
}

func (s *AppState) notify(n Notice) {
	s.notices = append(s.notices, n)
}

// Notice возвращает текущее уведомление.
func (s *AppState) Notice() (Notice, bool) {
	if len(s.notices) == 0 {
		return Notice{}, false
	}
	return s.notices[0], true
}

// HasNotice сообщает, что форма заблокирована уведомлением.
func (s *AppState) HasNotice() bool {
	return len(s.notices) > 0
}

// DismissNotice закрывает текущее уведомление, следующее (если есть)
// становится текущим.
func (s *AppState) DismissNotice() {
	if len(s.notices) == 0 {
		return
	}
	s.notices = s.notices[1:]
}

// --- Selection ---

// IsSelected сообщает, отмечен ли канал.
func (s *AppState) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// Selected возвращает отмеченные id в порядке отображения каналов.
func (s *AppState) Selected() []string {
	ids := make([]string, 0, len(s.selected))
	for _, ch := range s.Channels {
		if _, ok := s.selected[ch.ID]; ok {
			ids = append(ids, ch.ID)
		}
	}
	return ids
}

func (s *AppState) clearSelection() {
	s.selected = make(map[string]struct{})
}
