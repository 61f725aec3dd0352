package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/ilkoid/phoenix-lab/internal/app"
	"github.com/ilkoid/phoenix-lab/pkg/api"
	"github.com/ilkoid/phoenix-lab/pkg/config"
	"github.com/ilkoid/phoenix-lab/pkg/prefs"
	"github.com/ilkoid/phoenix-lab/pkg/rewrite"
)

// fakeBackend — минимальный backend Phoenix Lab для тестов UI.
type fakeBackend struct {
	mu sync.Mutex

	channels    []api.Channel
	rewriteText string
	sent        int
	total       int

	sendBodies []api.SendRequest
}

func (b *fakeBackend) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/channels":
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "channels": b.channels})
		case "/api/rewrite-article":
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "text": b.rewriteText})
		case "/api/send-article":
			var req api.SendRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("bad send body: %v", err)
			}
			b.sendBodies = append(b.sendBodies, req)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "sent": b.sent, "total": b.total})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

// newTestModel создает модель поверх httptest backend и задает размер окна.
func newTestModel(t *testing.T, b *fakeBackend) MainModel {
	t.Helper()
	srv := httptest.NewServer(b.handler(t))
	t.Cleanup(srv.Close)

	client := api.New(srv.URL, srv.Client(), 60000, 100)
	state := app.NewAppState(app.Deps{
		API:      client,
		Rewriter: rewrite.NewAPIRewriter(client),
		Prefs:    prefs.NewMemoryStore(),
		Timeout:  5 * time.Second,
	})

	m := InitialModel(state, config.UIConfig{Title: "Phoenix Lab", Subtitle: "AI Рерайт Статей"})
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 60})
	return m
}

func update(m MainModel, msg tea.Msg) (MainModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MainModel), cmd
}

// drive выполняет команду и скармливает модели все сообщения пакета app,
// которые она породила, пока команды не кончатся. Таймеры (мигание курсора,
// спиннер) отбрасываются.
func drive(t *testing.T, m MainModel, cmd tea.Cmd) MainModel {
	t.Helper()
	for _, msg := range collect(cmd) {
		switch msg.(type) {
		case app.ChannelsLoadedMsg, app.RewriteDoneMsg, app.SendDoneMsg, app.ArchivedMsg:
			var next tea.Cmd
			m, next = update(m, msg)
			m = drive(t, m, next)
		}
	}
	return m
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(200 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// press отправляет клавиши по очереди, выполняя порождённые команды.
func press(t *testing.T, m MainModel, keys ...tea.KeyMsg) MainModel {
	t.Helper()
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = update(m, k)
		m = drive(t, m, cmd)
	}
	return m
}

func typeText(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyCtrlT    = tea.KeyMsg{Type: tea.KeyCtrlT}
	keyCtrlR    = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func requireQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok, "expected tea.Quit")
}
