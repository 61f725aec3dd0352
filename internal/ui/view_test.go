// Package ui тесты для рендеринга формы рерайта
package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilkoid/phoenix-lab/internal/app"
	"github.com/ilkoid/phoenix-lab/pkg/api"
	"github.com/ilkoid/phoenix-lab/pkg/rewrite"
)

// rewriteCasual вводит URL, выбирает "Повседневный стиль" и жмет "Рерайт статьи".
func rewriteCasual(t *testing.T, m MainModel) MainModel {
	t.Helper()
	m = press(t, m,
		typeText("https://example.com/news"),
		keyTab, keyRight, keyRight, keyEnter, // стиль casual
		keyTab, keyTab, keyEnter, // кнопка рерайта
	)
	require.Equal(t, app.PhaseResult, m.State().Phase)
	return m
}

// openTelegram переходит на кнопки соцсетей и жмет Telegram.
func openTelegram(t *testing.T, m MainModel) MainModel {
	t.Helper()
	m = press(t, m, keyShiftTab, keyRight, keyEnter)
	return m
}

func TestView_BeforeWindowSize(t *testing.T) {
	state := app.NewAppState(app.Deps{})
	m := InitialModel(state, rewriteUIConfig())

	assert.Equal(t, "Initializing UI...", m.View())
}

func TestView_Form(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})
	view := m.View()

	expected := []string{
		"Phoenix Lab",
		"AI Рерайт Статей",
		"URL статьи",
		"Стиль рерайта",
		"Научно-деловой стиль",
		"Мемный стиль",
		"Повседневный стиль",
		"Публикация в соцсетях",
		"Вконтакте",
		"Telegram",
		"Instagram",
		"Рерайт статьи",
		"✓ Готово",
		"🌙 Тёмная",
	}
	for _, s := range expected {
		assert.Contains(t, view, s)
	}
	assert.NotContains(t, view, "Выберите каналы")
}

func TestView_ResultShowsTextVerbatim(t *testing.T) {
	b := &fakeBackend{rewriteText: "Hello"}
	m := newTestModel(t, b)

	m = rewriteCasual(t, m)

	require.NotNil(t, m.State().Style)
	assert.Equal(t, rewrite.StyleCasual, *m.State().Style)
	assert.Equal(t, "Hello", m.State().ArticleText)
	assert.Contains(t, m.View(), "Hello")
}

func TestView_SingleChannelCheckbox(t *testing.T) {
	b := &fakeBackend{
		rewriteText: "Article",
		channels:    []api.Channel{{ID: "c1", Name: "News"}},
	}
	m := newTestModel(t, b)
	m = rewriteCasual(t, m)
	m = openTelegram(t, m)

	view := m.View()
	assert.Contains(t, view, "Выберите каналы для отправки:")
	assert.Equal(t, 1, strings.Count(view, "[ ]"))
	assert.Equal(t, 1, strings.Count(view, "News"))
	assert.Contains(t, view, "[ ] News")
	assert.Contains(t, view, "Отправить в Telegram")
	assert.Equal(t, focusChannels, m.focus)

	m = press(t, m, keySpace)
	assert.Contains(t, m.View(), "[x] News")
}

func TestView_ChannelWithoutNameShowsID(t *testing.T) {
	b := &fakeBackend{
		rewriteText: "Article",
		channels:    []api.Channel{{ID: "-100123", Name: ""}},
	}
	m := rewriteCasual(t, newTestModel(t, b))
	m = openTelegram(t, m)

	assert.Contains(t, m.View(), "[ ] -100123")
}

func TestView_NoticeBlocksForm(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})

	m = press(t, m, keyEnter)

	view := m.View()
	assert.Contains(t, view, app.MsgEnterURL)
	assert.Contains(t, view, "Нажмите любую клавишу")
	assert.NotContains(t, view, "Стиль рерайта", "form is hidden behind the notice")
}

func TestView_ThemeHint(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})
	assert.Contains(t, m.View(), "🌙 Тёмная")

	m = press(t, m, keyCtrlT)
	assert.Contains(t, m.View(), "☀️ Светлая")
}
