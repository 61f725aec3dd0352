package app

import (
	"context"
	"errors"

	"github.com/ilkoid/phoenix-lab/pkg/prefs"
	"github.com/ilkoid/phoenix-lab/pkg/tui"
	"github.com/ilkoid/phoenix-lab/pkg/utils"
)

// ThemeKey — ключ темы в хранилище настроек.
const ThemeKey = "theme"

// LoadTheme читает сохраненную тему. Отсутствующее или неизвестное
// значение дает светлую тему. Ошибки хранилища только логируются.
func (s *AppState) LoadTheme(ctx context.Context) {
	s.Theme = tui.SchemeLight
	if s.deps.Prefs == nil {
		return
	}

	value, err := s.deps.Prefs.Get(ctx, ThemeKey)
	switch {
	case errors.Is(err, prefs.ErrNotFound):
		return
	case err != nil:
		utils.Warn("Theme read failed", "error", err)
		return
	}

	if value == tui.SchemeDark {
		s.Theme = tui.SchemeDark
	}
	utils.Debug("Theme loaded", "theme", s.Theme)
}

// IsDark сообщает, что активна тёмная тема.
func (s *AppState) IsDark() bool {
	return s.Theme == tui.SchemeDark
}

// ToggleTheme переключает тему и сохраняет новое значение.
func (s *AppState) ToggleTheme(ctx context.Context) {
	if s.IsDark() {
		s.Theme = tui.SchemeLight
	} else {
		s.Theme = tui.SchemeDark
	}

	if s.deps.Prefs == nil {
		return
	}
	if err := s.deps.Prefs.Set(ctx, ThemeKey, s.Theme); err != nil {
		utils.Warn("Theme write failed", "theme", s.Theme, "error", err)
		return
	}
	utils.Debug("Theme saved", "theme", s.Theme)
}
