package app

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ilkoid/phoenix-lab/pkg/utils"
)

// Submit проверяет форму и запускает рерайт.
//
// Пустой URL или невыбранный стиль дают уведомление без сетевого вызова.
// Пока идёт рерайт, повторный Submit игнорируется. Открытая панель
// каналов закрывается.
func (s *AppState) Submit() tea.Cmd {
	if s.Loading {
		return nil
	}

	url := strings.TrimSpace(s.URL)
	if url == "" {
		s.Notify(MsgEnterURL, NoticeInfo)
		return nil
	}
	if s.Style == nil {
		s.Notify(MsgChooseStyle, NoticeInfo)
		return nil
	}
	if s.deps.Rewriter == nil {
		return nil
	}

	s.Loading = true
	s.ShowResult = false
	s.ShowChannels = false
	s.clearSelection()
	s.Phase = PhaseSubmitting

	style := *s.Style
	rewriter, timeout := s.deps.Rewriter, s.deps.Timeout
	utils.Info("Submit rewrite", "url", url, "style", style)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		text, err := rewriter.Rewrite(ctx, url, style)
		return RewriteDoneMsg{Text: text, Style: style, Err: err}
	}
}

// ApplyRewrite применяет результат рерайта.
//
// Успех заменяет текст статьи, показывает результат и закрывает панель
// каналов со сбросом выбора. Ошибка возвращает форму в Idle без
// частичного результата.
func (s *AppState) ApplyRewrite(msg RewriteDoneMsg) {
	s.Loading = false

	if msg.Err != nil {
		utils.Error("Rewrite failed", "style", msg.Style, "error", msg.Err)
		s.Phase = PhaseIdle
		s.ShowResult = false
		s.notify(errorNotice(msg.Err))
		return
	}

	s.ArticleText = msg.Text
	s.articleStyle = msg.Style
	s.ShowResult = true
	s.ShowChannels = false
	s.clearSelection()
	s.Phase = PhaseResult
}
