package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ilkoid/phoenix-lab/pkg/api"
	"github.com/ilkoid/phoenix-lab/pkg/archive"
	"github.com/ilkoid/phoenix-lab/pkg/utils"
)

// OpenFor обрабатывает нажатие кнопки соцсети.
//
// Для Telegram нужен готовый текст статьи и завершённый рерайт: список
// каналов обновляется, панель выбора открывается по приходу
// ChannelsLoadedMsg.
// Вконтакте и Instagram пока только показывают уведомление.
func (s *AppState) OpenFor(social Social) tea.Cmd {
	switch social {
	case SocialTelegram:
		if s.Loading {
			s.Notify(MsgRewriteBusy, NoticeInfo)
			return nil
		}
		if s.ArticleText == "" {
			s.Notify(MsgRewriteFirst, NoticeInfo)
			return nil
		}
		return s.LoadChannels(LoadForTelegram)
	case SocialVK, SocialInstagram:
		s.Notify(msgPublishPrefix+social.DisplayName(), NoticeInfo)
		return nil
	default:
		return nil
	}
}

// ToggleChannel отмечает канал или снимает отметку.
func (s *AppState) ToggleChannel(id string) {
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return
	}
	s.selected[id] = struct{}{}
}

// CloseChannels скрывает панель выбора каналов без отправки.
func (s *AppState) CloseChannels() {
	if !s.ShowChannels {
		return
	}
	s.ShowChannels = false
	s.clearSelection()
	s.Phase = PhaseResult
}

// Send отправляет статью в отмеченные каналы.
//
// Пустой выбор дает уведомление без сетевого вызова. Пока идёт отправка
// или рерайт, Send игнорируется.
func (s *AppState) Send() tea.Cmd {
	if s.Sending || s.Loading {
		return nil
	}

	ids := s.Selected()
	if len(ids) == 0 {
		s.Notify(MsgChooseChannel, NoticeInfo)
		return nil
	}
	if s.deps.API == nil {
		return nil
	}

	s.Sending = true
	client, timeout := s.deps.API, s.deps.Timeout
	req := api.SendRequest{ArticleText: s.ArticleText, Channels: ids}
	style := s.articleStyle
	utils.Info("Send article", "channels", len(ids))

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err := client.SendArticle(ctx, req)
		return SendDoneMsg{Result: result, Err: err, ArticleText: req.ArticleText, Style: style, Channels: req.Channels}
	}
}

// ApplySend применяет результат отправки.
//
// Успех: уведомление "N из M", панель закрыта, выбор сброшен,
// результат остаётся на экране. Ошибка: уведомление, панель и выбор
// сохраняются для повтора. Возвращает команду архивации, если архив
// включен.
func (s *AppState) ApplySend(msg SendDoneMsg) tea.Cmd {
	s.Sending = false

	if msg.Err != nil {
		utils.Error("Send failed", "channels", len(msg.Channels), "error", msg.Err)
		s.notify(errorNotice(msg.Err))
		return nil
	}

	res := msg.Result
	if res == nil {
		res = &api.SendResult{}
	}
	utils.Info("Article sent", "sent", res.Sent, "total", res.Total, "failed", len(res.Failed))

	kind := NoticeSuccess
	if len(res.Failed) > 0 || res.Sent < res.Total {
		kind = NoticeInfo
	}
	s.Notify(SendSummary(res), kind)

	s.ShowChannels = false
	s.clearSelection()
	s.Phase = PhaseResult

	return s.archiveCmd(msg)
}

// SendSummary формирует текст уведомления об отправке.
func SendSummary(res *api.SendResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, msgSentTemplate, res.Sent, res.Total)
	for _, f := range res.Failed {
		b.WriteString("\n")
		fmt.Fprintf(&b, msgFailedLine, f.Channel, f.Error)
	}
	return b.String()
}

func (s *AppState) archiveCmd(msg SendDoneMsg) tea.Cmd {
	if s.deps.Archive == nil {
		return nil
	}
	archiver, timeout := s.deps.Archive, s.deps.Timeout
	entry := archive.Entry{
		Text:     msg.ArticleText,
		Style:    string(msg.Style),
		Channels: msg.Channels,
		SentAt:   time.Now(),
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		key, err := archiver.Store(ctx, entry)
		return ArchivedMsg{Key: key, Err: err}
	}
}

// ApplyArchived логирует результат архивации. Пользователю ошибки архива
// не показываются.
func (s *AppState) ApplyArchived(msg ArchivedMsg) {
	if msg.Err != nil {
		utils.Warn("Archive upload failed", "error", msg.Err)
		return
	}
	utils.Info("Article archived", "key", msg.Key)
}
