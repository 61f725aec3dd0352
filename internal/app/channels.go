package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ilkoid/phoenix-lab/pkg/utils"
)

// LoadChannels возвращает команду с одним запросом GET /api/channels.
//
// Повторный вызов безопасен: каждый раз список запрашивается заново,
// без повторов при ошибке.
func (s *AppState) LoadChannels(purpose LoadPurpose) tea.Cmd {
	if s.deps.API == nil {
		return nil
	}
	client, timeout := s.deps.API, s.deps.Timeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		channels, err := client.ListChannels(ctx)
		return ChannelsLoadedMsg{Channels: channels, Err: err, Purpose: purpose}
	}
}

// ApplyChannels применяет результат загрузки каналов.
//
// При ошибке список остается прежним и показывается уведомление.
func (s *AppState) ApplyChannels(msg ChannelsLoadedMsg) {
	if msg.Err != nil {
		utils.Error("Channels load failed", "purpose", msg.Purpose, "error", msg.Err)
		s.notify(errorNotice(msg.Err))
		return
	}

	s.Channels = msg.Channels
	utils.Info("Channels loaded", "count", len(msg.Channels), "purpose", msg.Purpose)

	switch msg.Purpose {
	case LoadForTelegram:
		s.openChannelPanel()
	case LoadRefresh:
		s.pruneSelection()
		s.Notify(fmt.Sprintf(msgChannelsReloaded, len(s.Channels)), NoticeInfo)
	}
}

// openChannelPanel показывает панель выбора каналов после обновления списка.
//
// Если за время запроса начался новый рерайт, панель не открывается:
// текст статьи вот-вот сменится.
func (s *AppState) openChannelPanel() {
	if s.Loading {
		utils.Debug("Channel panel dropped, rewrite in flight")
		return
	}
	if len(s.Channels) == 0 {
		s.Notify(MsgNoChannels, NoticeInfo)
		return
	}
	s.ShowResult = true
	s.ShowChannels = true
	s.Phase = PhaseChannelPicking
	s.clearSelection()
}

// pruneSelection убирает из выбора каналы, которых больше нет.
func (s *AppState) pruneSelection() {
	known := make(map[string]struct{}, len(s.Channels))
	for _, ch := range s.Channels {
		known[ch.ID] = struct{}{}
	}
	for id := range s.selected {
		if _, ok := known[id]; !ok {
			delete(s.selected, id)
		}
	}
}
