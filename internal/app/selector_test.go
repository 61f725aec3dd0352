package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilkoid/phoenix-lab/pkg/api"
	"github.com/ilkoid/phoenix-lab/pkg/rewrite"
)

var threeChannels = []api.Channel{
	{ID: "c1", Name: "News"},
	{ID: "c2", Name: "Tech"},
	{ID: "c3", Name: ""},
}

// openPanel проводит форму до открытой панели выбора каналов.
func openPanel(t *testing.T, a *fakeAPI) *AppState {
	t.Helper()
	s := newTestState(a, &fakeRewriter{text: "Article"})
	withArticle(t, s, "Article")
	s.ApplyChannels(run(t, s.OpenFor(SocialTelegram)).(ChannelsLoadedMsg))
	require.True(t, s.ShowChannels)
	return s
}

func TestOpenFor_TelegramWithoutArticle(t *testing.T) {
	a := &fakeAPI{channels: threeChannels}
	s := newTestState(a, &fakeRewriter{})

	cmd := s.OpenFor(SocialTelegram)

	assert.Nil(t, cmd)
	assert.Equal(t, 0, a.listCalls, "no network call expected")
	assert.Equal(t, MsgRewriteFirst, currentNotice(t, s).Text)
	assert.False(t, s.ShowChannels)
}

func TestOpenFor_TelegramRefreshesChannels(t *testing.T) {
	a := &fakeAPI{channels: []api.Channel{{ID: "c1", Name: "News"}}}
	s := newTestState(a, &fakeRewriter{text: "Article"})
	withArticle(t, s, "Article")
	s.ShowResult = false

	msg := run(t, s.OpenFor(SocialTelegram)).(ChannelsLoadedMsg)
	assert.Equal(t, LoadForTelegram, msg.Purpose)
	assert.Equal(t, 1, a.listCalls)

	s.ApplyChannels(msg)
	assert.True(t, s.ShowChannels)
	assert.True(t, s.ShowResult, "result panel is ensured visible")
	assert.Equal(t, PhaseChannelPicking, s.Phase)
	require.Len(t, s.Channels, 1)
	assert.Equal(t, "News", s.Channels[0].Label())
	assert.Empty(t, s.Selected())
}

func TestOpenFor_TelegramNoChannels(t *testing.T) {
	a := &fakeAPI{channels: []api.Channel{}}
	s := newTestState(a, &fakeRewriter{text: "Article"})
	withArticle(t, s, "Article")

	s.ApplyChannels(run(t, s.OpenFor(SocialTelegram)).(ChannelsLoadedMsg))

	assert.False(t, s.ShowChannels)
	assert.Equal(t, MsgNoChannels, currentNotice(t, s).Text)
}

func TestOpenFor_TelegramLoadFailure(t *testing.T) {
	a := &fakeAPI{channelsErr: networkErr("channels")}
	s := newTestState(a, &fakeRewriter{text: "Article"})
	withArticle(t, s, "Article")

	s.ApplyChannels(run(t, s.OpenFor(SocialTelegram)).(ChannelsLoadedMsg))

	assert.False(t, s.ShowChannels)
	assert.Equal(t, api.ConnectivityMessage, currentNotice(t, s).Text)
}

func TestOpenFor_TelegramWhileRewriting(t *testing.T) {
	a := &fakeAPI{channels: threeChannels}
	s := newTestState(a, &fakeRewriter{text: "new"})
	withArticle(t, s, "old")
	require.NotNil(t, s.Submit())

	assert.Nil(t, s.OpenFor(SocialTelegram))
	assert.Equal(t, 0, a.listCalls)
	assert.Equal(t, MsgRewriteBusy, currentNotice(t, s).Text)
	assert.False(t, s.ShowChannels)
}

func TestChannelPanel_StaysClosedWhileRewriting(t *testing.T) {
	a := &fakeAPI{channels: threeChannels}
	r := &fakeRewriter{text: "new"}
	s := newTestState(a, r)
	withArticle(t, s, "old")

	loadCmd := s.OpenFor(SocialTelegram)
	submitCmd := s.Submit()
	require.NotNil(t, submitCmd)

	s.ApplyChannels(run(t, loadCmd).(ChannelsLoadedMsg))

	assert.True(t, s.Loading)
	assert.False(t, s.ShowChannels)
	assert.False(t, s.ShowResult)
	assert.Equal(t, PhaseSubmitting, s.Phase)
	assert.Len(t, s.Channels, 3, "list is still refreshed")

	s.ToggleChannel("c1")
	assert.Nil(t, s.Send(), "old article must not be sent during a rewrite")
	assert.Equal(t, 0, a.sendCalls)

	s.ApplyRewrite(run(t, submitCmd).(RewriteDoneMsg))
	assert.Equal(t, PhaseResult, s.Phase)
	assert.Equal(t, "new", s.ArticleText)
	assert.False(t, s.ShowChannels)
	assert.Empty(t, s.Selected())
}

func TestSubmit_ClosesOpenChannelPanel(t *testing.T) {
	s := openPanel(t, &fakeAPI{channels: threeChannels})
	s.ToggleChannel("c1")

	require.NotNil(t, s.Submit())

	assert.False(t, s.ShowChannels)
	assert.Empty(t, s.Selected())
	assert.Equal(t, PhaseSubmitting, s.Phase)
}

func TestOpenFor_Placeholders(t *testing.T) {
	tests := []struct {
		social Social
		notice string
	}{
		{SocialVK, "Публикация в Вконтакте"},
		{SocialInstagram, "Публикация в Instagram"},
	}

	for _, tt := range tests {
		t.Run(string(tt.social), func(t *testing.T) {
			a := &fakeAPI{channels: threeChannels}
			s := newTestState(a, &fakeRewriter{})

			assert.Nil(t, s.OpenFor(tt.social))
			assert.Equal(t, 0, a.listCalls)
			assert.Equal(t, tt.notice, currentNotice(t, s).Text)
		})
	}
}

func TestToggleChannel_Idempotent(t *testing.T) {
	s := openPanel(t, &fakeAPI{channels: threeChannels})

	s.ToggleChannel("c2")
	assert.True(t, s.IsSelected("c2"))
	s.ToggleChannel("c2")
	assert.False(t, s.IsSelected("c2"))
	assert.Empty(t, s.Selected())
}

func TestSelected_DisplayOrder(t *testing.T) {
	s := openPanel(t, &fakeAPI{channels: threeChannels})

	s.ToggleChannel("c3")
	s.ToggleChannel("c1")

	assert.Equal(t, []string{"c1", "c3"}, s.Selected())
}

func TestSend_EmptySelection(t *testing.T) {
	a := &fakeAPI{channels: threeChannels}
	s := openPanel(t, a)

	assert.Nil(t, s.Send())
	assert.Equal(t, 0, a.sendCalls)
	assert.Equal(t, MsgChooseChannel, currentNotice(t, s).Text)
	assert.True(t, s.ShowChannels)
}

func TestSend_PartialSuccess(t *testing.T) {
	a := &fakeAPI{channels: threeChannels, sendResult: &api.SendResult{Sent: 2, Total: 3}}
	s := openPanel(t, a)
	s.ToggleChannel("c1")
	s.ToggleChannel("c2")
	s.ToggleChannel("c3")

	cmd := s.Send()
	require.NotNil(t, cmd)
	assert.True(t, s.Sending)
	assert.Nil(t, s.Send(), "second send while sending must be ignored")

	assert.Nil(t, s.ApplySend(run(t, cmd).(SendDoneMsg)))

	assert.Equal(t, api.SendRequest{ArticleText: "Article", Channels: []string{"c1", "c2", "c3"}}, a.lastSend)
	assert.Equal(t, 1, a.sendCalls)
	assert.False(t, s.Sending)
	assert.Equal(t, "Статья отправлена в 2 из 3 каналов", currentNotice(t, s).Text)
	assert.False(t, s.ShowChannels)
	assert.Empty(t, s.Selected())
	assert.True(t, s.ShowResult, "result stays on screen")
	assert.Equal(t, "Article", s.ArticleText)
	assert.Equal(t, PhaseResult, s.Phase)
}

func TestSend_ReportsFailedChannels(t *testing.T) {
	res := &api.SendResult{
		Sent:  1,
		Total: 2,
		Failed: []api.FailedChannel{
			{Channel: "c2", Error: "Forbidden: bot is not a member"},
		},
	}
	s := openPanel(t, &fakeAPI{channels: threeChannels, sendResult: res})
	s.ToggleChannel("c1")
	s.ToggleChannel("c2")

	s.ApplySend(run(t, s.Send()).(SendDoneMsg))

	n := currentNotice(t, s)
	assert.Equal(t, "Статья отправлена в 1 из 2 каналов\nc2: Forbidden: bot is not a member", n.Text)
	assert.Equal(t, NoticeInfo, n.Kind)
}

func TestSend_FailureKeepsSelection(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		notice string
	}{
		{name: "backend", err: backendErr("send", "Бот не запущен"), notice: "Бот не запущен"},
		{name: "network", err: networkErr("send"), notice: api.ConnectivityMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openPanel(t, &fakeAPI{channels: threeChannels, sendErr: tt.err})
			s.ToggleChannel("c1")

			assert.Nil(t, s.ApplySend(run(t, s.Send()).(SendDoneMsg)))

			assert.Equal(t, tt.notice, currentNotice(t, s).Text)
			assert.True(t, s.ShowChannels)
			assert.Equal(t, []string{"c1"}, s.Selected())
			assert.False(t, s.Sending)

			// Повторная попытка возможна.
			assert.NotNil(t, s.Send())
		})
	}
}

func TestSend_ArchivesSentArticle(t *testing.T) {
	a := &fakeAPI{channels: threeChannels, sendResult: &api.SendResult{Sent: 1, Total: 1}}
	arch := &fakeArchiver{}
	s := NewAppState(Deps{API: a, Rewriter: &fakeRewriter{text: "Archived"}, Archive: arch})
	withArticle(t, s, "Archived")
	s.ApplyChannels(run(t, s.OpenFor(SocialTelegram)).(ChannelsLoadedMsg))
	s.ToggleChannel("c2")

	archiveCmd := s.ApplySend(run(t, s.Send()).(SendDoneMsg))
	msg := run(t, archiveCmd).(ArchivedMsg)
	s.ApplyArchived(msg)

	require.Len(t, arch.entries, 1)
	entry := arch.entries[0]
	assert.Equal(t, "Archived", entry.Text)
	assert.Equal(t, string(rewrite.StyleCasual), entry.Style)
	assert.Equal(t, []string{"c2"}, entry.Channels)
	assert.False(t, entry.SentAt.IsZero())
	assert.Equal(t, "articles/key.txt", msg.Key)
}

func TestSend_ArchiveKeepsStyleOfSentArticle(t *testing.T) {
	a := &fakeAPI{channels: threeChannels, sendResult: &api.SendResult{Sent: 1, Total: 1}}
	arch := &fakeArchiver{}
	r := &fakeRewriter{text: "old"}
	s := NewAppState(Deps{API: a, Rewriter: r, Archive: arch})
	withArticle(t, s, "old")
	s.ApplyChannels(run(t, s.OpenFor(SocialTelegram)).(ChannelsLoadedMsg))
	s.ToggleChannel("c1")
	sendCmd := s.Send()
	require.NotNil(t, sendCmd)

	// Новый рерайт завершается раньше, чем приходит ответ на отправку.
	r.text = "new"
	s.SelectStyle(rewrite.StyleMeme)
	s.ApplyRewrite(run(t, s.Submit()).(RewriteDoneMsg))
	require.Equal(t, rewrite.StyleMeme, s.articleStyle)

	run(t, s.ApplySend(run(t, sendCmd).(SendDoneMsg)))

	require.Len(t, arch.entries, 1)
	assert.Equal(t, "old", arch.entries[0].Text)
	assert.Equal(t, string(rewrite.StyleCasual), arch.entries[0].Style)
}

func TestSend_ArchiveFailureIsSilent(t *testing.T) {
	a := &fakeAPI{channels: threeChannels, sendResult: &api.SendResult{Sent: 1, Total: 1}}
	arch := &fakeArchiver{err: errors.New("bucket missing")}
	s := NewAppState(Deps{API: a, Rewriter: &fakeRewriter{text: "x"}, Archive: arch})
	withArticle(t, s, "x")
	s.ApplyChannels(run(t, s.OpenFor(SocialTelegram)).(ChannelsLoadedMsg))
	s.ToggleChannel("c1")

	s.ApplySend(run(t, s.Send()).(SendDoneMsg))
	s.DismissNotice()
	s.ApplyArchived(run(t, s.archiveCmd(SendDoneMsg{ArticleText: "x"})).(ArchivedMsg))

	assert.False(t, s.HasNotice())
}

func TestCloseChannels(t *testing.T) {
	s := openPanel(t, &fakeAPI{channels: threeChannels})
	s.ToggleChannel("c1")

	s.CloseChannels()

	assert.False(t, s.ShowChannels)
	assert.Empty(t, s.Selected())
	assert.Equal(t, PhaseResult, s.Phase)
}

func TestSendSummary(t *testing.T) {
	assert.Equal(t, "Статья отправлена в 3 из 3 каналов", SendSummary(&api.SendResult{Sent: 3, Total: 3}))
}
