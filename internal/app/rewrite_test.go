package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilkoid/phoenix-lab/pkg/api"
	"github.com/ilkoid/phoenix-lab/pkg/rewrite"
	"github.com/ilkoid/phoenix-lab/pkg/utils"
)

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		style  *rewrite.Style
		notice string
	}{
		{name: "empty url", url: "", style: stylePtr(rewrite.StyleMeme), notice: MsgEnterURL},
		{name: "whitespace url", url: "   \t", style: stylePtr(rewrite.StyleMeme), notice: MsgEnterURL},
		{name: "empty url wins over missing style", url: "", style: nil, notice: MsgEnterURL},
		{name: "no style", url: "https://example.com", style: nil, notice: MsgChooseStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRewriter{text: "x"}
			s := newTestState(&fakeAPI{}, r)
			s.SetURL(tt.url)
			s.Style = tt.style

			cmd := s.Submit()

			assert.Nil(t, cmd, "no network call expected")
			assert.Equal(t, 0, r.calls)
			assert.False(t, s.Loading)
			assert.Equal(t, PhaseIdle, s.Phase)
			assert.Equal(t, tt.notice, currentNotice(t, s).Text)
		})
	}
}

func TestSubmit_Success(t *testing.T) {
	r := &fakeRewriter{text: "Hello"}
	s := newTestState(&fakeAPI{}, r)
	s.SetURL("  https://example.com/article  ")
	s.SelectStyle(rewrite.StyleCasual)

	cmd := s.Submit()
	require.NotNil(t, cmd)
	assert.True(t, s.Loading)
	assert.False(t, s.ShowResult)
	assert.Equal(t, PhaseSubmitting, s.Phase)

	msg := run(t, cmd).(RewriteDoneMsg)
	assert.Equal(t, "https://example.com/article", r.url)
	assert.Equal(t, rewrite.StyleCasual, r.style)

	s.ApplyRewrite(msg)
	assert.False(t, s.Loading)
	assert.True(t, s.ShowResult)
	assert.Equal(t, "Hello", s.ArticleText)
	assert.Equal(t, PhaseResult, s.Phase)
	assert.False(t, s.HasNotice())
}

func TestSubmit_IgnoredWhileLoading(t *testing.T) {
	r := &fakeRewriter{text: "x"}
	s := newTestState(&fakeAPI{}, r)
	s.SetURL("https://example.com")
	s.SelectStyle(rewrite.StyleMeme)

	require.NotNil(t, s.Submit())
	assert.Nil(t, s.Submit(), "second submit while loading must be ignored")
}

func TestSubmit_Failure(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		notice string
	}{
		{name: "backend error verbatim", err: backendErr("rewrite", "URL недоступен"), notice: "URL недоступен"},
		{name: "network error", err: networkErr("rewrite"), notice: api.ConnectivityMessage},
		{name: "timeout", err: context.DeadlineExceeded, notice: api.ErrTimeout.HumanMessage()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRewriter{err: tt.err}
			s := newTestState(&fakeAPI{}, r)
			s.SetURL("https://example.com")
			s.SelectStyle(rewrite.StyleScientific)

			s.ApplyRewrite(run(t, s.Submit()).(RewriteDoneMsg))

			assert.False(t, s.Loading)
			assert.False(t, s.ShowResult, "no partial result")
			assert.Empty(t, s.ArticleText)
			assert.Equal(t, PhaseIdle, s.Phase)
			n := currentNotice(t, s)
			assert.Equal(t, tt.notice, n.Text)
			assert.Equal(t, NoticeError, n.Kind)
		})
	}
}

func TestSubmit_FailureKeepsPreviousArticle(t *testing.T) {
	r := &fakeRewriter{text: "first"}
	s := newTestState(&fakeAPI{}, r)
	withArticle(t, s, "first")

	r.err = networkErr("rewrite")
	s.ApplyRewrite(run(t, s.Submit()).(RewriteDoneMsg))

	assert.False(t, s.ShowResult)
	assert.Equal(t, "first", s.ArticleText)
}

func TestSubmit_SuccessClosesChannelPanel(t *testing.T) {
	a := &fakeAPI{channels: []api.Channel{{ID: "c1", Name: "News"}}}
	r := &fakeRewriter{text: "v1"}
	s := newTestState(a, r)
	withArticle(t, s, "v1")

	s.ApplyChannels(run(t, s.OpenFor(SocialTelegram)).(ChannelsLoadedMsg))
	s.ToggleChannel("c1")
	require.True(t, s.ShowChannels)

	r.text = "v2"
	s.ApplyRewrite(run(t, s.Submit()).(RewriteDoneMsg))

	assert.Equal(t, "v2", s.ArticleText)
	assert.False(t, s.ShowChannels)
	assert.Empty(t, s.Selected())
}

func TestSubmit_WithMockRewriter(t *testing.T) {
	s := NewAppState(Deps{Rewriter: rewrite.NewMockRewriter(time.Millisecond)})
	s.SetURL("https://example.com")
	s.SelectStyle(rewrite.StyleMeme)

	s.ApplyRewrite(run(t, s.Submit()).(RewriteDoneMsg))

	assert.Equal(t, rewrite.CannedText("https://example.com", rewrite.StyleMeme), s.ArticleText)
}

type stubArticleAPI struct {
	text string
}

func (s stubArticleAPI) RewriteArticle(ctx context.Context, req api.RewriteRequest) (string, error) {
	return s.text, nil
}

func TestSubmit_LogsRequestOnce(t *testing.T) {
	var buf bytes.Buffer
	utils.InitLoggerWriter(&buf)
	defer utils.Close()

	s := NewAppState(Deps{Rewriter: rewrite.NewAPIRewriter(stubArticleAPI{text: "Hello"})})
	s.SetURL("https://example.com/once")
	s.SelectStyle(rewrite.StyleMeme)
	s.ApplyRewrite(run(t, s.Submit()).(RewriteDoneMsg))

	require.Equal(t, "Hello", s.ArticleText)
	assert.Equal(t, 1, strings.Count(buf.String(), "https://example.com/once"))
}

func stylePtr(s rewrite.Style) *rewrite.Style {
	return &s
}
