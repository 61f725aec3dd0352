// Общие типы для пакета app: фазы формы, соцсети и сообщения,
// которые возвращают tea.Cmd после сетевых вызовов.
package app

import (
	"github.com/ilkoid/phoenix-lab/pkg/api"
	"github.com/ilkoid/phoenix-lab/pkg/rewrite"
)

// Phase — фаза потока "рерайт → результат → выбор каналов".
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseResult
	PhaseChannelPicking
)

func (p Phase) String() string {
	switch p {
	case PhaseSubmitting:
		return "submitting"
	case PhaseResult:
		return "result"
	case PhaseChannelPicking:
		return "channel_picking"
	default:
		return "idle"
	}
}

// Social — кнопка публикации в соцсеть.
type Social string

const (
	SocialTelegram  Social = "telegram"
	SocialVK        Social = "vk"
	SocialInstagram Social = "instagram"
)

// Socials — кнопки публикации в порядке отображения.
var Socials = []Social{SocialVK, SocialTelegram, SocialInstagram}

// DisplayName возвращает подпись кнопки.
func (s Social) DisplayName() string {
	switch s {
	case SocialTelegram:
		return "Telegram"
	case SocialVK:
		return "Вконтакте"
	case SocialInstagram:
		return "Instagram"
	default:
		return string(s)
	}
}

// LoadPurpose — зачем запрошен список каналов.
type LoadPurpose int

const (
	// LoadOnMount — первая загрузка при старте.
	LoadOnMount LoadPurpose = iota
	// LoadRefresh — ручное обновление (Ctrl+R).
	LoadRefresh
	// LoadForTelegram — обновление перед показом панели выбора каналов.
	LoadForTelegram
)

func (p LoadPurpose) String() string {
	switch p {
	case LoadRefresh:
		return "refresh"
	case LoadForTelegram:
		return "telegram"
	default:
		return "mount"
	}
}

// ChannelsLoadedMsg — результат GET /api/channels.
type ChannelsLoadedMsg struct {
	Channels []api.Channel
	Err      error
	Purpose  LoadPurpose
}

// RewriteDoneMsg — результат рерайта статьи.
type RewriteDoneMsg struct {
	Text  string
	Style rewrite.Style
	Err   error
}

// SendDoneMsg — результат POST /api/send-article.
//
// ArticleText, Style и Channels фиксируются в момент Send и нужны
// для архива.
type SendDoneMsg struct {
	Result      *api.SendResult
	Err         error
	ArticleText string
	Style       rewrite.Style
	Channels    []string
}

// ArchivedMsg — результат загрузки отправленной статьи в архив.
type ArchivedMsg struct {
	Key string
	Err error
}
