package app

import (
	"errors"

	"github.com/ilkoid/phoenix-lab/pkg/api"
)

// NoticeKind определяет оформление уведомления.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// Notice — блокирующее уведомление. Пока оно показано, форма
// принимает только закрытие уведомления.
type Notice struct {
	Text string
	Kind NoticeKind
}

// Тексты уведомлений.
const (
	MsgEnterURL         = "Пожалуйста, введите URL статьи"
	MsgChooseStyle      = "Пожалуйста, выберите стиль рерайта"
	MsgRewriteFirst     = "Сначала обработайте статью"
	MsgRewriteBusy      = "Статья ещё обрабатывается, подождите"
	MsgNoChannels       = "Каналы не настроены. Используйте бота для добавления каналов."
	MsgChooseChannel    = "Выберите хотя бы один канал"
	msgPublishPrefix    = "Публикация в "
	msgSentTemplate     = "Статья отправлена в %d из %d каналов"
	msgFailedLine       = "%s: %s"
	msgChannelsReloaded = "Каналов загружено: %d"
)

// errorNotice превращает ошибку вызова backend в уведомление.
//
// Ошибка backend показывается как есть, транспортные ошибки
// получают общий текст про подключение.
func errorNotice(err error) Notice {
	return Notice{Text: humanError(err), Kind: NoticeError}
}

func humanError(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.HumanMessage()
	}
	return api.Classify(err).HumanMessage()
}
