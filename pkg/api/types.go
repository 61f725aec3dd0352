package api

// Channel — Telegram канал, зарегистрированный на backend через бота.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Label возвращает подпись для отображения: имя или ID, если имени нет.
func (c Channel) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// RewriteRequest — тело POST /api/rewrite-article.
type RewriteRequest struct {
	URL   string `json:"url"`
	Style string `json:"style"`
}

// SendRequest — тело POST /api/send-article.
type SendRequest struct {
	ArticleText string   `json:"article_text"`
	Channels    []string `json:"channels"`
}

// FailedChannel описывает канал, в который не удалось отправить статью.
type FailedChannel struct {
	Channel string `json:"channel"`
	Error   string `json:"error"`
}

// SendResult — итог рассылки.
type SendResult struct {
	Sent   int             `json:"sent"`
	Total  int             `json:"total"`
	Failed []FailedChannel `json:"failed,omitempty"`
}

// envelope — общий формат ответов backend.
type envelope struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

type channelsResponse struct {
	envelope
	Channels []Channel `json:"channels"`
}

type rewriteResponse struct {
	envelope
	Text string `json:"text"`
}

type sendResponse struct {
	envelope
	Sent   int             `json:"sent"`
	Total  int             `json:"total"`
	Failed []FailedChannel `json:"failed"`
}

type healthResponse struct {
	Status string `json:"status"`
}
