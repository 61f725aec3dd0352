package rewrite

import (
	"context"
	"fmt"
	"time"

	"github.com/ilkoid/phoenix-lab/pkg/api"
	"github.com/ilkoid/phoenix-lab/pkg/config"
	"github.com/ilkoid/phoenix-lab/pkg/utils"
)

// Rewriter возвращает переписанный текст статьи.
type Rewriter interface {
	Rewrite(ctx context.Context, url string, style Style) (string, error)
}

// ArticleAPI — часть api.Client, нужная для рерайта.
type ArticleAPI interface {
	RewriteArticle(ctx context.Context, req api.RewriteRequest) (string, error)
}

// APIRewriter вызывает POST /api/rewrite-article.
type APIRewriter struct {
	api ArticleAPI
}

// NewAPIRewriter создает рерайтер поверх backend API.
func NewAPIRewriter(client ArticleAPI) *APIRewriter {
	return &APIRewriter{api: client}
}

// Rewrite отправляет {url, style} и возвращает text из ответа.
func (r *APIRewriter) Rewrite(ctx context.Context, url string, style Style) (string, error) {
	text, err := r.api.RewriteArticle(ctx, api.RewriteRequest{URL: url, Style: string(style)})
	if err != nil {
		return "", err
	}

	utils.Info("Rewrite done", "style", style, "chars", len([]rune(text)))
	return text, nil
}

// MockRewriter выдаёт заготовленный текст после фиксированной задержки.
//
// Не обращается к сети. Используется для офлайн-демо и в тестах.
type MockRewriter struct {
	Delay time.Duration
}

// NewMockRewriter создает mock с задержкой delay.
func NewMockRewriter(delay time.Duration) *MockRewriter {
	return &MockRewriter{Delay: delay}
}

var cannedTexts = map[Style]string{
	StyleScientific: "В рамках проведённого исследования было установлено, что современные технологии искусственного интеллекта демонстрируют значительный потенциал в области обработки естественного языка. Анализ существующих методологий позволяет сделать вывод о необходимости дальнейшего развития алгоритмов машинного обучения для повышения эффективности автоматизированных систем.",
	StyleMeme:       "Окей, так вот в чём дело: ИИ теперь может переписывать тексты лучше, чем твоя бабушка пересказывает новости! 🚀 Это просто огонь! Технологии шагнули так далеко, что даже роботы начали писать как люди. Кто бы мог подумать, что мы доживём до таких времён? 😎",
	StyleCasual:     "Сегодня хочу рассказать вам о том, как технологии изменили нашу жизнь. Искусственный интеллект теперь помогает людям обрабатывать информацию быстрее и эффективнее. Это действительно круто - можно просто дать задачу, и система сама всё сделает. Попробуйте сами, и вы точно не пожалеете!",
}

// CannedText возвращает текст mock режима для стиля.
//
// Для неизвестного стиля используется общая заглушка с URL и названием стиля.
func CannedText(url string, style Style) string {
	if text, ok := cannedTexts[style]; ok {
		return text
	}
	return fmt.Sprintf("Это пример обработанной статьи %s. Текст был переработан с учётом стиля «%s» и готов к публикации.", url, style.DisplayName())
}

// Rewrite ждёт Delay (или отмены контекста) и возвращает CannedText.
func (m *MockRewriter) Rewrite(ctx context.Context, url string, style Style) (string, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	return CannedText(url, style), nil
}

// FromConfig выбирает реализацию по rewrite.mode.
func FromConfig(cfg config.RewriteConfig, client ArticleAPI) (Rewriter, error) {
	cfg = cfg.GetDefaults()

	switch cfg.Mode {
	case config.RewriteModeMock:
		utils.Warn("Rewrite runs in mock mode, backend is not called", "delay", cfg.MockDelay)
		return NewMockRewriter(cfg.MockDelay), nil
	case config.RewriteModeAPI:
		if client == nil {
			return nil, fmt.Errorf("rewrite mode %q requires a backend client", cfg.Mode)
		}
		return NewAPIRewriter(client), nil
	default:
		return nil, fmt.Errorf("unknown rewrite mode %q", cfg.Mode)
	}
}
