// Package api реализует клиент HTTP API backend сервера Phoenix Lab.
//
// Backend хранит список Telegram каналов, переписывает статьи и
// рассылает их в каналы. Клиент только вызывает его endpoints:
//
//	GET  /api/channels        → {success, channels:[{id,name}]}
//	POST /api/rewrite-article → {success, text}
//	POST /api/send-article    → {success, sent, total, failed}
//	GET  /api/health          → {status:"ok"}
//
// Ошибки возвращаются как *Error с типом ErrBackend/ErrNetwork/ErrTimeout.
// Повторных попыток нет: каждую ошибку пользователь видит сразу.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ilkoid/phoenix-lab/pkg/config"
	"github.com/ilkoid/phoenix-lab/pkg/utils"
)

const (
	pathChannels = "/api/channels"
	pathRewrite  = "/api/rewrite-article"
	pathSend     = "/api/send-article"
	pathHealth   = "/api/health"

	// maxBodySize ограничивает размер читаемого ответа.
	maxBodySize = 4 << 20
)

// HTTPClient интерфейс для выполнения HTTP запросов.
//
// Стандартный *http.Client реализует этот интерфейс.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client — клиент backend API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	rateLimit  int
	burst      int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter // endpoint → limiter
}

// NewFromConfig создает клиент из конфигурации backend.
//
// Поля с нулевыми значениями заменяются через GetDefaults().
func NewFromConfig(cfg config.BackendConfig) (*Client, error) {
	cfg = cfg.GetDefaults()

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	return New(cfg.BaseURL, &http.Client{Timeout: timeout}, cfg.RateLimit, cfg.BurstLimit), nil
}

// New создает клиент с явным HTTP клиентом (удобно для тестов).
//
// rateLimit задаётся в запросах в минуту на endpoint.
func New(baseURL string, httpClient HTTPClient, rateLimit, burst int) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if rateLimit <= 0 {
		rateLimit = 60
	}
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		rateLimit:  rateLimit,
		burst:      burst,
		limiters:   make(map[string]*rate.Limiter),
	}
}

// BaseURL возвращает адрес backend.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListChannels возвращает каналы, доступные для рассылки.
func (c *Client) ListChannels(ctx context.Context) ([]Channel, error) {
	var resp channelsResponse
	if err := c.call(ctx, "channels", http.MethodGet, pathChannels, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Channels == nil {
		return []Channel{}, nil
	}
	return resp.Channels, nil
}

// RewriteArticle просит backend переписать статью по URL в заданном стиле.
func (c *Client) RewriteArticle(ctx context.Context, req RewriteRequest) (string, error) {
	var resp rewriteResponse
	if err := c.call(ctx, "rewrite", http.MethodPost, pathRewrite, req, &resp); err != nil {
		return "", err
	}
	return resp.Text, nil
}

// SendArticle рассылает текст статьи в выбранные каналы.
func (c *Client) SendArticle(ctx context.Context, req SendRequest) (*SendResult, error) {
	var resp sendResponse
	if err := c.call(ctx, "send", http.MethodPost, pathSend, req, &resp); err != nil {
		return nil, err
	}
	return &SendResult{
		Sent:   resp.Sent,
		Total:  resp.Total,
		Failed: resp.Failed,
	}, nil
}

// Health проверяет, что backend отвечает.
func (c *Client) Health(ctx context.Context) error {
	status, body, err := c.do(ctx, "health", http.MethodGet, pathHealth, nil)
	if err != nil {
		return err
	}

	var resp healthResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return &Error{Type: ErrNetwork, Op: "health", Status: status, Err: fmt.Errorf("malformed response: %w", err)}
	}
	if status != http.StatusOK || resp.Status != "ok" {
		return &Error{Type: ErrNetwork, Op: "health", Status: status, Err: fmt.Errorf("unexpected health status %q", resp.Status)}
	}
	return nil
}

// enveloped реализуют все ответы с полями success/error.
type enveloped interface {
	env() *envelope
}

func (e *envelope) env() *envelope { return e }

// call выполняет запрос и разбирает ответ в формате {success, error, ...}.
func (c *Client) call(ctx context.Context, op, method, path string, payload any, dest enveloped) error {
	status, body, err := c.do(ctx, op, method, path, payload)
	if err != nil {
		return err
	}

	// Backend отвечает JSON даже на 4xx/5xx, поэтому сначала разбираем тело.
	if err := json.Unmarshal(body, dest); err != nil {
		utils.Warn("Malformed backend response", "op", op, "status", status, "error", err)
		return &Error{Type: ErrNetwork, Op: op, Status: status, Err: fmt.Errorf("malformed response: %w", err)}
	}

	env := dest.env()
	if env.Success == nil {
		return &Error{Type: ErrNetwork, Op: op, Status: status, Err: fmt.Errorf("response has no success field (status %d)", status)}
	}
	if !*env.Success {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", status)
		}
		utils.Warn("Backend reported failure", "op", op, "status", status, "error", msg)
		return &Error{Type: ErrBackend, Op: op, Status: status, Message: msg}
	}
	if status < 200 || status >= 300 {
		return &Error{Type: ErrNetwork, Op: op, Status: status, Err: fmt.Errorf("unexpected status %d", status)}
	}

	return nil
}

// do выполняет HTTP запрос с rate limiting. Повторов нет.
func (c *Client) do(ctx context.Context, op, method, path string, payload any) (int, []byte, error) {
	limiter := c.getOrCreateLimiter(path)
	if err := limiter.Wait(ctx); err != nil {
		return 0, nil, &Error{Type: classifyWait(ctx, err), Op: op, Err: fmt.Errorf("rate limiter wait: %w", err)}
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal %s request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		utils.Error("Backend request failed", "op", op, "url", req.URL.String(), "error", err)
		return 0, nil, &Error{Type: Classify(err), Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, nil, &Error{Type: Classify(err), Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	utils.Debug("Backend request done", "op", op, "status", resp.StatusCode, "duration", time.Since(started))
	return resp.StatusCode, raw, nil
}

// getOrCreateLimiter возвращает limiter для endpoint.
func (c *Client) getOrCreateLimiter(path string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.limiters[path]; ok {
		return l
	}

	// rateLimit в запросах в минуту, rate.Limit в секунду.
	l := rate.NewLimiter(rate.Limit(float64(c.rateLimit)/60.0), c.burst)
	c.limiters[path] = l
	return l
}
