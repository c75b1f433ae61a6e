package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	ports "github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/ports/service"
)

const defaultTimeout = 120 * time.Second

// Client клиент для OpenAI API. Любой сбой сводится к *domain.APIError
// с одним из закрытых видов - дальше этого пакета сырые HTTP-детали не уходят.
type Client struct {
	httpClient *http.Client
	cfg        *Config
	log        *slog.Logger
}

// NewClient создаёт новый клиент OpenAI API
func NewClient(cfg *Config, log *slog.Logger) ports.IOpenAIClient {
	timeout := defaultTimeout
	if cfg.RequestTimeout > 0 {
		timeout = cfg.RequestTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cfg: cfg,
		log: log,
	}
}

// postJSON выполняет POST с JSON-телом и декодирует JSON-ответ в dest
func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, dest interface{}) error {
	body, err := c.post(ctx, path, payload)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode openai response: %w", err)
	}

	return nil
}

// post выполняет POST с JSON-телом и возвращает сырое тело ответа
func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	return c.do(httpReq)
}

// do выполняет запрос, сводя транспортные и статусные сбои к APIError
func (c *Client) do(httpReq *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("openai request failed",
			"error", err,
			"path", httpReq.URL.Path,
		)
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read openai response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := apiErrorFromResponse(resp.StatusCode, body)
		c.log.Error("openai returned error status",
			"status", resp.StatusCode,
			"kind", string(apiErr.Kind),
			"path", httpReq.URL.Path,
			"message", apiErr.Message,
		)
		return nil, apiErr
	}

	return body, nil
}
