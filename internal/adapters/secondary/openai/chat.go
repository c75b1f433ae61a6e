package openai

import (
	"context"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

// chatCompletionRequest запрос к /chat/completions
type chatCompletionRequest struct {
	Model       string               `json:"model"`
	Messages    []domain.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
	User        string               `json:"user,omitempty"`
}

// chatCompletionResponse ответ /chat/completions
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// CreateChatCompletion отправляет упорядоченный промпт и возвращает один ответ модели
func (c *Client) CreateChatCompletion(ctx context.Context, messages []domain.ChatMessage, userID string) (string, error) {
	req := chatCompletionRequest{
		Model:       c.cfg.ChatModel,
		Messages:    messages,
		Temperature: c.cfg.Temperature,
		User:        userID,
	}

	var resp chatCompletionResponse
	if err := c.postJSON(ctx, "/chat/completions", req, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", &domain.APIError{
			Kind:    domain.APIErrorInternal,
			Message: "chat completion returned no choices",
		}
	}

	return resp.Choices[0].Message.Content, nil
}
