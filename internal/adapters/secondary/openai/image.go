package openai

import (
	"context"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

// imageGenerationRequest запрос к /images/generations
type imageGenerationRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	N       int    `json:"n"`
	User    string `json:"user,omitempty"`
}

// imageGenerationResponse ответ /images/generations
type imageGenerationResponse struct {
	Data []struct {
		URL           string `json:"url"`
		RevisedPrompt string `json:"revised_prompt,omitempty"`
	} `json:"data"`
}

// GenerateImage генерирует одно изображение и возвращает его URL
func (c *Client) GenerateImage(ctx context.Context, prompt string, userID string) (string, error) {
	req := imageGenerationRequest{
		Model:   c.cfg.ImageModel,
		Prompt:  prompt,
		Size:    c.cfg.ImageSize,
		Quality: c.cfg.ImageQuality,
		N:       1,
		User:    userID,
	}

	var resp imageGenerationResponse
	if err := c.postJSON(ctx, "/images/generations", req, &resp); err != nil {
		return "", err
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", &domain.APIError{
			Kind:    domain.APIErrorInternal,
			Message: "image generation returned no url",
		}
	}

	return resp.Data[0].URL, nil
}
