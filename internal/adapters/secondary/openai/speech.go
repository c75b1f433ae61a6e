package openai

import "context"

// speechRequest запрос к /audio/speech
type speechRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
	Voice string `json:"voice"`
}

// SynthesizeSpeech синтезирует речь и возвращает аудио (mp3) целиком
func (c *Client) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	req := speechRequest{
		Model: c.cfg.SpeechModel,
		Input: text,
		Voice: c.cfg.SpeechVoice,
	}

	// эндпоинт отдаёт бинарное тело, не JSON
	return c.post(ctx, "/audio/speech", req)
}
