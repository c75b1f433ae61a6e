package service

import (
	"context"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

// IOpenAIClient четыре удалённых вызова генеративного API.
// Контракт: либо типизированный результат, либо ошибка, сводимая
// к *domain.APIError с одним из закрытых видов сбоев.
type IOpenAIClient interface {
	// CreateChatCompletion принимает упорядоченный промпт и возвращает один ответ
	CreateChatCompletion(ctx context.Context, messages []domain.ChatMessage, userID string) (string, error)
	// GenerateImage возвращает URL сгенерированного изображения
	GenerateImage(ctx context.Context, prompt string, userID string) (string, error)
	// SynthesizeSpeech возвращает аудио (mp3) для заданного текста
	SynthesizeSpeech(ctx context.Context, text string) ([]byte, error)
	// TranscribeAudio возвращает расшифровку аудиофайла
	TranscribeAudio(ctx context.Context, filePath string) (string, error)
}
