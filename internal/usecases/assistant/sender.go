package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/usecases/assistant/texts"
)

const cleanupTimeout = 10 * time.Second

// sendText отправляет текст пользователю через Telegram Client
func (s *Service) sendText(ctx context.Context, chatID int64, text string) error {
	if _, err := s.TelegramClient.SendMessage(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send message",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// sendProcessing отправляет placeholder "запрос обрабатывается" и возвращает
// его message_id; при сбое отправки возвращает 0 - флоу продолжается без него
func (s *Service) sendProcessing(ctx context.Context, chatID int64, lang domain.Language) int64 {
	messageID, err := s.TelegramClient.SendMessage(ctx, chatID, texts.Get(lang, texts.KeyProcessing))
	if err != nil {
		s.Log.Warn("failed to send processing message",
			"error", err,
			"chat_id", chatID,
		)
		return 0
	}
	return messageID
}

// deleteProcessing удаляет placeholder. Вызывается из defer безусловно -
// в том числе после отмены контекста запроса, поэтому берёт свой контекст.
func (s *Service) deleteProcessing(ctx context.Context, chatID int64, messageID int64) {
	if messageID == 0 {
		return
	}

	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := s.TelegramClient.DeleteMessage(cleanupCtx, chatID, messageID); err != nil {
		s.Log.Warn("failed to delete processing message",
			"error", err,
			"chat_id", chatID,
			"message_id", messageID,
		)
	}
}

// reportError классифицирует сбой, логирует оригинальный вид с полной
// диагностикой и отправляет пользователю только локализованное сообщение
// категории - сырой текст ошибки наружу не уходит
func (s *Service) reportError(ctx context.Context, userID int64, chatID int64, lang domain.Language, op string, err error) error {
	category := Classify(err)

	kind := domain.APIErrorUnknown
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		kind = apiErr.Kind
	}

	s.Log.Error("request failed",
		"error", err,
		"op", op,
		"kind", string(kind),
		"category", string(category),
		"user_id", userID,
		"chat_id", chatID,
	)

	return s.sendText(ctx, chatID, texts.Get(lang, category.MessageKey()))
}
