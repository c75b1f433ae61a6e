package service

import (
	"context"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

// IAssistantService бизнес-логика бота: команды, квоты, вызовы генеративного API
type IAssistantService interface {
	HandleStart(ctx context.Context, user *domain.TelegramUser, chatID int64) error
	HandleHelp(ctx context.Context, userID int64, chatID int64) error
	HandleLanguageCommand(ctx context.Context, userID int64, chatID int64) error
	HandleLanguageSelection(ctx context.Context, userID int64, chatID int64, callbackQueryID string, lang domain.Language) error
	HandleAsk(ctx context.Context, userID int64, chatID int64, text string) error
	HandleImage(ctx context.Context, userID int64, chatID int64, prompt string) error
	HandleAudio(ctx context.Context, userID int64, chatID int64, text string) error
	HandleVoice(ctx context.Context, userID int64, chatID int64, fileID string) error
	HandleUnknownCommand(ctx context.Context, userID int64, chatID int64) error
}
