package telegram

import (
	"log/slog"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/ports/service"
)

// Service роутинг обновлений Telegram в бизнес-логику бота
type Service struct {
	Assistant service.IAssistantService
	Log       *slog.Logger
}

func New(assistant service.IAssistantService, log *slog.Logger) *Service {
	return &Service{
		Assistant: assistant,
		Log:       log,
	}
}
