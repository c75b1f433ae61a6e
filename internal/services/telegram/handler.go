package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

// HandleUpdate основной метод для обработки всех типов обновлений
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil {
		return fmt.Errorf("update is nil")
	}

	if update.CallbackQuery != nil {
		return s.handleCallbackQuery(ctx, update.CallbackQuery, update.UpdateID)
	}

	if update.Message != nil {
		return s.HandleMessage(ctx, update.Message, update.UpdateID)
	}

	return nil
}

// handleCallbackQuery обрабатывает нажатия inline кнопок (выбор языка)
func (s *Service) handleCallbackQuery(ctx context.Context, callback *domain.CallbackQuery, updateID int64) error {
	if callback.From == nil || callback.Data == nil {
		s.Log.Debug("ignoring callback query without sender or data", "update_id", updateID)
		return nil
	}

	lang := domain.Language(*callback.Data)
	if !lang.IsValid() {
		s.Log.Warn("ignoring callback query with unknown data",
			"update_id", updateID,
			"data", *callback.Data,
		)
		return nil
	}

	if callback.Message == nil || callback.Message.Chat == nil {
		s.Log.Debug("ignoring callback query without chat", "update_id", updateID)
		return nil
	}

	return s.Assistant.HandleLanguageSelection(ctx, callback.From.ID, callback.Message.Chat.ID, callback.ID, lang)
}

// HandleMessage обрабатывает входящее сообщение - роутинг в usecase
func (s *Service) HandleMessage(ctx context.Context, message *domain.Message, updateID int64) error {
	if message == nil {
		return fmt.Errorf("message is nil")
	}

	if message.From == nil || message.From.IsBot {
		s.Log.Debug("ignoring message from bot", "update_id", updateID)
		return nil
	}

	if message.Chat != nil && message.Chat.Type != "private" {
		s.Log.Warn("ignoring message from group/chat",
			"update_id", updateID,
			"chat_type", message.Chat.Type,
			"chat_id", message.Chat.ID,
		)
		return nil
	}

	userID := message.From.ID
	chatID := message.Chat.ID

	if message.Voice != nil {
		return s.Assistant.HandleVoice(ctx, userID, chatID, message.Voice.FileID)
	}

	if message.Text != nil {
		return s.routeTextMessage(ctx, message, *message.Text, updateID)
	}

	return nil
}

// routeTextMessage роутит текст в команду либо в обычный вопрос
func (s *Service) routeTextMessage(ctx context.Context, message *domain.Message, text string, updateID int64) error {
	userID := message.From.ID
	chatID := message.Chat.ID

	if !IsCommand(text) {
		return s.Assistant.HandleAsk(ctx, userID, chatID, text)
	}

	command, args := ParseCommand(text)
	switch command {
	case "start":
		return s.Assistant.HandleStart(ctx, message.From, chatID)
	case "help":
		return s.Assistant.HandleHelp(ctx, userID, chatID)
	case "language":
		return s.Assistant.HandleLanguageCommand(ctx, userID, chatID)
	case "ask":
		return s.Assistant.HandleAsk(ctx, userID, chatID, args)
	case "image":
		return s.Assistant.HandleImage(ctx, userID, chatID, args)
	case "audio":
		return s.Assistant.HandleAudio(ctx, userID, chatID, args)
	default:
		s.Log.Debug("unknown command",
			"update_id", updateID,
			"command", command,
		)
		return s.Assistant.HandleUnknownCommand(ctx, userID, chatID)
	}
}

// ParseCommand выделяет имя команды и аргументы из текста "/cmd@bot args"
func ParseCommand(text string) (string, string) {
	text = strings.TrimPrefix(text, "/")

	command := text
	args := ""
	if idx := strings.Index(text, " "); idx != -1 {
		command = text[:idx]
		args = strings.TrimSpace(text[idx+1:])
	}

	if idx := strings.Index(command, "@"); idx != -1 {
		command = command[:idx]
	}

	return command, args
}

func IsCommand(text string) bool {
	return len(text) > 0 && text[0] == '/'
}
