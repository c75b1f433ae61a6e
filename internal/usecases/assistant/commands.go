package assistant

import (
	"context"
	"fmt"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/usecases/assistant/texts"
)

// languageKeyboard inline клавиатура выбора языка; callback data - код языка
func languageKeyboard() map[string]interface{} {
	return map[string]interface{}{
		"inline_keyboard": [][]map[string]interface{}{
			{
				{"text": "English🇬🇧", "callback_data": domain.LanguageEN.String()},
				{"text": "Український🇺🇦", "callback_data": domain.LanguageUA.String()},
			},
		},
	}
}

// HandleStart обрабатывает /start: лениво создаёт запись пользователя
// (язык по умолчанию en, пустые истории) и отвечает приветствием
func (s *Service) HandleStart(ctx context.Context, user *domain.TelegramUser, chatID int64) error {
	if err := s.UserRepo.EnsureUser(ctx, user.ID); err != nil {
		s.Log.Error("failed to ensure user record",
			"error", err,
			"user_id", user.ID,
		)
		return s.sendText(ctx, chatID, texts.Get(domain.DefaultLanguage, domain.ErrorCategoryServer.MessageKey()))
	}

	// username - информационное поле; сбой записи не валит /start
	if user.Username != nil && *user.Username != "" {
		if err := s.UserRepo.SetUsername(ctx, user.ID, *user.Username); err != nil {
			s.Log.Warn("failed to save username",
				"error", err,
				"user_id", user.ID,
			)
		}
	}

	lang := s.UserRepo.GetLanguage(ctx, user.ID)
	return s.sendText(ctx, chatID, texts.Get(lang, texts.KeyStart))
}

// HandleHelp обрабатывает /help
func (s *Service) HandleHelp(ctx context.Context, userID int64, chatID int64) error {
	lang := s.UserRepo.GetLanguage(ctx, userID)
	return s.sendText(ctx, chatID, texts.Get(lang, texts.KeyHelp))
}

// HandleUnknownCommand отвечает подсказкой /help на неизвестную команду
func (s *Service) HandleUnknownCommand(ctx context.Context, userID int64, chatID int64) error {
	return s.HandleHelp(ctx, userID, chatID)
}

// HandleLanguageCommand обрабатывает /language - показывает клавиатуру выбора
func (s *Service) HandleLanguageCommand(ctx context.Context, userID int64, chatID int64) error {
	lang := s.UserRepo.GetLanguage(ctx, userID)

	if _, err := s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, texts.Get(lang, texts.KeyLanguageSelection), languageKeyboard()); err != nil {
		s.Log.Error("failed to send language keyboard",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to send language keyboard: %w", err)
	}

	return nil
}

// HandleLanguageSelection обрабатывает нажатие кнопки выбора языка:
// сохраняет язык и подтверждает на выбранном языке
func (s *Service) HandleLanguageSelection(ctx context.Context, userID int64, chatID int64, callbackQueryID string, lang domain.Language) error {
	if err := s.TelegramClient.AnswerCallbackQuery(ctx, callbackQueryID); err != nil {
		s.Log.Warn("failed to answer callback query",
			"error", err,
			"callback_id", callbackQueryID,
		)
	}

	if err := s.UserRepo.SetLanguage(ctx, userID, lang); err != nil {
		s.Log.Error("failed to set language",
			"error", err,
			"user_id", userID,
			"language", lang.String(),
		)
		current := s.UserRepo.GetLanguage(ctx, userID)
		return s.sendText(ctx, chatID, texts.Get(current, domain.ErrorCategoryServer.MessageKey()))
	}

	return s.sendText(ctx, chatID, texts.Get(lang, texts.KeyLanguageConfirmation))
}
