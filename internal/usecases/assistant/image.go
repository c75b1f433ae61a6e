package assistant

import (
	"context"
	"strconv"
	"strings"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/usecases/assistant/texts"
)

// HandleImage обрабатывает /image: квота -> генерация -> отправка фото ->
// запись использования. Placeholder удаляется безусловно.
func (s *Service) HandleImage(ctx context.Context, userID int64, chatID int64, prompt string) error {
	lang := s.UserRepo.GetLanguage(ctx, userID)

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return s.sendText(ctx, chatID, texts.Get(lang, texts.KeyImagePrompt))
	}

	// критическая секция накрывает и удалённый вызов: запись использования
	// происходит после него, параллельный запрос не должен видеть окно
	// между проверкой квоты и записью
	defer s.lockUser(userID)()

	if s.HasReachedDailyLimit(ctx, userID, domain.CategoryImage) {
		s.Log.Info("image daily limit reached",
			"user_id", userID,
			"limit", s.Limits.Image,
		)
		return s.sendText(ctx, chatID, texts.Get(lang, texts.KeyDailyLimit))
	}

	processingID := s.sendProcessing(ctx, chatID, lang)
	defer s.deleteProcessing(ctx, chatID, processingID)

	imageURL, err := s.OpenAI.GenerateImage(ctx, prompt, strconv.FormatInt(userID, 10))
	if err != nil {
		return s.reportError(ctx, userID, chatID, lang, "image", err)
	}

	if err := s.TelegramClient.SendPhotoURL(ctx, chatID, imageURL); err != nil {
		s.Log.Error("failed to send photo",
			"error", err,
			"user_id", userID,
			"chat_id", chatID,
		)
		return s.sendText(ctx, chatID, texts.Get(lang, texts.KeyImageError))
	}

	// удалённый вызов успешен и результат доставлен: сбой записи только логируется
	entry := domain.ImageEntry{
		Date:     today(),
		Prompt:   prompt,
		ImageURL: imageURL,
	}
	if err := s.UserRepo.AppendImageEntry(ctx, userID, entry); err != nil {
		s.Log.Error("failed to append image entry",
			"error", err,
			"user_id", userID,
		)
	}

	return nil
}
