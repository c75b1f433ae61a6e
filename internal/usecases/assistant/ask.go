package assistant

import (
	"context"
	"strconv"
	"strings"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/usecases/assistant/texts"
)

// HandleAsk обрабатывает /ask и обычные текстовые сообщения:
// квота -> запись попытки -> промпт из всей истории -> chat completion ->
// запись ответа -> ответ пользователю
func (s *Service) HandleAsk(ctx context.Context, userID int64, chatID int64, text string) error {
	lang := s.UserRepo.GetLanguage(ctx, userID)

	text = strings.TrimSpace(text)
	if text == "" {
		return s.sendText(ctx, chatID, texts.Get(lang, texts.KeyAsk))
	}

	// запросы одного пользователя обрабатываются последовательно: между
	// проверкой квоты и записью попытки не вклинится параллельный запрос
	defer s.lockUser(userID)()

	// отказ по квоте бесплатен: до удалённого вызова, без записи использования
	if s.HasReachedDailyLimit(ctx, userID, domain.CategoryAsk) {
		s.Log.Info("ask daily limit reached",
			"user_id", userID,
			"limit", s.Limits.Ask,
		)
		return s.sendText(ctx, chatID, texts.Get(lang, texts.KeyDailyLimit))
	}

	// попытка фиксируется до вызова модели: реплика пользователя остаётся
	// в истории и при сбое удалённого вызова
	userTurn := domain.AskEntry{
		Date:    today(),
		Role:    domain.RoleUser,
		Content: text,
	}
	if err := s.UserRepo.AppendAskEntry(ctx, userID, userTurn); err != nil {
		s.Log.Error("failed to append ask entry",
			"error", err,
			"user_id", userID,
		)
		return s.sendText(ctx, chatID, texts.Get(lang, domain.ErrorCategoryServer.MessageKey()))
	}

	processingID := s.sendProcessing(ctx, chatID, lang)
	defer s.deleteProcessing(ctx, chatID, processingID)

	prompt := s.BuildPrompt(ctx, userID)

	reply, err := s.OpenAI.CreateChatCompletion(ctx, prompt, strconv.FormatInt(userID, 10))
	if err != nil {
		return s.reportError(ctx, userID, chatID, lang, "ask", err)
	}

	// удалённый вызов уже успешен: сбой записи ответа логируется,
	// но результат пользователю всё равно доставляется
	assistantTurn := domain.AskEntry{
		Date:    today(),
		Role:    domain.RoleAssistant,
		Content: reply,
	}
	if err := s.UserRepo.AppendAskEntry(ctx, userID, assistantTurn); err != nil {
		s.Log.Error("failed to append assistant reply",
			"error", err,
			"user_id", userID,
		)
	}

	return s.sendText(ctx, chatID, reply)
}
