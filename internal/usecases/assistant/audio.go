package assistant

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/usecases/assistant/texts"
)

// HandleAudio обрабатывает /audio: квота -> синтез речи -> временный файл ->
// отправка голосового -> запись использования. Временный файл и placeholder
// освобождаются безусловно, независимо от исхода.
func (s *Service) HandleAudio(ctx context.Context, userID int64, chatID int64, text string) error {
	lang := s.UserRepo.GetLanguage(ctx, userID)

	text = strings.TrimSpace(text)
	if text == "" {
		return s.sendText(ctx, chatID, texts.Get(lang, texts.KeyAudioPrompt))
	}

	// как и в image: запись использования после удалённого вызова,
	// секция накрывает проверку и запись целиком
	defer s.lockUser(userID)()

	if s.HasReachedDailyLimit(ctx, userID, domain.CategoryAudio) {
		s.Log.Info("audio daily limit reached",
			"user_id", userID,
			"limit", s.Limits.Audio,
		)
		return s.sendText(ctx, chatID, texts.Get(lang, texts.KeyDailyLimit))
	}

	processingID := s.sendProcessing(ctx, chatID, lang)
	defer s.deleteProcessing(ctx, chatID, processingID)

	audio, err := s.OpenAI.SynthesizeSpeech(ctx, text)
	if err != nil {
		return s.reportError(ctx, userID, chatID, lang, "audio", err)
	}

	// cleanup регистрируется до записи: частично записанный файл тоже удаляется
	voicePath := filepath.Join(s.TempDir, "voice-"+uuid.New().String()+".mp3")
	defer s.removeTempFile(voicePath)

	if err := os.WriteFile(voicePath, audio, 0o600); err != nil {
		return s.reportError(ctx, userID, chatID, lang, "audio", err)
	}

	if err := s.TelegramClient.SendVoice(ctx, chatID, voicePath); err != nil {
		s.Log.Error("failed to send voice",
			"error", err,
			"user_id", userID,
			"chat_id", chatID,
		)
		return s.sendText(ctx, chatID, texts.Get(lang, texts.KeyAudioError))
	}

	// удалённый вызов успешен и результат доставлен: сбой записи только логируется
	entry := domain.AudioEntry{
		Date:   today(),
		Prompt: text,
	}
	if err := s.UserRepo.AppendAudioEntry(ctx, userID, entry); err != nil {
		s.Log.Error("failed to append audio entry",
			"error", err,
			"user_id", userID,
		)
	}

	return nil
}

// HandleVoice обрабатывает голосовое сообщение: скачивание -> расшифровка ->
// обычный флоу ask по расшифрованному тексту
func (s *Service) HandleVoice(ctx context.Context, userID int64, chatID int64, fileID string) error {
	lang := s.UserRepo.GetLanguage(ctx, userID)

	voicePath := filepath.Join(s.TempDir, "voice-"+uuid.New().String()+".ogg")
	if err := s.TelegramClient.DownloadFile(ctx, fileID, voicePath); err != nil {
		return s.reportError(ctx, userID, chatID, lang, "voice", err)
	}
	defer s.removeTempFile(voicePath)

	transcript, err := s.OpenAI.TranscribeAudio(ctx, voicePath)
	if err != nil {
		return s.reportError(ctx, userID, chatID, lang, "voice", err)
	}

	return s.HandleAsk(ctx, userID, chatID, transcript)
}

// removeTempFile удаляет временный файл запроса; вызывается из defer безусловно
func (s *Service) removeTempFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.Log.Warn("failed to remove temp file",
			"error", err,
			"path", path,
		)
	}
}
