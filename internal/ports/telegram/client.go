package telegram

import "context"

// IClient клиент Telegram Bot API, используемый бизнес-логикой
type IClient interface {
	// SendMessage отправляет текст и возвращает message_id отправленного сообщения
	SendMessage(ctx context.Context, chatID int64, text string) (int64, error)
	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) (int64, error)
	DeleteMessage(ctx context.Context, chatID int64, messageID int64) error
	// SendPhotoURL отправляет фото по внешнему URL (Telegram скачивает сам)
	SendPhotoURL(ctx context.Context, chatID int64, photoURL string) error
	// SendVoice отправляет голосовое сообщение из локального файла
	SendVoice(ctx context.Context, chatID int64, voicePath string) error
	AnswerCallbackQuery(ctx context.Context, callbackQueryID string) error
	// DownloadFile скачивает файл по file_id в локальный путь
	DownloadFile(ctx context.Context, fileID string, destPath string) error
}
