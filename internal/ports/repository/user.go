package repository

import (
	"context"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

// IUserRepo доступ к записям пользователей поверх документ-хранилища.
// Геттеры никогда не ошибаются: для неизвестного пользователя/поля
// возвращается типовой дефолт. Мутации лениво создают запись и синхронно
// персистят весь документ до возврата.
type IUserRepo interface {
	GetLanguage(ctx context.Context, userID int64) domain.Language
	SetLanguage(ctx context.Context, userID int64, lang domain.Language) error
	SetUsername(ctx context.Context, userID int64, username string) error

	// EnsureUser создаёт запись, если её ещё нет (команда /start)
	EnsureUser(ctx context.Context, userID int64) error

	AskUsage(ctx context.Context, userID int64) []domain.AskEntry
	ImageUsage(ctx context.Context, userID int64) []domain.ImageEntry
	AudioUsage(ctx context.Context, userID int64) []domain.AudioEntry

	AppendAskEntry(ctx context.Context, userID int64, entry domain.AskEntry) error
	AppendImageEntry(ctx context.Context, userID int64, entry domain.ImageEntry) error
	AppendAudioEntry(ctx context.Context, userID int64, entry domain.AudioEntry) error
}
