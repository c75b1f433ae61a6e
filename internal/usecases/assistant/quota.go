package assistant

import (
	"context"
	"time"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

// today возвращает текущий календарный день процесса строкой;
// сравнение в квотах идёт строгим строковым равенством
func today() string {
	return time.Now().Format(domain.DateLayout)
}

// HasReachedDailyLimit проверяет, исчерпан ли дневной лимит категории.
// Проверка выполняется до удалённого вызова; отказ бесплатен и ничего
// не записывает. Лимит достигнут уже при count == cap.
func (s *Service) HasReachedDailyLimit(ctx context.Context, userID int64, category domain.Category) bool {
	day := today()

	var used, limit int
	switch category {
	case domain.CategoryAsk:
		// попытка ask - одна реплика с ролью user; ответы ассистента не считаются
		for _, entry := range s.UserRepo.AskUsage(ctx, userID) {
			if entry.Date == day && entry.Role == domain.RoleUser {
				used++
			}
		}
		limit = s.Limits.Ask
	case domain.CategoryImage:
		for _, entry := range s.UserRepo.ImageUsage(ctx, userID) {
			if entry.Date == day {
				used++
			}
		}
		limit = s.Limits.Image
	case domain.CategoryAudio:
		for _, entry := range s.UserRepo.AudioUsage(ctx, userID) {
			if entry.Date == day {
				used++
			}
		}
		limit = s.Limits.Audio
	default:
		return false
	}

	return used >= limit
}
