package assistant

import (
	"context"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

// BuildPrompt восстанавливает всю историю ask пользователя в порядке
// добавления, проецируя записи на роль и текст. История не обрезается
// и не суммаризируется - накапливается на всё время жизни записи.
func (s *Service) BuildPrompt(ctx context.Context, userID int64) []domain.ChatMessage {
	entries := s.UserRepo.AskUsage(ctx, userID)

	prompt := make([]domain.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		prompt = append(prompt, domain.ChatMessage{
			Role:    entry.Role,
			Content: entry.Content,
		})
	}

	return prompt
}
