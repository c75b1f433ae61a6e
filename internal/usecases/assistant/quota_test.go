package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

func askTurn(date, role string) domain.AskEntry {
	return domain.AskEntry{Date: date, Role: role, Content: "x"}
}

func TestHasReachedDailyLimit_EmptyHistory(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	assert.False(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryAsk))
	assert.False(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryImage))
	assert.False(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryAudio))
}

func TestHasReachedDailyLimit_ReachedAtExactCap(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	svc.Limits.Ask = 3
	ctx := context.Background()
	day := today()

	for i := 0; i < 2; i++ {
		repo.ask[42] = append(repo.ask[42], askTurn(day, domain.RoleUser))
	}
	assert.False(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryAsk))

	repo.ask[42] = append(repo.ask[42], askTurn(day, domain.RoleUser))
	assert.True(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryAsk))
}

func TestHasReachedDailyLimit_AssistantTurnsAreNotCounted(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	svc.Limits.Ask = 3
	ctx := context.Background()
	day := today()

	// три полных обмена - шесть записей, но только три попытки
	for i := 0; i < 3; i++ {
		repo.ask[42] = append(repo.ask[42],
			askTurn(day, domain.RoleUser),
			askTurn(day, domain.RoleAssistant),
		)
	}

	assert.True(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryAsk))

	svc.Limits.Ask = 4
	assert.False(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryAsk))
}

func TestHasReachedDailyLimit_OtherDaysAreNotCounted(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	svc.Limits.Ask = 1
	ctx := context.Background()

	repo.ask[42] = append(repo.ask[42], askTurn("2020-01-01", domain.RoleUser))
	assert.False(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryAsk))

	repo.ask[42] = append(repo.ask[42], askTurn(today(), domain.RoleUser))
	assert.True(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryAsk))
}

func TestHasReachedDailyLimit_CategoriesAreIndependent(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	svc.Limits.Image = 1
	ctx := context.Background()
	day := today()

	repo.image[42] = append(repo.image[42], domain.ImageEntry{Date: day, Prompt: "p"})

	assert.True(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryImage))
	assert.False(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryAsk))
	assert.False(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryAudio))
}

func TestHasReachedDailyLimit_Audio(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	svc.Limits.Audio = 2
	ctx := context.Background()
	day := today()

	repo.audio[42] = append(repo.audio[42],
		domain.AudioEntry{Date: day, Prompt: "a"},
		domain.AudioEntry{Date: "2020-01-01", Prompt: "b"},
	)
	assert.False(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryAudio))

	repo.audio[42] = append(repo.audio[42], domain.AudioEntry{Date: day, Prompt: "c"})
	assert.True(t, svc.HasReachedDailyLimit(ctx, 42, domain.CategoryAudio))
}
