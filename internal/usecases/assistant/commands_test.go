package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/usecases/assistant/texts"
)

func TestHandleStart_CreatesRecordAndGreets(t *testing.T) {
	svc, repo, _, tg := newTestService(t)
	username := "alice"
	user := &domain.TelegramUser{ID: 42, Username: &username}

	require.NoError(t, svc.HandleStart(context.Background(), user, 100))

	assert.Equal(t, []int64{42}, repo.ensured)
	assert.Equal(t, "alice", repo.usernames[42])
	assert.Equal(t, texts.Get(domain.LanguageEN, texts.KeyStart), tg.lastSent())
}

func TestHandleStart_NoUsername(t *testing.T) {
	svc, repo, _, tg := newTestService(t)
	user := &domain.TelegramUser{ID: 42}

	require.NoError(t, svc.HandleStart(context.Background(), user, 100))

	assert.Empty(t, repo.usernames)
	assert.Equal(t, texts.Get(domain.LanguageEN, texts.KeyStart), tg.lastSent())
}

func TestHandleHelp(t *testing.T) {
	svc, repo, _, tg := newTestService(t)
	repo.langs[42] = domain.LanguageUA

	require.NoError(t, svc.HandleHelp(context.Background(), 42, 100))

	assert.Equal(t, texts.Get(domain.LanguageUA, texts.KeyHelp), tg.lastSent())
}

func TestHandleUnknownCommand_RepliesWithHelp(t *testing.T) {
	svc, _, _, tg := newTestService(t)

	require.NoError(t, svc.HandleUnknownCommand(context.Background(), 42, 100))

	assert.Equal(t, texts.Get(domain.LanguageEN, texts.KeyHelp), tg.lastSent())
}

func TestHandleLanguageCommand_SendsKeyboard(t *testing.T) {
	svc, _, _, tg := newTestService(t)

	require.NoError(t, svc.HandleLanguageCommand(context.Background(), 42, 100))

	assert.Equal(t, texts.Get(domain.LanguageEN, texts.KeyLanguageSelection), tg.lastSent())
	require.Len(t, tg.keyboards, 1)
	assert.Contains(t, tg.keyboards[0], "inline_keyboard")
}

func TestHandleLanguageSelection_SetsLanguageAndConfirmsInIt(t *testing.T) {
	svc, repo, _, tg := newTestService(t)

	require.NoError(t, svc.HandleLanguageSelection(context.Background(), 42, 100, "cb-1", domain.LanguageUA))

	assert.Equal(t, []string{"cb-1"}, tg.answered)
	assert.Equal(t, domain.LanguageUA, repo.langs[42])
	// подтверждение приходит уже на выбранном языке
	assert.Equal(t, texts.Get(domain.LanguageUA, texts.KeyLanguageConfirmation), tg.lastSent())
}

func TestHandleLanguageSelection_SetFailureReportsInCurrentLanguage(t *testing.T) {
	svc, repo, _, tg := newTestService(t)
	repo.setLangErr = assert.AnError

	require.NoError(t, svc.HandleLanguageSelection(context.Background(), 42, 100, "cb-1", domain.LanguageUA))

	assert.NotContains(t, repo.langs, int64(42))
	assert.Equal(t, texts.Get(domain.LanguageEN, domain.ErrorCategoryServer.MessageKey()), tg.lastSent())
}
