package assistant

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/usecases/assistant/texts"
)

func TestHandleAudio_EmptyTextSendsHint(t *testing.T) {
	svc, repo, _, tg := newTestService(t)

	require.NoError(t, svc.HandleAudio(context.Background(), 42, 100, " "))

	assert.Equal(t, texts.Get(domain.LanguageEN, texts.KeyAudioPrompt), tg.lastSent())
	assert.Empty(t, repo.audio[42])
}

func TestHandleAudio_SuccessSendsVoiceAndRecordsUsage(t *testing.T) {
	svc, repo, openAI, tg := newTestService(t)
	openAI.speech = []byte("mp3-bytes")
	ctx := context.Background()

	require.NoError(t, svc.HandleAudio(ctx, 42, 100, "hello world"))

	require.Len(t, tg.voicePaths, 1)

	usage := repo.audio[42]
	require.Len(t, usage, 1)
	assert.Equal(t, "hello world", usage[0].Prompt)
	assert.Equal(t, today(), usage[0].Date)

	// временный файл удалён после отправки
	_, err := os.Stat(tg.voicePaths[0])
	assert.True(t, os.IsNotExist(err))
}

func TestHandleAudio_QuotaRejectionRecordsNothing(t *testing.T) {
	svc, repo, _, tg := newTestService(t)
	svc.Limits.Audio = 0
	ctx := context.Background()

	require.NoError(t, svc.HandleAudio(ctx, 42, 100, "hello"))

	assert.Equal(t, texts.Get(domain.LanguageEN, texts.KeyDailyLimit), tg.lastSent())
	assert.Empty(t, repo.audio[42])
	assert.Empty(t, tg.voicePaths)
}

func TestHandleAudio_SynthesisFailureRecordsNothing(t *testing.T) {
	svc, repo, openAI, tg := newTestService(t)
	openAI.speechErr = &domain.APIError{Kind: domain.APIErrorRateLimit, StatusCode: 429}
	ctx := context.Background()

	require.NoError(t, svc.HandleAudio(ctx, 42, 100, "hello"))

	assert.Equal(t, texts.Get(domain.LanguageEN, domain.ErrorCategoryLimit.MessageKey()), tg.lastSent())
	assert.Empty(t, repo.audio[42])
}

func TestHandleAudio_TempFileWriteFailureRecordsNothing(t *testing.T) {
	svc, repo, openAI, tg := newTestService(t)
	openAI.speech = []byte("mp3-bytes")
	// путь внутри обычного файла: запись временного файла обязана упасть
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o600))
	svc.TempDir = blocked
	ctx := context.Background()

	require.NoError(t, svc.HandleAudio(ctx, 42, 100, "hello"))

	assert.Equal(t, texts.Get(domain.LanguageEN, domain.ErrorCategoryServer.MessageKey()), tg.lastSent())
	assert.Empty(t, repo.audio[42])
	assert.Empty(t, tg.voicePaths)
}

func TestHandleAudio_DeliveryFailureRecordsNothing(t *testing.T) {
	svc, repo, openAI, tg := newTestService(t)
	openAI.speech = []byte("mp3-bytes")
	tg.voiceErr = assert.AnError
	ctx := context.Background()

	require.NoError(t, svc.HandleAudio(ctx, 42, 100, "hello"))

	assert.Equal(t, texts.Get(domain.LanguageEN, texts.KeyAudioError), tg.lastSent())
	assert.Empty(t, repo.audio[42])
}

func TestHandleVoice_TranscriptFlowsIntoAsk(t *testing.T) {
	svc, repo, openAI, tg := newTestService(t)
	openAI.transcript = "what is the weather"
	openAI.chatReply = "sunny"
	tg.fileContent = []byte("ogg-bytes")
	ctx := context.Background()

	require.NoError(t, svc.HandleVoice(ctx, 42, 100, "voice-file-id"))

	require.Equal(t, []string{"voice-file-id"}, tg.downloaded)

	// расшифровка прошла обычный флоу ask: вопрос и ответ в истории
	history := repo.ask[42]
	require.Len(t, history, 2)
	assert.Equal(t, "what is the weather", history[0].Content)
	assert.Equal(t, "sunny", history[1].Content)
	assert.Equal(t, "sunny", tg.lastSent())
}

func TestHandleVoice_DownloadFailure(t *testing.T) {
	svc, repo, _, tg := newTestService(t)
	tg.downloadErr = &domain.APIError{Kind: domain.APIErrorConnection}
	ctx := context.Background()

	require.NoError(t, svc.HandleVoice(ctx, 42, 100, "voice-file-id"))

	assert.Equal(t, texts.Get(domain.LanguageEN, domain.ErrorCategoryNetwork.MessageKey()), tg.lastSent())
	assert.Empty(t, repo.ask[42])
}

func TestHandleVoice_TranscriptionFailure(t *testing.T) {
	svc, repo, openAI, tg := newTestService(t)
	openAI.transcribeErr = &domain.APIError{Kind: domain.APIErrorUnprocessable, StatusCode: 422}
	tg.fileContent = []byte("ogg-bytes")
	ctx := context.Background()

	require.NoError(t, svc.HandleVoice(ctx, 42, 100, "voice-file-id"))

	assert.Equal(t, texts.Get(domain.LanguageEN, domain.ErrorCategoryClient.MessageKey()), tg.lastSent())
	assert.Empty(t, repo.ask[42])
}
