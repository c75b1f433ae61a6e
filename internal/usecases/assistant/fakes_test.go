package assistant

import (
	"context"
	"io"
	"os"
	"testing"

	"log/slog"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

// fakeRepo репозиторий пользователей в памяти для тестов usecase
type fakeRepo struct {
	langs      map[int64]domain.Language
	usernames  map[int64]string
	ask        map[int64][]domain.AskEntry
	image      map[int64][]domain.ImageEntry
	audio      map[int64][]domain.AudioEntry
	ensured    []int64
	appendErr  error
	setLangErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		langs:     map[int64]domain.Language{},
		usernames: map[int64]string{},
		ask:       map[int64][]domain.AskEntry{},
		image:     map[int64][]domain.ImageEntry{},
		audio:     map[int64][]domain.AudioEntry{},
	}
}

func (f *fakeRepo) GetLanguage(ctx context.Context, userID int64) domain.Language {
	if lang, ok := f.langs[userID]; ok {
		return lang
	}
	return domain.DefaultLanguage
}

func (f *fakeRepo) SetLanguage(ctx context.Context, userID int64, lang domain.Language) error {
	if f.setLangErr != nil {
		return f.setLangErr
	}
	f.langs[userID] = lang
	return nil
}

func (f *fakeRepo) SetUsername(ctx context.Context, userID int64, username string) error {
	f.usernames[userID] = username
	return nil
}

func (f *fakeRepo) EnsureUser(ctx context.Context, userID int64) error {
	f.ensured = append(f.ensured, userID)
	return nil
}

func (f *fakeRepo) AskUsage(ctx context.Context, userID int64) []domain.AskEntry {
	return f.ask[userID]
}

func (f *fakeRepo) ImageUsage(ctx context.Context, userID int64) []domain.ImageEntry {
	return f.image[userID]
}

func (f *fakeRepo) AudioUsage(ctx context.Context, userID int64) []domain.AudioEntry {
	return f.audio[userID]
}

func (f *fakeRepo) AppendAskEntry(ctx context.Context, userID int64, entry domain.AskEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.ask[userID] = append(f.ask[userID], entry)
	return nil
}

func (f *fakeRepo) AppendImageEntry(ctx context.Context, userID int64, entry domain.ImageEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.image[userID] = append(f.image[userID], entry)
	return nil
}

func (f *fakeRepo) AppendAudioEntry(ctx context.Context, userID int64, entry domain.AudioEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.audio[userID] = append(f.audio[userID], entry)
	return nil
}

// fakeOpenAI клиент OpenAI с каннед-ответами
type fakeOpenAI struct {
	chatReply     string
	chatErr       error
	gotPrompt     []domain.ChatMessage
	imageURL      string
	imageErr      error
	imageHook     func()
	speech        []byte
	speechErr     error
	transcript    string
	transcribeErr error
}

func (f *fakeOpenAI) CreateChatCompletion(ctx context.Context, messages []domain.ChatMessage, userID string) (string, error) {
	f.gotPrompt = messages
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return f.chatReply, nil
}

func (f *fakeOpenAI) GenerateImage(ctx context.Context, prompt string, userID string) (string, error) {
	if f.imageHook != nil {
		f.imageHook()
	}
	if f.imageErr != nil {
		return "", f.imageErr
	}
	return f.imageURL, nil
}

func (f *fakeOpenAI) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	if f.speechErr != nil {
		return nil, f.speechErr
	}
	return f.speech, nil
}

func (f *fakeOpenAI) TranscribeAudio(ctx context.Context, filePath string) (string, error) {
	if f.transcribeErr != nil {
		return "", f.transcribeErr
	}
	return f.transcript, nil
}

// fakeTelegram записывает всё, что бот отправляет пользователю
type fakeTelegram struct {
	sent        []string
	keyboards   []map[string]interface{}
	deleted     []int64
	photoURLs   []string
	voicePaths  []string
	answered    []string
	downloaded  []string
	fileContent []byte
	sendErr     error
	photoErr    error
	voiceErr    error
	downloadErr error
	nextMsgID   int64
}

func (f *fakeTelegram) SendMessage(ctx context.Context, chatID int64, text string) (int64, error) {
	if f.sendErr != nil {
		return 0, f.sendErr
	}
	f.sent = append(f.sent, text)
	f.nextMsgID++
	return f.nextMsgID, nil
}

func (f *fakeTelegram) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) (int64, error) {
	if f.sendErr != nil {
		return 0, f.sendErr
	}
	f.sent = append(f.sent, text)
	f.keyboards = append(f.keyboards, keyboard)
	f.nextMsgID++
	return f.nextMsgID, nil
}

func (f *fakeTelegram) DeleteMessage(ctx context.Context, chatID int64, messageID int64) error {
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeTelegram) SendPhotoURL(ctx context.Context, chatID int64, photoURL string) error {
	if f.photoErr != nil {
		return f.photoErr
	}
	f.photoURLs = append(f.photoURLs, photoURL)
	return nil
}

func (f *fakeTelegram) SendVoice(ctx context.Context, chatID int64, voicePath string) error {
	if f.voiceErr != nil {
		return f.voiceErr
	}
	f.voicePaths = append(f.voicePaths, voicePath)
	return nil
}

func (f *fakeTelegram) AnswerCallbackQuery(ctx context.Context, callbackQueryID string) error {
	f.answered = append(f.answered, callbackQueryID)
	return nil
}

func (f *fakeTelegram) DownloadFile(ctx context.Context, fileID string, destPath string) error {
	if f.downloadErr != nil {
		return f.downloadErr
	}
	f.downloaded = append(f.downloaded, fileID)
	return os.WriteFile(destPath, f.fileContent, 0o600)
}

// lastSent последний отправленный пользователю текст
func (f *fakeTelegram) lastSent() string {
	if len(f.sent) == 0 {
		return ""
	}
	return f.sent[len(f.sent)-1]
}

func newTestService(t *testing.T) (*Service, *fakeRepo, *fakeOpenAI, *fakeTelegram) {
	t.Helper()

	repo := newFakeRepo()
	openAI := &fakeOpenAI{}
	tg := &fakeTelegram{}

	svc := &Service{
		UserRepo:       repo,
		OpenAI:         openAI,
		TelegramClient: tg,
		Limits:         Limits{Ask: 10, Image: 5, Audio: 5},
		TempDir:        t.TempDir(),
		Log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return svc, repo, openAI, tg
}
