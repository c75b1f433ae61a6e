package assistant

import (
	"os"
	"sync"

	"log/slog"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/ports/repository"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/ports/service"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/ports/telegram"
)

// Limits дневные лимиты по категориям
type Limits struct {
	Ask   int `envconfig:"ASK" default:"10"`
	Image int `envconfig:"IMAGE" default:"5"`
	Audio int `envconfig:"AUDIO" default:"5"`
}

// Service бизнес-логика бота: команды, квоты, вызовы OpenAI, учёт использования
type Service struct {
	UserRepo       repository.IUserRepo
	OpenAI         service.IOpenAIClient
	TelegramClient telegram.IClient
	Limits         Limits
	TempDir        string
	Log            *slog.Logger

	// userLocks по-юзерные мьютексы запросов: ключ - telegram user id
	userLocks sync.Map
}

func New(
	userRepo repository.IUserRepo,
	openAI service.IOpenAIClient,
	telegramClient telegram.IClient,
	limits Limits,
	log *slog.Logger,
) service.IAssistantService {
	return &Service{
		UserRepo:       userRepo,
		OpenAI:         openAI,
		TelegramClient: telegramClient,
		Limits:         limits,
		TempDir:        os.TempDir(),
		Log:            log,
	}
}
