package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/adapters/primary/http"
	healthcheckController "github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/adapters/primary/http/controllers/healthcheck"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/adapters/secondary/openai"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/adapters/secondary/storage/jsonfile"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/adapters/secondary/storage/pg"
	telegramAdapter "github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/adapters/secondary/telegram"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/ports/storage"
	userRepo "github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/repository/user"
	telegramService "github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/services/telegram"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/usecases/assistant"
)

// Dependencies собранные зависимости приложения
type Dependencies struct {
	DocStore   storage.DocumentStore
	HTTPServer *http.Server
	Poller     *telegramAdapter.Poller
}

// initDependencies поднимает хранилище, загружает документ и собирает граф сервисов
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	docStore, err := a.initStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	// битый документ фатален: молча начинать с пустого нельзя
	store, err := docStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	repo := userRepo.New(docStore, store, a.Log)
	openaiClient := openai.NewClient(a.Cfg.OpenAI, a.Log)
	tgClient := telegramAdapter.NewClient(a.Cfg.Telegram.BotToken, a.Log)

	// проверка токена на старте: с неверным токеном бот не поднимается
	if err := tgClient.GetMe(ctx); err != nil {
		return nil, fmt.Errorf("failed to verify bot token: %w", err)
	}

	assistantService := assistant.New(repo, openaiClient, tgClient, a.Cfg.Limits, a.Log)
	botService := telegramService.New(assistantService, a.Log)

	poller := telegramAdapter.NewPoller(tgClient, a.Cfg.Telegram, botService.HandleUpdate, a.Log)

	healthCheck := healthcheckController.New(docStore, a.Log)
	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log, healthCheck)

	return &Dependencies{
		DocStore:   docStore,
		HTTPServer: httpServer,
		Poller:     poller,
	}, nil
}

// initStorage выбирает носитель документа по конфигурации
func (a *App) initStorage() (storage.DocumentStore, error) {
	switch a.Cfg.Storage.Driver {
	case StorageDriverPostgres:
		db, err := a.Cfg.Storage.Postgres.NewConnection()
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		a.Log.Info("postgres connected successfully")
		return pg.New(db, a.Log)
	default:
		return jsonfile.New(a.Cfg.Storage.File, a.Log), nil
	}
}
