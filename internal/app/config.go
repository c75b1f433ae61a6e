package app

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	server "github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/adapters/primary/http"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/adapters/secondary/openai"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/adapters/secondary/storage/jsonfile"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/adapters/secondary/storage/pg"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/adapters/secondary/telegram"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/pkg/logger"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/usecases/assistant"
)

// Драйверы документ-хранилища
const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	Log      *logger.Config   `envconfig:"LOG"`
	Server   *server.Config   `envconfig:"APISERVER"`
	Telegram *telegram.Config `envconfig:"TELEGRAM"`
	OpenAI   *openai.Config   `envconfig:"OPENAI"`
	Storage  StorageConfig    `envconfig:"STORAGE"`
	Limits   assistant.Limits `envconfig:"LIMITS"`
}

// StorageConfig выбор носителя документа: файл (по умолчанию) либо Postgres
type StorageConfig struct {
	Driver   string           `envconfig:"DRIVER" default:"file"`
	File     *jsonfile.Config `envconfig:"FILE"`
	Postgres *pg.Config       `envconfig:"POSTGRES"`
}

func (c *StorageConfig) Validate() error {
	switch c.Driver {
	case StorageDriverFile, StorageDriverPostgres:
		return nil
	default:
		return fmt.Errorf("invalid storage driver: %s", c.Driver)
	}
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load(".env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Storage.Validate(); err != nil {
		return nil, fmt.Errorf("invalid storage config: %w", err)
	}

	return cfg, nil
}
