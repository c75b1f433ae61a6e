package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
	ports "github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/ports/storage"
)

// Store документ-хранилище в одном JSON-файле: Load читает файл целиком,
// Save перезаписывает его целиком (temp-файл + rename, чтобы падение
// посреди записи не оставило полудокумент)
type Store struct {
	path string
	log  *slog.Logger
}

func New(cfg *Config, log *slog.Logger) ports.DocumentStore {
	path := "users.json"
	if cfg != nil && cfg.Path != "" {
		path = cfg.Path
	}
	return &Store{
		path: path,
		log:  log,
	}
}

// Load читает весь документ; отсутствие файла - пустой Store,
// битый JSON - domain.ErrStorageCorrupt (фатально на старте)
func (s *Store) Load(ctx context.Context) (*domain.Store, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Info("store file does not exist, starting empty", "path", s.path)
			return domain.NewStore(), nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	store := domain.NewStore()
	if err := json.Unmarshal(data, store); err != nil {
		s.log.Error("store file is not valid json",
			"error", err,
			"path", s.path,
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageCorrupt, err)
	}

	if store.Users == nil {
		store.Users = make(map[string]*domain.User)
	}

	s.log.Info("store loaded", "path", s.path, "users", len(store.Users))
	return store, nil
}

// Save синхронно перезаписывает весь документ
func (s *Store) Save(ctx context.Context, store *domain.Store) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		s.log.Error("failed to write store file",
			"error", err,
			"path", tmpPath,
		)
		return fmt.Errorf("failed to write store file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		s.log.Error("failed to replace store file",
			"error", err,
			"path", s.path,
		)
		return fmt.Errorf("failed to replace store file: %w", err)
	}

	return nil
}

// Ping проверяет, что директория хранилища доступна на запись
func (s *Store) Ping(ctx context.Context) error {
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("store directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("store path %s is not inside a directory", s.path)
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}
