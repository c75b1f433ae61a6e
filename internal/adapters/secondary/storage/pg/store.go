package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
	ports "github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/ports/storage"
)

// Store документ-хранилище поверх Postgres: весь документ лежит одной
// jsonb-строкой, контракт тот же, что у файлового стора - читаем целиком,
// перезаписываем целиком
type Store struct {
	db  *sqlx.DB
	log *slog.Logger
}

const createTableQuery = `CREATE TABLE IF NOT EXISTS bot_store (
	id smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	document jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

func New(db *sqlx.DB, log *slog.Logger) (ports.DocumentStore, error) {
	if _, err := db.Exec(createTableQuery); err != nil {
		return nil, fmt.Errorf("failed to create bot_store table: %w", err)
	}
	return &Store{
		db:  db,
		log: log,
	}, nil
}

// Load читает единственную строку документа; её отсутствие - пустой Store,
// битый jsonb - domain.ErrStorageCorrupt
func (s *Store) Load(ctx context.Context) (*domain.Store, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, `SELECT document FROM bot_store WHERE id = 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.Info("store document does not exist, starting empty")
			return domain.NewStore(), nil
		}
		return nil, fmt.Errorf("failed to read store document: %w", err)
	}

	store := domain.NewStore()
	if err := json.Unmarshal(raw, store); err != nil {
		s.log.Error("store document is not valid json", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageCorrupt, err)
	}

	if store.Users == nil {
		store.Users = make(map[string]*domain.User)
	}

	s.log.Info("store loaded", "users", len(store.Users))
	return store, nil
}

// Save синхронно перезаписывает весь документ одной строкой
func (s *Store) Save(ctx context.Context, store *domain.Store) error {
	data, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	query := `INSERT INTO bot_store (id, document, updated_at) VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()`
	if _, err := s.db.ExecContext(ctx, query, data); err != nil {
		s.log.Error("failed to write store document", "error", err)
		return fmt.Errorf("failed to write store document: %w", err)
	}

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
