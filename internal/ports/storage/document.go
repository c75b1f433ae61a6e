package storage

import (
	"context"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

// DocumentStore хранилище всего документа целиком: читается один раз на старте,
// каждая мутация перезаписывает документ полностью. Владеет носителем
// монопольно - никто другой к файлу/строке не обращается.
type DocumentStore interface {
	// Load читает документ; отсутствие документа - пустой Store,
	// существующий но нечитаемый документ - domain.ErrStorageCorrupt
	Load(ctx context.Context) (*domain.Store, error)
	// Save синхронно перезаписывает весь документ
	Save(ctx context.Context, store *domain.Store) error
	// Ping проверяет доступность носителя (для readiness probe)
	Ping(ctx context.Context) error
	Close() error
}
