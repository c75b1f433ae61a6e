package userRepo

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"log/slog"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
	ports "github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/ports/repository"
	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/ports/storage"
)

// Repository доступ к записям пользователей поверх документ-хранилища.
// Документ читается один раз на старте и живёт в памяти; каждая мутация
// выполняется под mu и синхронно перезаписывает документ целиком.
// Один mutex на весь документ сериализует read-modify-write всех
// пользователей: раз Save всё равно пишет документ целиком, по-юзерные
// локи не дали бы дополнительной конкурентности.
type Repository struct {
	doc   storage.DocumentStore
	store *domain.Store
	log   *slog.Logger
	mu    sync.RWMutex
}

// New создаёт репозиторий поверх уже загруженного документа
func New(doc storage.DocumentStore, store *domain.Store, log *slog.Logger) ports.IUserRepo {
	if store == nil {
		store = domain.NewStore()
	}
	if store.Users == nil {
		store.Users = make(map[string]*domain.User)
	}
	return &Repository{
		doc:   doc,
		store: store,
		log:   log,
	}
}

func userKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// ensureUser возвращает запись пользователя, лениво создавая её.
// Вызывается только под mu.Lock.
func (r *Repository) ensureUser(userID int64) *domain.User {
	key := userKey(userID)
	user, ok := r.store.Users[key]
	if !ok {
		user = domain.NewUser()
		r.store.Users[key] = user
		r.log.Info("user record created", "user_id", userID)
	}
	return user
}

// persist синхронно перезаписывает весь документ. Вызывается под mu.Lock
// до возврата из мутации - падение записи никогда не выдаётся за успех.
func (r *Repository) persist(ctx context.Context) error {
	if err := r.doc.Save(ctx, r.store); err != nil {
		return fmt.Errorf("failed to persist store: %w", err)
	}
	return nil
}

// GetLanguage возвращает язык пользователя; для неизвестного - дефолтный
func (r *Repository) GetLanguage(ctx context.Context, userID int64) domain.Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store.Users[userKey(userID)]
	if !ok || !user.Language.IsValid() {
		return domain.DefaultLanguage
	}
	return user.Language
}

// SetLanguage устанавливает язык, лениво создавая запись
func (r *Repository) SetLanguage(ctx context.Context, userID int64, lang domain.Language) error {
	if !lang.IsValid() {
		return fmt.Errorf("invalid language: %s", lang)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.ensureUser(userID)
	user.Language = lang
	return r.persist(ctx)
}

// SetUsername сохраняет username (информационное поле документа)
func (r *Repository) SetUsername(ctx context.Context, userID int64, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.ensureUser(userID)
	user.Username = username
	return r.persist(ctx)
}

// EnsureUser создаёт запись, если её ещё нет (первый контакт пользователя)
func (r *Repository) EnsureUser(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := userKey(userID)
	if _, ok := r.store.Users[key]; ok {
		return nil
	}

	r.ensureUser(userID)
	return r.persist(ctx)
}

// AskUsage возвращает копию истории ask в порядке добавления
func (r *Repository) AskUsage(ctx context.Context, userID int64) []domain.AskEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store.Users[userKey(userID)]
	if !ok {
		return []domain.AskEntry{}
	}

	entries := make([]domain.AskEntry, len(user.AskUsage))
	copy(entries, user.AskUsage)
	return entries
}

// ImageUsage возвращает копию истории image
func (r *Repository) ImageUsage(ctx context.Context, userID int64) []domain.ImageEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store.Users[userKey(userID)]
	if !ok {
		return []domain.ImageEntry{}
	}

	entries := make([]domain.ImageEntry, len(user.ImageUsage))
	copy(entries, user.ImageUsage)
	return entries
}

// AudioUsage возвращает копию истории audio
func (r *Repository) AudioUsage(ctx context.Context, userID int64) []domain.AudioEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store.Users[userKey(userID)]
	if !ok {
		return []domain.AudioEntry{}
	}

	entries := make([]domain.AudioEntry, len(user.AudioUsage))
	copy(entries, user.AudioUsage)
	return entries
}

// AppendAskEntry дописывает реплику в историю ask, сохраняя порядок вставки
func (r *Repository) AppendAskEntry(ctx context.Context, userID int64, entry domain.AskEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.ensureUser(userID)
	user.AskUsage = append(user.AskUsage, entry)
	return r.persist(ctx)
}

// AppendImageEntry дописывает запись использования image
func (r *Repository) AppendImageEntry(ctx context.Context, userID int64, entry domain.ImageEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.ensureUser(userID)
	user.ImageUsage = append(user.ImageUsage, entry)
	return r.persist(ctx)
}

// AppendAudioEntry дописывает запись использования audio
func (r *Repository) AppendAudioEntry(ctx context.Context, userID int64, entry domain.AudioEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.ensureUser(userID)
	user.AudioUsage = append(user.AudioUsage, entry)
	return r.persist(ctx)
}
