package domain

// Language язык интерфейса пользователя
type Language string

const (
	LanguageEN Language = "en"
	LanguageUA Language = "ua"
)

// DefaultLanguage язык по умолчанию для новых пользователей
const DefaultLanguage = LanguageEN

func (l Language) String() string {
	return string(l)
}

func (l Language) IsValid() bool {
	switch l {
	case LanguageEN, LanguageUA:
		return true
	default:
		return false
	}
}

// Category категория использования, по которой считается дневной лимит
type Category string

const (
	CategoryAsk   Category = "ask"
	CategoryImage Category = "image"
	CategoryAudio Category = "audio"
)

// Роли реплик в истории ask
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DateLayout формат даты записи использования - только календарный день,
// лимиты сравниваются строковым равенством дат
const DateLayout = "2006-01-02"

// AskEntry одна реплика диалога (запись использования категории ask)
type AskEntry struct {
	Date    string `json:"date"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ImageEntry запись использования генерации изображения
type ImageEntry struct {
	Date     string `json:"date"`
	Prompt   string `json:"prompt"`
	ImageURL string `json:"image_url"`
}

// AudioEntry запись использования синтеза речи
type AudioEntry struct {
	Date   string `json:"date"`
	Prompt string `json:"prompt"`
}

// User запись пользователя в персистентном документе
type User struct {
	Username   string       `json:"username,omitempty"`
	Language   Language     `json:"language"`
	AskUsage   []AskEntry   `json:"ask_usage"`
	ImageUsage []ImageEntry `json:"image_usage"`
	AudioUsage []AudioEntry `json:"audio_usage"`
}

// NewUser создаёт пустую запись пользователя с языком по умолчанию
func NewUser() *User {
	return &User{
		Language:   DefaultLanguage,
		AskUsage:   []AskEntry{},
		ImageUsage: []ImageEntry{},
		AudioUsage: []AudioEntry{},
	}
}

// Store весь персистентный документ: все пользователи, ключ - telegram user id строкой
type Store struct {
	Users map[string]*User `json:"users"`
}

// NewStore создаёт пустой документ без пользователей
func NewStore() *Store {
	return &Store{Users: make(map[string]*User)}
}
