package texts

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

// Ключи локализованных сообщений
const (
	KeyStart                = "start"
	KeyHelp                 = "help"
	KeyAsk                  = "ask"
	KeyImagePrompt          = "image_prompt"
	KeyAudioPrompt          = "audio_prompt"
	KeyProcessing           = "processing"
	KeyLanguageSelection    = "language_selection"
	KeyLanguageConfirmation = "language_confirmation"
	KeyDailyLimit           = "daily_limit"
	KeyImageError           = "image_error"
	KeyAudioError           = "audio_error"
)

//go:embed messages.yaml
var messagesYAML []byte

// messages таблица локализованных сообщений: язык -> ключ -> текст
var messages map[string]map[string]string

func init() {
	if err := yaml.Unmarshal(messagesYAML, &messages); err != nil {
		panic(fmt.Errorf("invalid messages.yaml: %w", err))
	}
	for _, lang := range []domain.Language{domain.LanguageEN, domain.LanguageUA} {
		if _, ok := messages[lang.String()]; !ok {
			panic(fmt.Errorf("messages.yaml: language %s is missing", lang))
		}
	}
}

// Get возвращает текст по языку и ключу с фолбэком на английский
func Get(lang domain.Language, key string) string {
	if table, ok := messages[lang.String()]; ok {
		if text, ok := table[key]; ok {
			return text
		}
	}
	if text, ok := messages[domain.DefaultLanguage.String()][key]; ok {
		return text
	}
	return key
}
