package texts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

func TestGet_ReturnsLocalizedText(t *testing.T) {
	en := Get(domain.LanguageEN, KeyStart)
	ua := Get(domain.LanguageUA, KeyStart)

	assert.NotEmpty(t, en)
	assert.NotEmpty(t, ua)
	assert.NotEqual(t, en, ua)
}

func TestGet_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, Get(domain.LanguageEN, KeyHelp), Get(domain.Language("fr"), KeyHelp))
}

func TestGet_UnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no_such_key", Get(domain.LanguageEN, "no_such_key"))
}

func TestGet_AllKeysPresentInBothLanguages(t *testing.T) {
	keys := []string{
		KeyStart, KeyHelp, KeyAsk, KeyImagePrompt, KeyAudioPrompt,
		KeyProcessing, KeyLanguageSelection, KeyLanguageConfirmation,
		KeyDailyLimit, KeyImageError, KeyAudioError,
		string(domain.ErrorCategoryNetwork), string(domain.ErrorCategoryRequest),
		string(domain.ErrorCategoryLimit), string(domain.ErrorCategoryClient),
		string(domain.ErrorCategoryAuth), string(domain.ErrorCategoryServer),
		string(domain.ErrorCategoryGeneric),
	}

	for _, key := range keys {
		for _, lang := range []domain.Language{domain.LanguageEN, domain.LanguageUA} {
			text, ok := messages[lang.String()][key]
			assert.True(t, ok, "key %q missing for %s", key, lang)
			assert.NotEmpty(t, text, "key %q empty for %s", key, lang)
		}
	}
}
