package openai

import "time"

type Config struct {
	APIKey          string        `envconfig:"API_KEY" required:"true"`
	BaseURL         string        `envconfig:"BASE_URL" default:"https://api.openai.com/v1"`
	ChatModel       string        `envconfig:"CHAT_MODEL" default:"gpt-3.5-turbo"`
	Temperature     float64       `envconfig:"TEMPERATURE" default:"0"`
	ImageModel      string        `envconfig:"IMAGE_MODEL" default:"dall-e-3"`
	ImageSize       string        `envconfig:"IMAGE_SIZE" default:"1024x1024"`
	ImageQuality    string        `envconfig:"IMAGE_QUALITY" default:"standard"`
	SpeechModel     string        `envconfig:"SPEECH_MODEL" default:"tts-1"`
	SpeechVoice     string        `envconfig:"SPEECH_VOICE" default:"alloy"`
	TranscribeModel string        `envconfig:"TRANSCRIBE_MODEL" default:"whisper-1"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"120s"`
}
