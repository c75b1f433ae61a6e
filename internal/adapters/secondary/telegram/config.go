package telegram

type Config struct {
	BotToken       string `envconfig:"BOT_TOKEN" required:"true"`
	PollingTimeout int    `envconfig:"POLLING_TIMEOUT" default:"30"`
}
