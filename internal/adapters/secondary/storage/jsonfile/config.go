package jsonfile

type Config struct {
	// ключ не должен резолвиться в голый $PATH из окружения процесса
	Path string `envconfig:"STORE_PATH" default:"users.json"`
}
