package configs

import (
	"embed"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Files holds the default application.yml and messages.yml shipped with the binary.
//
//go:embed application.yml messages.yml
var Files embed.FS

type EnvConfig struct {
	ApplicationName string
	LogLevel        string
}

var Env *EnvConfig

func init() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "todo-api"),
		LogLevel:        getStringOrDefault("LOG_LEVEL", "info"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
