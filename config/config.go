package config

import (
	"log"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             int    `env:"PORT" envDefault:"8080"`
	Dsn              string `env:"DSN"`
	JwtSecret        string `env:"JWT_SECRET"`
	LiveKitAPIKey    string `env:"LIVEKIT_API_KEY"`
	LiveKitAPISecret string `env:"LIVEKIT_API_SECRET"`
	LiveKitURL       string `env:"LIVEKIT_URL"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Println("[Env]: unable to load .env file", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Println("[Env]: failed to parse environment variables:", parseErr)
	}

	return &cfg
}

// LiveKitConfigured reports whether all livestream credentials are present.
// Absence is a deployment error, surfaced per request as a 500.
func (c *Config) LiveKitConfigured() bool {
	return c.LiveKitAPIKey != "" && c.LiveKitAPISecret != "" && c.LiveKitURL != ""
}
