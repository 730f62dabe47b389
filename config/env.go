package config

import (
	"os"

	"github.com/joho/godotenv"
)

// FromEnv builds a Config from BACKAND_* variables. A .env file (or the
// file named by ENV_FILE) is loaded first when present; a missing file
// is not an error.
func FromEnv() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)

	c := &Config{
		AppName:        os.Getenv("BACKAND_APP_NAME"),
		AnonymousToken: os.Getenv("BACKAND_ANONYMOUS_TOKEN"),
		SignUpToken:    os.Getenv("BACKAND_SIGNUP_TOKEN"),
		BaseURL:        os.Getenv("BACKAND_BASE_URL"),
		Version:        os.Getenv("BACKAND_VERSION"),
		Mode:           AuthMode(os.Getenv("BACKAND_MODE")),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
