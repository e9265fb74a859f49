package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingToken is returned when GITHUB_TOKEN is not set.
var ErrMissingToken = errors.New("GITHUB_TOKEN environment variable is not set")

// Env holds the settings read from the process environment.
type Env struct {
	Token string
	Port  string
}

// LoadEnv loads the given .env files (or ./.env) into the process environment,
// then reads the settings. Missing .env files are ignored.
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("failed to load .env: %w", err)
	}

	env := Env{
		Token: os.Getenv("GITHUB_TOKEN"),
		Port:  os.Getenv("PORT"),
	}
	if env.Port == "" {
		env.Port = "8080"
	}
	if env.Token == "" {
		return env, ErrMissingToken
	}
	return env, nil
}
