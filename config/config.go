package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by the entry points
const (
	EnvConfigPath = "CIRCLESHOOTER_CONFIG"
	EnvSeed       = "CIRCLESHOOTER_SEED"
	EnvScriptPath = "CIRCLESHOOTER_SCRIPT"
)

// ErrNotSet is returned when an environment variable is empty or missing
var ErrNotSet = errors.New("environment variable not set")

// InitConfig loads a .env file from the working directory if there is one.
// Variables already set in the environment win over the file.
func InitConfig() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load .env: %w", err)
	}

	log.Println("Loaded environment variables from .env")
	return nil
}

// GetEnvVariable returns the value of v, or ErrNotSet
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("%w: %s", ErrNotSet, v)
	}

	return b, nil
}

// GetEnvInt64 parses v as a base-10 integer
func GetEnvInt64(v string) (int64, error) {
	raw, err := GetEnvVariable(v)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s=%q: %w", v, raw, err)
	}
	return n, nil
}

// StringOr returns flagValue when set, otherwise the environment value, otherwise fallback
func StringOr(flagValue, env, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v, err := GetEnvVariable(env); err == nil {
		return v
	}
	return fallback
}

// Int64Or returns flagValue when non-zero, otherwise the environment value, otherwise fallback.
// A malformed environment value is logged and ignored.
func Int64Or(flagValue int64, env string, fallback int64) int64 {
	if flagValue != 0 {
		return flagValue
	}
	v, err := GetEnvInt64(env)
	if err == nil {
		return v
	}
	if !errors.Is(err, ErrNotSet) {
		log.Printf("Warning: %v", err)
	}
	return fallback
}
