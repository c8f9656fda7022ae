package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables providing flag defaults.
const (
	envFormat = "COMPONENT_GENERATOR_FORMAT"
	envLoad   = "COMPONENT_GENERATOR_LOAD"
	envStrict = "COMPONENT_GENERATOR_STRICT"
)

// config holds the flag defaults taken from the environment.
type config struct {
	Format string
	Load   bool
	Strict bool
}

// loadConfig reads .env (if present) and the environment. Variables already
// set in the environment win over the file. Missing files are skipped; the
// first file that exists but cannot be loaded is returned as an error along
// with the config built from whatever was loaded.
func loadConfig(envFiles ...string) (config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}

	var loadErr error

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) && loadErr == nil {
			loadErr = fmt.Errorf("loading %s: %w", file, err)
		}
	}

	return config{
		Format: env(envFormat, formatText),
		Load:   envBool(envLoad, false),
		Strict: envBool(envStrict, false),
	}, loadErr
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}

	return b
}
