package env

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Locations returns the .env files to try, most specific first
func Locations() []string {
	name := os.Getenv("ENV")
	if name == "" {
		name = "development"
	}

	envFile := fmt.Sprintf(".env.%s", name)
	return []string{
		filepath.Join("internal", "config", "env", envFile),
		envFile,
		".env",
	}
}

// LoadEnv loads the first .env file found. Variables already set in the
// process environment are not overwritten. Returns the loaded path, or ""
// when no file exists.
func LoadEnv() string {
	for _, loc := range Locations() {
		if err := godotenv.Load(loc); err == nil {
			return loc
		}
	}
	return ""
}
