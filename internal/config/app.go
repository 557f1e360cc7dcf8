package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads .env files into the environment without overriding
// variables that are already set. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return err
		}
	}
	return nil
}

func LogFile() string {
	return os.Getenv("MINES_LOG_FILE")
}

func Sound() bool {
	sound, ok := os.LookupEnv("MINES_SOUND")
	if !ok {
		return true
	}
	return sound != "0"
}
