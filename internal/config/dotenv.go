package config

import (
	"os"

	"github.com/joho/godotenv"
)

// dotenvFiles in load order. godotenv never overwrites variables that
// are already set, so real OS env beats every file and .env.local beats
// .env.
var dotenvFiles = []string{".env.local", ".env"}

// LoadDotEnv loads the optional dotenv files and reports which ones
// were found. Missing files are not an error; production deployments
// carry no dotenv files at all.
func LoadDotEnv() []string {
	var loaded []string
	for _, name := range dotenvFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err == nil {
			loaded = append(loaded, name)
		}
	}
	return loaded
}
