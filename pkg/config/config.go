package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	GitHub GitHubConfig
	Paths  PathsConfig
	Server ServerConfig
	Theme  string
}

type GitHubConfig struct {
	Token    string
	Username string
}

type PathsConfig struct {
	DataDir   string
	AssetsDir string
	ThemesDir string
}

type ServerConfig struct {
	Port string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		GitHub: GitHubConfig{
			Token:    getEnv("GH_TOKEN", ""),
			Username: resolveUsername(),
		},
		Paths: PathsConfig{
			DataDir:   getEnv("DATA_DIR", "data"),
			AssetsDir: getEnv("ASSETS_DIR", "assets"),
			ThemesDir: getEnv("THEMES_DIR", "themes"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Theme: getEnv("THEME", "dark"),
	}

	return nil
}

// resolveUsername infers the GitHub username from the environment. An
// explicit GITHUB_USERNAME always wins; the remaining variables are the
// ones GitHub Actions populates automatically, so collection works
// unattended in CI without extra setup.
func resolveUsername() string {
	if v := os.Getenv("GITHUB_USERNAME"); v != "" {
		return v
	}
	if v := os.Getenv("GITHUB_REPOSITORY_OWNER"); v != "" {
		return v
	}
	if v := os.Getenv("GITHUB_ACTOR"); v != "" {
		return v
	}
	if v := os.Getenv("GITHUB_REPOSITORY"); v != "" {
		// GITHUB_REPOSITORY is "owner/repo"
		if owner, _, ok := strings.Cut(v, "/"); ok {
			return owner
		}
		return v
	}
	return ""
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
