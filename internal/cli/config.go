package cli

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// configFile is the optional TOML configuration file, looked up in the
// working directory.
const configFile = "repolens.toml"

// Config holds settings shared by the serve and analyze commands.
//
// Resolution order, lowest to highest precedence: built-in defaults, the
// repolens.toml file, then environment variables (a .env file in the working
// directory is loaded first when present).
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `toml:"addr"`

	// Token is the GitHub API token. Empty means unauthenticated requests.
	Token string `toml:"token"`

	// CommitLimit is the number of commits fetched per analysis.
	CommitLimit int `toml:"commit_limit"`
}

// LoadConfig resolves the configuration from defaults, the optional
// repolens.toml file, and environment variables.
func LoadConfig() (Config, error) {
	// Populate the environment from .env first so env overrides see it.
	// A missing file is not an error.
	_ = godotenv.Load()

	cfg := Config{
		Addr:        ":8000",
		CommitLimit: 100,
	}

	if _, err := os.Stat(configFile); err == nil {
		if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("REPOLENS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("REPOLENS_COMMIT_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CommitLimit = n
		}
	}
	return cfg, nil
}
