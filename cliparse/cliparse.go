package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

type Config struct {
	Port             int    `env:"PORT" envDefault:"3318"`
	NationalDataPath string `env:"NATIONAL_DATA_PATH" envDefault:"data/us.csv"`
	StatesDataPath   string `env:"STATES_DATA_PATH" envDefault:"data/us-states.csv"`
	StaticDir        string `env:"STATIC_DIR"`
	AllowedOrigin    string `env:"CORS_ORIGIN"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
}

// ParseFlags reads flags, then the optional .env file, then the environment.
// CLI flags override environment values.
func ParseFlags(args []string) (Config, error) {
	var flags Config
	var envFile string

	fs := flag.NewFlagSet("covid-charts", flag.ContinueOnError)

	fs.IntVar(&flags.Port, "p", 0, "Server port")
	fs.StringVar(&flags.NationalDataPath, "national", "", "National dataset CSV path")
	fs.StringVar(&flags.StatesDataPath, "states", "", "Per-state dataset CSV path")
	fs.StringVar(&flags.StaticDir, "static", "", "Directory served under /static/")
	fs.StringVar(&flags.AllowedOrigin, "cors-origin", "", "Allowed CORS origin (default: echo request origin)")
	fs.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&envFile, "env-file", defaultEnvFile, "Optional dotenv file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if flags.Port != 0 {
		cfg.Port = flags.Port
	}
	if flags.NationalDataPath != "" {
		cfg.NationalDataPath = flags.NationalDataPath
	}
	if flags.StatesDataPath != "" {
		cfg.StatesDataPath = flags.StatesDataPath
	}
	if flags.StaticDir != "" {
		cfg.StaticDir = flags.StaticDir
	}
	if flags.AllowedOrigin != "" {
		cfg.AllowedOrigin = flags.AllowedOrigin
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Level returns the configured slog level, defaulting to info
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.NationalDataPath == "" {
		return errors.New("national dataset path required (use -national or NATIONAL_DATA_PATH env)")
	}
	if c.StatesDataPath == "" {
		return errors.New("states dataset path required (use -states or STATES_DATA_PATH env)")
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

// loadEnvFile never overrides variables already set. A missing default file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if path == defaultEnvFile && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}
