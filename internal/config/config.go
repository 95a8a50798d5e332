package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kanbo/internal/kanban/seed"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the unified application configuration
type Config struct {
	BoardDir  string       `toml:"board_dir" env:"KANBO_BOARD_DIR"`
	BoardName string       `toml:"board_name" env:"KANBO_BOARD_NAME" env-default:"Kanban Board"`
	PrefsPath string       `toml:"prefs_path" env:"KANBO_PREFS_PATH"`
	LogDir    string       `toml:"log_dir" env:"KANBO_LOG_DIR"`
	Server    ServerConfig `toml:"server" env-prefix:"KANBO_SERVER_"`
	S3        S3Config     `toml:"s3" env-prefix:"KANBO_S3_"`
}

type ServerConfig struct {
	Addr string `toml:"addr" env:"ADDR" env-default:"127.0.0.1:8080"`
}

type S3Config struct {
	Endpoint     string `toml:"endpoint" env:"ENDPOINT"`
	Region       string `toml:"region" env:"REGION" env-default:"us-east-1"`
	Bucket       string `toml:"bucket" env:"BUCKET"`
	Key          string `toml:"key" env:"KEY" env-default:"board.json"`
	AccessKey    string `toml:"access_key" env:"ACCESS_KEY"`
	SecretKey    string `toml:"secret_key" env:"SECRET_KEY"`
	UsePathStyle bool   `toml:"use_path_style" env:"USE_PATH_STYLE"`
	MaxAttempts  int    `toml:"max_attempts" env:"MAX_ATTEMPTS" env-default:"3"`
}

// Seed converts the S3 section for the seed package
func (c S3Config) Seed() seed.S3Config {
	return seed.S3Config{
		Endpoint:     c.Endpoint,
		Region:       c.Region,
		Bucket:       c.Bucket,
		Key:          c.Key,
		AccessKey:    c.AccessKey,
		SecretKey:    c.SecretKey,
		UsePathStyle: c.UsePathStyle,
		MaxAttempts:  c.MaxAttempts,
	}
}

// Flags holds parsed CLI flags
type Flags struct {
	ConfigPath string
	BoardDir   string
	LogDir     string
	ServerAddr string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags Flags) (*Config, error) {
	configPath := flags.ConfigPath
	if configPath == "" {
		configPath = os.Getenv("KANBO_CONFIG")
	}
	if configPath == "" {
		var err error
		configPath, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	var cfg Config

	// ReadConfig applies env overrides on top of the file; without a file only env is read
	if _, err := os.Stat(expandPath(configPath)); err == nil {
		if err := cleanenv.ReadConfig(expandPath(configPath), &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read config from env: %w", err)
		}
	} else {
		return nil, err
	}

	if flags.BoardDir != "" {
		cfg.BoardDir = flags.BoardDir
	}
	if flags.LogDir != "" {
		cfg.LogDir = flags.LogDir
	}
	if flags.ServerAddr != "" {
		cfg.Server.Addr = flags.ServerAddr
	}

	if cfg.PrefsPath == "" {
		dir, err := GetDefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.PrefsPath = filepath.Join(dir, "prefs.yaml")
	}
	if cfg.LogDir == "" {
		dir, err := GetDefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.LogDir = dir
	}

	cfg.BoardDir = expandPath(cfg.BoardDir)
	cfg.PrefsPath = expandPath(cfg.PrefsPath)
	cfg.LogDir = expandPath(cfg.LogDir)

	return &cfg, nil
}

// GetDefaultDir returns ~/.config/kanbo
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "kanbo"), nil
}

// DefaultPath returns the path to the configuration file
func DefaultPath() (string, error) {
	dir, err := GetDefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Defaults returns the values written to a fresh config file
func Defaults() Config {
	return Config{
		BoardName: "Kanban Board",
		Server:    ServerConfig{Addr: "127.0.0.1:8080"},
		S3: S3Config{
			Region:      "us-east-1",
			Key:         "board.json",
			MaxAttempts: 3,
		},
	}
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return Save(path, Defaults())
}

// Save writes cfg as TOML, creating the parent directory
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
