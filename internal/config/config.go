package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Env     string      `yaml:"env" env:"APP_ENV" env-default:"prod"`
	BaseDir string      `yaml:"base_dir" env:"BASE_DIR"`
	API     APIConfig   `yaml:"api"`
	Redis   RedisConfig `yaml:"redis"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"IG_BASE_URL" env-default:"https://i.instagram.com/api/v1"`
	Timeout time.Duration `yaml:"timeout" env:"IG_TIMEOUT" env-default:"30s"`
}

// RedisConfig: пустой Addr → сессии не сохраняются между запусками.
type RedisConfig struct {
	Addr     string        `yaml:"addr" env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB"`
	Prefix   string        `yaml:"prefix" env:"REDIS_PREFIX" env-default:"ig:session:"`
	TTL      time.Duration `yaml:"ttl" env:"REDIS_SESSION_TTL" env-default:"720h"`
}

// Load reads the config file named by --config or CONFIG_PATH and applies env overrides.
func Load() (*AppConfig, error) {
	cfg, err := LoadPath(fetchConfigPath())
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфига: %w", err)
	}
	return cfg, nil
}

// LoadPath parses the YAML file at path (skipped when path is empty), then
// overlays environment variables. Env wins over the file.
func LoadPath(path string) (*AppConfig, error) {
	var cfg AppConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if cfg.BaseDir == "" {
		return nil, errors.New("base_dir (BASE_DIR) должен быть задан")
	}
	return &cfg, nil
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	if pflag.Lookup("config") == nil {
		pflag.StringVarP(&res, "config", "c", "", "path to config file")
	}
	pflag.Parse()
	res = pflag.Lookup("config").Value.String()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
