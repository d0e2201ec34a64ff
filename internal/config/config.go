// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	APIBaseURL     string `yaml:"api_base_url" env:"DEVCONNECT_API_URL"`
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Watcher tech-stack keywords for new-project alerts
	Keywords []string `yaml:"keywords"`
	//Poll intervals (seconds)
	PollIntervalSeconds        int `yaml:"poll_interval_seconds"`
	ProjectPollIntervalSeconds int `yaml:"project_poll_interval_seconds"`
	//Paths
	SessionPath string `yaml:"session_path"`
	CachePath   string `yaml:"cache_path"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if baseURL := os.Getenv("DEVCONNECT_API_URL"); baseURL != "" {
		cfg.APIBaseURL = baseURL
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://127.0.0.1:8000/api"
	}

	if cfg.PollIntervalSeconds <= 0 {
		cfg.PollIntervalSeconds = 3
	}

	if cfg.ProjectPollIntervalSeconds <= 0 {
		cfg.ProjectPollIntervalSeconds = 300
	}

	if cfg.SessionPath == "" {
		cfg.SessionPath = ".devconnect"
	}

	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}

	return cfg
}

// RequireTelegram validates the fields only the watcher needs.
func (c *Config) RequireTelegram() {
	if c.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	if c.TelegramChatID == 0 {
		log.Fatal("TELEGRAM_CHAT_ID is required")
	}
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

func (c *Config) ProjectPollInterval() time.Duration {
	return time.Duration(c.ProjectPollIntervalSeconds) * time.Second
}
