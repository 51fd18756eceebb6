package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultOutputPath файл результата, если DIFFVIS_OUTPUT не задан.
const DefaultOutputPath = "xx.jpg"

type Config struct {
	OutputPath     string
	TelegramToken  string
	TelegramChatID int64
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		OutputPath:    os.Getenv("DIFFVIS_OUTPUT"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}

	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	return cfg, nil
}

// PublishEnabled сообщает, настроена ли отправка результата в Telegram.
func (c *Config) PublishEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
