package telegram

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"diff-visualizer/internal/domain/entity"
	"diff-visualizer/internal/domain/port"
)

const (
	msgChanged   = "🔍 Различия: %d пикс. на изображении %s"
	msgUnchanged = "✅ Различий выше порога нет, изображение %s"
)

// Publisher отправляет изображение различий в чат Telegram
type Publisher struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewPublisher создаёт отправителя для указанного чата
func NewPublisher(token string, chatID int64) (*Publisher, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Publisher{
		api:    api,
		chatID: chatID,
	}, nil
}

// Publish отправляет картинку с подписью
func (p *Publisher) Publish(ctx context.Context, result *entity.DiffResult) error {
	_ = ctx

	photo := tgbotapi.NewPhoto(p.chatID, tgbotapi.FileBytes{
		Name:  fileName(result),
		Bytes: result.Image,
	})
	photo.Caption = caption(result)

	if _, err := p.api.Send(photo); err != nil {
		return fmt.Errorf("send photo: %w", err)
	}
	return nil
}

// caption формирует подпись к фото
func caption(result *entity.DiffResult) string {
	if result.HasChanges() {
		return fmt.Sprintf(msgChanged, result.Changed, result.Shape())
	}
	return fmt.Sprintf(msgUnchanged, result.Shape())
}

func fileName(result *entity.DiffResult) string {
	if result.Name == "" {
		return "diff.jpg"
	}
	return filepath.Base(result.Name)
}

var _ port.ResultPublisher = (*Publisher)(nil)
