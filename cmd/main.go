package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"diff-visualizer/config"
	telegram "diff-visualizer/internal/api"
	app "diff-visualizer/internal/application"
	"diff-visualizer/internal/container"
	"diff-visualizer/internal/domain/entity"
	"diff-visualizer/internal/domain/port"
	"diff-visualizer/internal/infrastructure/storage"
	"diff-visualizer/internal/infrastructure/vision"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s <image-a> <image-b>", filepath.Base(os.Args[0]))
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Отправка в Telegram включается только при заданных токене и чате
	var publisher port.ResultPublisher
	if cfg.PublishEnabled() {
		p, err := telegram.NewPublisher(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("Failed to create publisher: %v", err)
		}
		publisher = p
	}

	renderer := vision.NewGoCVRenderer(filepath.Ext(cfg.OutputPath))
	appContainer := container.New(storage.NewFileImageStore(), renderer, publisher)

	result, err := appContainer.DiffService.Run(context.Background(), app.DiffRequest{
		BasePath:    os.Args[1],
		CurrentPath: os.Args[2],
		OutputPath:  cfg.OutputPath,
		Annotations: entity.DefaultAnnotations(),
	})
	if err != nil {
		log.Fatalf("Diff failed: %v", err)
	}

	fmt.Println(result.StatusLine())
	log.Printf("Diff image saved to %s (%d changed pixels)", result.Name, result.Changed)
}
