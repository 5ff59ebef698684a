package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"browserkit/internal/browser"
	"browserkit/internal/cli"
	"browserkit/internal/config"
	"browserkit/internal/database"
	"browserkit/internal/logger"
	"browserkit/internal/migrations"
	"browserkit/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := migrations.Run(cfg, log); err != nil {
		log.Fatal("Ошибка миграций", zap.Error(err))
	}

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal("Ошибка подключения к БД", zap.Error(err))
	}
	defer db.Close(log)

	repo := database.NewJournalRepository(db.DB)

	br := browser.New(browser.Config{
		Headless:     cfg.Browser.Headless,
		BrowsersPath: cfg.Browser.BrowsersPath,
		Timeout:      cfg.Browser.Timeout,
	}, log.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, log, repo)
	go func() {
		if err := srv.Run(ctx); err != nil {
			log.Error("Ошибка HTTP сервера", zap.Error(err))
		}
	}()

	console := cli.New(repo, log, br, cfg.Browser.Headless)
	console.Run(ctx)
}
