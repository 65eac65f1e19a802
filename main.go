package main

import (
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/mstanssa/ultra-high-bot/internal/config"
	"github.com/mstanssa/ultra-high-bot/internal/database"
	"github.com/mstanssa/ultra-high-bot/internal/logging"
	"github.com/mstanssa/ultra-high-bot/internal/tgbot"
	"github.com/mstanssa/ultra-high-bot/internal/yt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogFile)
	defer logger.Sync()

	db, err := database.InitDB(cfg.DBPath)
	if err != nil {
		logger.Fatal("open preference store", zap.Error(err))
	}
	defer db.Close()

	// The first getMe can hit a transient network error on boot; retry it.
	// A bad token fails every attempt and is fatal, as it should be.
	var api *tgbotapi.BotAPI
	err = backoff.Retry(func() error {
		api, err = tgbotapi.NewBotAPI(cfg.BotToken)
		return err
	}, backoff.WithMaxRetries(backoff.NewConstantBackOff(5*time.Second), 3))
	if err != nil {
		logger.Fatal("connect to Telegram", zap.Error(err))
	}

	dl, err := yt.NewDownloader(cfg.YtdlpFormat, cfg.DownloadDir, cfg.WorkerPoolSize, cfg.DownloadTimeout, logger)
	if err != nil {
		logger.Fatal("init downloader", zap.Error(err))
	}
	defer dl.Close()

	tgbot.New(api, db, dl, cfg, logger).Run()
}
