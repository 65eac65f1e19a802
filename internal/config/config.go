package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the bot needs at runtime. It is built once in main
// and passed down explicitly; no other package touches viper or the env.
type Config struct {
	BotToken        string
	Channel         string
	AdminID         int64
	DBPath          string
	DownloadDir     string
	DefaultLang     string
	WorkerPoolSize  int
	DownloadTimeout time.Duration
	YtdlpFormat     string
	LogFile         string
}

// Load reads .env (if present), then config.yaml (if present), then applies
// defaults. The bot token comes from the environment only and is required.
func Load() (*Config, error) {
	// A missing .env is fine in deployments that set real env vars.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("channel", "@UltraHighTube")
	viper.SetDefault("db_path", "prefs.db")
	viper.SetDefault("download_dir", "downloads")
	viper.SetDefault("default_lang", "ar")
	viper.SetDefault("worker_pool_size", 4)
	viper.SetDefault("download_timeout", "10m")
	viper.SetDefault("yt_dlp_format", "mp4[height<=720]/mp4/best")
	viper.SetDefault("log_file", "bot.log")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	token := os.Getenv("TG_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TG_BOT_TOKEN is not set")
	}

	cfg := &Config{
		BotToken:        token,
		Channel:         viper.GetString("channel"),
		AdminID:         viper.GetInt64("admin_id"),
		DBPath:          viper.GetString("db_path"),
		DownloadDir:     viper.GetString("download_dir"),
		DefaultLang:     viper.GetString("default_lang"),
		WorkerPoolSize:  viper.GetInt("worker_pool_size"),
		DownloadTimeout: viper.GetDuration("download_timeout"),
		YtdlpFormat:     viper.GetString("yt_dlp_format"),
		LogFile:         viper.GetString("log_file"),
	}

	if cfg.WorkerPoolSize < 1 {
		cfg.WorkerPoolSize = 1
	}
	if cfg.DownloadTimeout <= 0 {
		cfg.DownloadTimeout = 10 * time.Minute
	}

	return cfg, nil
}
