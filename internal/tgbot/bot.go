package tgbot

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/mstanssa/ultra-high-bot/internal/config"
	"github.com/mstanssa/ultra-high-bot/internal/database"
	"github.com/mstanssa/ultra-high-bot/internal/lang"
	"github.com/mstanssa/ultra-high-bot/internal/yt"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	db     *sql.DB
	dl     *yt.Downloader
	gate   gate
	cfg    *config.Config
	log    *zap.Logger
	queues *chatQueues
}

func New(api *tgbotapi.BotAPI, db *sql.DB, dl *yt.Downloader, cfg *config.Config, log *zap.Logger) *Bot {
	b := &Bot{
		api:  api,
		db:   db,
		dl:   dl,
		gate: &channelGate{api: api, channel: cfg.Channel, log: log},
		cfg:  cfg,
		log:  log,
	}
	b.queues = newChatQueues(b.handleUpdate, log)
	return b
}

// Run consumes the long-poll update stream until the channel closes. Updates
// for the same chat are handled strictly in arrival order; different chats
// run concurrently, with download concurrency bounded further down by the
// extraction worker pool.
func (b *Bot) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	b.log.Info("bot started", zap.String("username", b.api.Self.UserName))

	for update := range updates {
		b.queues.enqueue(updateChatID(update), update)
	}
}

func updateChatID(u tgbotapi.Update) int64 {
	switch {
	case u.Message != nil && u.Message.Chat != nil:
		return u.Message.Chat.ID
	case u.CallbackQuery != nil && u.CallbackQuery.Message != nil:
		return u.CallbackQuery.Message.Chat.ID
	}
	return 0
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
		return
	}

	msg := update.Message
	if msg == nil || msg.From == nil || msg.Text == "" {
		return
	}

	userID := msg.From.ID
	chatID := msg.Chat.ID
	code := b.userLang(userID, msg.From.LanguageCode)

	switch Classify(msg.Text) {
	case CmdStart:
		b.sendStart(chatID, code)
	case CmdHelp:
		b.sendText(chatID, lang.T(code, "help"))
	case CmdLogs:
		b.sendLogs(chatID, userID)
	case CmdLanguageMenu:
		b.sendLanguageMenu(chatID, code)
	case CmdVipInfo:
		b.sendText(chatID, lang.T(code, "vip_info"))
	case CmdChannelInfo:
		b.sendText(chatID, fmt.Sprintf(lang.T(code, "channel_info"), b.channelLink()))
	case CmdDownloadPrompt:
		b.sendText(chatID, lang.T(code, "download_tip"))
	case CmdURLCandidate:
		conv := &chatConversation{bot: b, chatID: chatID, lang: code}
		runDownload(context.Background(), userID, msg.Text, b.gate, b.dl, conv, b.log)
	}
}

// userLang resolves the user's display language: stored preference first,
// then the locale Telegram reports, then the configured default. The first
// resolution is written back so later lookups are stable even if the client
// locale changes.
func (b *Bot) userLang(userID int64, locale string) string {
	code, ok, err := database.GetLanguage(b.db, userID)
	if err != nil {
		b.log.Warn("language lookup", zap.Int64("user_id", userID), zap.Error(err))
	}
	if ok && lang.IsSupported(code) {
		return code
	}

	code = lang.Normalize(locale)
	if code == "" {
		code = b.cfg.DefaultLang
	}
	if err := database.SetLanguage(b.db, userID, code); err != nil {
		b.log.Warn("cache language", zap.Int64("user_id", userID), zap.Error(err))
	}
	return code
}

func (b *Bot) channelLink() string {
	return "https://t.me/" + strings.TrimPrefix(b.cfg.Channel, "@")
}

func (b *Bot) sendText(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.Warn("send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) sendStart(chatID int64, code string) {
	msg := tgbotapi.NewMessage(chatID, lang.T(code, "start"))
	msg.ReplyMarkup = mainKeyboard(code)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Warn("send start", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func mainKeyboard(code string) tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(lang.T(code, "btn_download")),
			tgbotapi.NewKeyboardButton(lang.T(code, "btn_language")),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(lang.T(code, "btn_vip")),
			tgbotapi.NewKeyboardButton(lang.T(code, "btn_channel")),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}
