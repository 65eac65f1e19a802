package tgbot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/mstanssa/ultra-high-bot/internal/database"
	"github.com/mstanssa/ultra-high-bot/internal/lang"
)

func (b *Bot) sendLanguageMenu(chatID int64, code string) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, c := range lang.Supported {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lang.Name(c), "lang:"+c),
		))
	}

	msg := tgbotapi.NewMessage(chatID, lang.T(code, "choose_lang"))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Warn("send language menu", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.From == nil || cq.Message == nil {
		return
	}
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID

	switch {
	case strings.HasPrefix(cq.Data, "lang:"):
		code := strings.TrimPrefix(cq.Data, "lang:")
		if !lang.IsSupported(code) {
			b.log.Warn("unknown language callback", zap.String("data", cq.Data))
			return
		}
		if err := database.SetLanguage(b.db, userID, code); err != nil {
			b.log.Error("save language", zap.Int64("user_id", userID), zap.Error(err))
			return
		}
		edit := tgbotapi.NewEditMessageText(chatID, cq.Message.MessageID, lang.T(code, "lang_saved"))
		if _, err := b.api.Send(edit); err != nil {
			b.log.Warn("edit language menu", zap.Error(err))
		}
		b.answerCallback(cq.ID, "")
		// Refresh the reply keyboard so button labels match the new language.
		b.sendStart(chatID, code)

	case cq.Data == "recheck":
		code := b.userLang(userID, cq.From.LanguageCode)
		if b.gate.IsSubscribed(userID) {
			b.answerCallback(cq.ID, lang.T(code, "subscribed_ok"))
			edit := tgbotapi.NewEditMessageText(chatID, cq.Message.MessageID, lang.T(code, "subscribed_ok"))
			if _, err := b.api.Send(edit); err != nil {
				b.log.Warn("edit join prompt", zap.Error(err))
			}
		} else {
			b.answerCallback(cq.ID, lang.T(code, "join_prompt"))
		}

	default:
		b.log.Warn("unknown callback", zap.String("data", cq.Data))
	}
}

func (b *Bot) answerCallback(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		b.log.Warn("answer callback", zap.Error(err))
	}
}
