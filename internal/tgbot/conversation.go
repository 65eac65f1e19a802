package tgbot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/mstanssa/ultra-high-bot/internal/lang"
)

// chatConversation is the production conversation: it talks to one chat in
// one language for the lifetime of a single request.
type chatConversation struct {
	bot    *Bot
	chatID int64
	lang   string
}

func (c *chatConversation) InvalidLink() {
	c.bot.sendText(c.chatID, lang.T(c.lang, "invalid_link"))
}

func (c *chatConversation) JoinPrompt() {
	c.bot.sendJoinPrompt(c.chatID, c.lang)
}

func (c *chatConversation) Placeholder() (int, error) {
	msg, err := c.bot.api.Send(tgbotapi.NewMessage(c.chatID, lang.T(c.lang, "downloading")))
	if err != nil {
		return 0, err
	}
	return msg.MessageID, nil
}

func (c *chatConversation) Edit(msgID int, key string) {
	c.edit(msgID, lang.T(c.lang, key))
}

func (c *chatConversation) TooBig(msgID int, sizeMB float64) {
	c.edit(msgID, fmt.Sprintf(lang.T(c.lang, "too_big"), sizeMB))
}

func (c *chatConversation) SendVideo(path string) error {
	video := tgbotapi.NewVideo(c.chatID, tgbotapi.FilePath(path))
	video.SupportsStreaming = true
	_, err := c.bot.api.Send(video)
	return err
}

func (c *chatConversation) edit(msgID int, text string) {
	if _, err := c.bot.api.Send(tgbotapi.NewEditMessageText(c.chatID, msgID, text)); err != nil {
		c.bot.log.Warn("edit message",
			zap.Int64("chat_id", c.chatID),
			zap.Int("message_id", msgID),
			zap.Error(err))
	}
}

func (b *Bot) sendJoinPrompt(chatID int64, code string) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(lang.T(code, "btn_join"), b.channelLink()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lang.T(code, "btn_recheck"), "recheck"),
		),
	)
	msg := tgbotapi.NewMessage(chatID, lang.T(code, "join_prompt"))
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		b.log.Warn("send join prompt", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
