package tgbot

import (
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// sendLogs ships the current log file to the admin. Anyone else gets
// silence, same as an unknown command.
func (b *Bot) sendLogs(chatID, userID int64) {
	if b.cfg.AdminID == 0 || userID != b.cfg.AdminID {
		b.log.Warn("logs requested by non-admin", zap.Int64("user_id", userID))
		return
	}

	info, err := os.Stat(b.cfg.LogFile)
	if err != nil || info.IsDir() || info.Size() == 0 {
		b.sendText(chatID, "Log file is not available.")
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(b.cfg.LogFile))
	if _, err := b.api.Send(doc); err != nil {
		b.log.Warn("send log file", zap.Error(err))
	}
}
