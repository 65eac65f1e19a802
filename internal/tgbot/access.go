package tgbot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// channelGate answers whether a user may use the download feature by asking
// Telegram for their membership status in the announcement channel.
type channelGate struct {
	api     *tgbotapi.BotAPI
	channel string
	log     *zap.Logger
}

// IsSubscribed is fail-closed: a transport error during the check denies
// access the same way "left" does. The user only loses one tap on the
// re-check button, never a free pass.
func (g *channelGate) IsSubscribed(userID int64) bool {
	member, err := g.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: g.channel,
			UserID:             userID,
		},
	})
	if err != nil {
		g.log.Warn("membership check failed, denying",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return false
	}

	switch member.Status {
	case "left", "kicked":
		return false
	}
	return true
}
