package tgbot

import (
	"context"
	"os"
	"strings"

	"github.com/mstanssa/ultra-high-bot/internal/yt"
	"go.uber.org/zap"
)

// Bots cannot upload files above ~50MB; 48 leaves headroom for the
// multipart envelope.
const maxUploadMB = 48.0

type gate interface {
	IsSubscribed(userID int64) bool
}

type fetcher interface {
	Fetch(ctx context.Context, url string) yt.Result
}

// conversation is the per-request view of the chat: one placeholder message
// that gets edited in place as the request advances, plus the final upload.
type conversation interface {
	InvalidLink()
	JoinPrompt()
	Placeholder() (int, error)
	Edit(msgID int, key string)
	TooBig(msgID int, sizeMB float64)
	SendVideo(path string) error
}

// runDownload drives one request through validate → gate → download → size
// check → upload. The downloaded file is removed on every exit path past the
// download phase.
func runDownload(ctx context.Context, userID int64, text string, g gate, f fetcher, conv conversation, log *zap.Logger) {
	if !yt.HasURLScheme(text) {
		conv.InvalidLink()
		return
	}

	if !g.IsSubscribed(userID) {
		conv.JoinPrompt()
		return
	}

	msgID, err := conv.Placeholder()
	if err != nil {
		log.Warn("send placeholder", zap.Error(err))
		return
	}

	url := strings.TrimSpace(text)
	res := f.Fetch(ctx, url)
	if res.Empty() {
		conv.Edit(msgID, "failed")
		return
	}

	defer func() {
		if err := os.Remove(res.Path); err != nil && !os.IsNotExist(err) {
			log.Warn("remove download", zap.String("file", res.Path), zap.Error(err))
		}
	}()

	if res.SizeMB() > maxUploadMB {
		log.Info("download over upload limit",
			zap.String("url", url),
			zap.Float64("size_mb", res.SizeMB()))
		conv.TooBig(msgID, res.SizeMB())
		return
	}

	conv.Edit(msgID, "uploading")
	if err := conv.SendVideo(res.Path); err != nil {
		log.Warn("send video", zap.String("url", url), zap.Error(err))
		conv.Edit(msgID, "failed")
		return
	}

	conv.Edit(msgID, "done")
}
