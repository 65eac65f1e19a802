package tgbot

import (
	"strings"

	"github.com/mstanssa/ultra-high-bot/internal/lang"
)

// Command is the closed set of things an inbound text can mean. Anything
// that is not a slash command or a known menu button is a URL candidate and
// goes through the download pipeline, which applies its own validation.
type Command int

const (
	CmdURLCandidate Command = iota
	CmdStart
	CmdHelp
	CmdLogs
	CmdLanguageMenu
	CmdVipInfo
	CmdChannelInfo
	CmdDownloadPrompt
	CmdNone
)

// Classify maps inbound text to a Command. Menu button labels are matched
// across every supported language, since the pressed button may have been
// rendered before the user switched languages.
func Classify(text string) Command {
	t := strings.TrimSpace(text)
	if t == "" {
		return CmdNone
	}

	if strings.HasPrefix(t, "/") {
		switch strings.Fields(t)[0] {
		case "/start":
			return CmdStart
		case "/help":
			return CmdHelp
		case "/logs":
			return CmdLogs
		case "/lang":
			return CmdLanguageMenu
		default:
			return CmdNone
		}
	}

	for _, code := range lang.Supported {
		switch t {
		case lang.T(code, "btn_language"):
			return CmdLanguageMenu
		case lang.T(code, "btn_vip"):
			return CmdVipInfo
		case lang.T(code, "btn_channel"):
			return CmdChannelInfo
		case lang.T(code, "btn_download"):
			return CmdDownloadPrompt
		}
	}

	return CmdURLCandidate
}
