package tgbot

import (
	"testing"

	"github.com/mstanssa/ultra-high-bot/internal/lang"
)

func TestClassifyCommands(t *testing.T) {
	cases := map[string]Command{
		"/start":          CmdStart,
		"/start ref123":   CmdStart,
		"/help":           CmdHelp,
		"/logs":           CmdLogs,
		"/lang":           CmdLanguageMenu,
		"/unknown":        CmdNone,
		"":                CmdNone,
		"   ":             CmdNone,
		"hello":           CmdURLCandidate,
		"https://a.b/v":   CmdURLCandidate,
		"example.com/v":   CmdURLCandidate,
	}
	for in, want := range cases {
		if got := Classify(in); got != want {
			t.Errorf("Classify(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestClassifyMenuButtonsAllLanguages(t *testing.T) {
	for _, code := range lang.Supported {
		if got := Classify(lang.T(code, "btn_language")); got != CmdLanguageMenu {
			t.Errorf("[%s] language button = %v", code, got)
		}
		if got := Classify(lang.T(code, "btn_vip")); got != CmdVipInfo {
			t.Errorf("[%s] vip button = %v", code, got)
		}
		if got := Classify(lang.T(code, "btn_channel")); got != CmdChannelInfo {
			t.Errorf("[%s] channel button = %v", code, got)
		}
		if got := Classify(lang.T(code, "btn_download")); got != CmdDownloadPrompt {
			t.Errorf("[%s] download button = %v", code, got)
		}
	}
}
