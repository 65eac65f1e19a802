package lang

import "strings"

// Supported language codes, in menu order.
var Supported = []string{"en", "ar", "ru"}

var names = map[string]string{
	"en": "English 🇬🇧",
	"ar": "العربية 🇸🇦",
	"ru": "Русский 🇷🇺",
}

// Name returns the self-described display name for a language code.
func Name(code string) string {
	if n, ok := names[code]; ok {
		return n
	}
	return code
}

// IsSupported reports whether code is one of the bot's languages.
func IsSupported(code string) bool {
	_, ok := names[code]
	return ok
}

// Normalize maps a transport-reported locale ("en-US", "ru", "AR") to a
// supported code, or "" when none matches.
func Normalize(locale string) string {
	code := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	if IsSupported(code) {
		return code
	}
	return ""
}

// T looks up a text key for a language, falling back to English when the
// language or key is missing.
func T(code, key string) string {
	if table, ok := texts[code]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	return texts["en"][key]
}
