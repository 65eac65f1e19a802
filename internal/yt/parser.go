package yt

import (
	"net/url"
	"strings"
)

// HasURLScheme reports whether the trimmed text looks like a downloadable
// link. Only absolute http(s) URLs are accepted.
func HasURLScheme(text string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, "http://") || strings.HasPrefix(t, "https://")
}

var platforms = map[string]string{
	"youtube.com":   "YouTube",
	"youtu.be":      "YouTube",
	"tiktok.com":    "TikTok",
	"instagram.com": "Instagram",
	"twitter.com":   "Twitter",
	"x.com":         "Twitter",
	"facebook.com":  "Facebook",
	"fb.watch":      "Facebook",
}

// Platform names the hosting site for a link, or "Unknown". Used only for
// logging; yt-dlp does its own site dispatch.
func Platform(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "Unknown"
	}
	host := strings.ToLower(u.Host)
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")
	host = strings.TrimPrefix(host, "vm.")
	for domain, name := range platforms {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return name
		}
	}
	return "Unknown"
}
