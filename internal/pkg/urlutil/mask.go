// Package urlutil содержит помощники для безопасного логирования URL.
package urlutil

import "net/url"

// MaskURL оставляет от URL только scheme и host: path и query
// Pushgateway/OTLP адресов могут содержать токены.
//
//	MaskURL("https://push.example.com/metrics/job/x?token=1") // "https://push.example.com/***"
func MaskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "***invalid-url***"
	}
	return u.Scheme + "://" + u.Host + "/***"
}
