package wikipedia

import "time"

const (
	DefaultAPIURL   = "https://en.wikipedia.org/w/api.php"
	DefaultPageURL  = "https://en.wikipedia.org/wiki/"
	DefaultMaxLines = 5
	DefaultTimeout  = 10 * time.Second

	DefaultCacheSize = 128
	DefaultCacheTTL  = 30 * time.Minute

	userAgent = "jarvis-assistant/1.0 (desktop assistant)"
)
