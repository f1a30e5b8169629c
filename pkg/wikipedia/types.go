package wikipedia

import (
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Config holds Wikipedia client configuration.
type Config struct {
	APIURL     string
	PageURL    string
	MaxLines   int
	CacheSize  int
	CacheTTL   time.Duration
	HTTPClient *http.Client
}

// Validate fills defaults.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.PageURL == "" {
		c.PageURL = DefaultPageURL
	}
	if c.MaxLines <= 0 {
		c.MaxLines = DefaultMaxLines
	}
	if c.CacheSize <= 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = DefaultCacheTTL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Summary is the extracted article text.
type Summary struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type wikipediaImpl struct {
	apiURL     string
	pageURL    string
	maxLines   int
	httpClient *http.Client
	cache      *expirable.LRU[string, Summary]
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}
