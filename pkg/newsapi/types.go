package newsapi

import "net/http"

// Config holds newsapi client configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	Country    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrAPIKeyRequired
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Country == "" {
		c.Country = DefaultCountry
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Article is a simplified headline.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

type newsAPIImpl struct {
	apiKey     string
	baseURL    string
	country    string
	httpClient *http.Client
}

type headlinesResponse struct {
	Status   string    `json:"status"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Articles []Article `json:"articles"`
}
