package newsapi

import "time"

const (
	DefaultBaseURL = "https://newsapi.org/v2"
	DefaultCountry = "us"
	DefaultTimeout = 10 * time.Second
)
