package newsapi

import "context"

// INewsAPI fetches headlines from newsapi.org.
type INewsAPI interface {
	// TopHeadlines returns the current top headlines for the configured country.
	TopHeadlines(ctx context.Context) ([]Article, error)

	// TopHeadline returns the first headline or ErrNoArticles.
	TopHeadline(ctx context.Context) (Article, error)
}

// New creates a newsapi client.
func New(cfg Config) (INewsAPI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newNewsAPIImpl(cfg), nil
}
