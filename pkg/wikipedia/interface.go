package wikipedia

import "context"

// IWikipedia looks up short article summaries.
type IWikipedia interface {
	// Summary searches for query and returns the opening lines of the best
	// matching article, or ErrNotFound.
	Summary(ctx context.Context, query string) (Summary, error)
}

// New creates a Wikipedia client.
func New(cfg Config) (IWikipedia, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newWikipediaImpl(cfg), nil
}
