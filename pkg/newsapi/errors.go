package newsapi

import "errors"

var (
	ErrAPIKeyRequired = errors.New("newsapi: APIKey is required")
	ErrNoArticles     = errors.New("newsapi: no articles")
)
