package wikipedia

import "errors"

var (
	ErrNotFound   = errors.New("wikipedia: no results found")
	ErrEmptyQuery = errors.New("wikipedia: empty query")
)
