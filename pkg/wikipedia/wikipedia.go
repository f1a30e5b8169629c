package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

func newWikipediaImpl(cfg Config) *wikipediaImpl {
	return &wikipediaImpl{
		apiURL:     cfg.APIURL,
		pageURL:    cfg.PageURL,
		maxLines:   cfg.MaxLines,
		httpClient: cfg.HTTPClient,
		cache:      expirable.NewLRU[string, Summary](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}

func (w *wikipediaImpl) Summary(ctx context.Context, query string) (Summary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Summary{}, ErrEmptyQuery
	}

	cacheKey := strings.ToLower(query)
	if s, ok := w.cache.Get(cacheKey); ok {
		return s, nil
	}

	title, err := w.search(ctx, query)
	if err != nil {
		return Summary{}, err
	}

	content, err := w.pageText(ctx, title)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{Title: title, Content: content}
	w.cache.Add(cacheKey, s)
	return s, nil
}

// search returns the title of the first search hit.
func (w *wikipediaImpl) search(ctx context.Context, query string) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("list", "search")
	q.Set("srsearch", query)
	q.Set("format", "json")

	body, err := w.get(ctx, w.apiURL+"?"+q.Encode())
	if err != nil {
		return "", err
	}
	defer body.Close()

	var out searchResponse
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		return "", fmt.Errorf("wikipedia: failed to decode search response: %w", err)
	}
	if len(out.Query.Search) == 0 {
		return "", ErrNotFound
	}
	return out.Query.Search[0].Title, nil
}

// pageText returns the first maxLines lines of the page's paragraph text.
func (w *wikipediaImpl) pageText(ctx context.Context, title string) (string, error) {
	pageURL := w.pageURL + url.PathEscape(strings.ReplaceAll(title, " ", "_"))

	body, err := w.get(ctx, pageURL)
	if err != nil {
		return "", err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", fmt.Errorf("wikipedia: failed to parse page: %w", err)
	}

	lines := strings.Split(doc.Find("p").Text(), "\n")
	if len(lines) > w.maxLines {
		lines = lines[:w.maxLines]
	}

	content := strings.TrimSpace(strings.Join(lines, "\n"))
	if content == "" {
		return "", ErrNotFound
	}
	return content, nil
}

func (w *wikipediaImpl) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("wikipedia: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia: request failed: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("wikipedia: API error %d: %s", resp.StatusCode, string(raw))
	}
	return resp.Body, nil
}
