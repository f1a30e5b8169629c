package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

func newNewsAPIImpl(cfg Config) *newsAPIImpl {
	return &newsAPIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		country:    cfg.Country,
		httpClient: cfg.HTTPClient,
	}
}

func (n *newsAPIImpl) TopHeadlines(ctx context.Context) ([]Article, error) {
	q := url.Values{}
	q.Set("country", n.country)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/top-headlines?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: failed to create request: %w", err)
	}
	httpReq.Header.Set("X-Api-Key", n.apiKey)

	resp, err := n.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("newsapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("newsapi: API error %d: %s", resp.StatusCode, string(body))
	}

	var out headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("newsapi: failed to decode response: %w", err)
	}
	if out.Status != "" && out.Status != "ok" {
		return nil, fmt.Errorf("newsapi: %s: %s", out.Code, out.Message)
	}

	return out.Articles, nil
}

func (n *newsAPIImpl) TopHeadline(ctx context.Context) (Article, error) {
	articles, err := n.TopHeadlines(ctx)
	if err != nil {
		return Article{}, err
	}
	if len(articles) == 0 {
		return Article{}, ErrNoArticles
	}
	return articles[0], nil
}
