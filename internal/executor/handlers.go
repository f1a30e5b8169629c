package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jarvis-assistant/pkg/newsapi"
	"jarvis-assistant/pkg/wikipedia"
)

type newsHandler struct {
	news newsapi.INewsAPI
}

// NewsHandler answers fetch_news with the top headline.
func NewsHandler(news newsapi.INewsAPI) Handler {
	return newsHandler{news: news}
}

func (h newsHandler) Prefix() string { return ActionFetchNews }

func (h newsHandler) Handle(ctx context.Context, _ string) (string, error) {
	if h.news == nil {
		return "", fmt.Errorf("news: %w", ErrNotConfigured)
	}
	article, err := h.news.TopHeadline(ctx)
	if errors.Is(err, newsapi.ErrNoArticles) {
		return "News: " + MsgNoNews, nil
	}
	if err != nil {
		return "", err
	}
	return "News: " + article.Title, nil
}

type wikipediaHandler struct {
	wiki wikipedia.IWikipedia
}

// WikipediaHandler answers search_wikipedia:<query> with the article summary.
func WikipediaHandler(wiki wikipedia.IWikipedia) Handler {
	return wikipediaHandler{wiki: wiki}
}

func (h wikipediaHandler) Prefix() string { return ActionSearchWikipedia }

func (h wikipediaHandler) Handle(ctx context.Context, action string) (string, error) {
	if h.wiki == nil {
		return "", fmt.Errorf("wikipedia: %w", ErrNotConfigured)
	}
	query := strings.TrimSpace(strings.TrimPrefix(action, ActionSearchWikipedia))
	summary, err := h.wiki.Summary(ctx, query)
	if errors.Is(err, wikipedia.ErrNotFound) {
		return MsgNoWikipedia, nil
	}
	if err != nil {
		return "", err
	}
	if summary.Content == "" {
		return MsgNoWikipedia, nil
	}
	return summary.Content, nil
}
