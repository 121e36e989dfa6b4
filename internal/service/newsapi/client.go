// Package newsapi implements the news source against the NewsAPI.org
// everything endpoint. Headlines carry their polarity so the feature builder
// stays a pure function of the record.
package newsapi

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	drepo "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/repository"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/service/sentiment"
	xhttp "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/http"
)

const defaultBaseURL = "https://newsapi.org"

// Client implements repository.NewsSource backed by NewsAPI.
type Client struct {
	apiKey       string
	baseURL      string
	maxHeadlines int
	client       *xhttp.Client
	analyzer     *sentiment.Analyzer
}

// New creates a NewsAPI client. maxHeadlines bounds how many recent articles
// are kept per company.
func New(apiKey, baseURL string, maxHeadlines int, timeout time.Duration, analyzer *sentiment.Analyzer) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if maxHeadlines <= 0 {
		maxHeadlines = 10
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:       apiKey,
		baseURL:      baseURL,
		maxHeadlines: maxHeadlines,
		client:       xhttp.NewClient(xhttp.WithTimeout(timeout)),
		analyzer:     analyzer,
	}
}

// Available reports whether an API key is configured.
func (c *Client) Available() bool { return c.apiKey != "" }

type article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

type everythingResp struct {
	Status   string    `json:"status"`
	Message  string    `json:"message"`
	Articles []article `json:"articles"`
}

// Headlines fetches the most recent headlines mentioning the company and
// scores each one.
func (c *Client) Headlines(ctx context.Context, ticker, companyName string) ([]models.Headline, error) {
	if !c.Available() {
		return nil, fmt.Errorf("newsapi: no api key: %w", models.ErrDataUnavailable)
	}

	q := ticker
	if companyName != "" {
		q = fmt.Sprintf("%q OR %s", companyName, ticker)
	}

	var resp everythingResp
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/v2/everything",
		Headers: map[string]string{
			"X-Api-Key": c.apiKey,
		},
		QueryParams: map[string][]string{
			"q":        {q},
			"language": {"en"},
			"sortBy":   {"publishedAt"},
			"pageSize": {strconv.Itoa(c.maxHeadlines)},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("newsapi everything %s: %v: %w", ticker, err, models.ErrDataUnavailable)
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %s: %s: %w", resp.Status, resp.Message, models.ErrDataUnavailable)
	}

	out := make([]models.Headline, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title == "" {
			continue
		}
		published, _ := time.Parse(time.RFC3339, a.PublishedAt)
		out = append(out, models.Headline{
			Title:     a.Title,
			Published: published,
			URL:       a.URL,
			Polarity:  c.analyzer.Polarity(a.Title + " " + a.Description),
		})
		if len(out) == c.maxHeadlines {
			break
		}
	}
	return out, nil
}

var _ drepo.NewsSource = (*Client)(nil)
