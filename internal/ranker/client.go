// Package ranker asks an external scoring service for a personalized
// re-ordering of the catalog. Ranking is a pure enhancement: every failure
// leaves the existing order untouched.
package ranker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/example/horror-feed/internal/catalog"
	"github.com/example/horror-feed/internal/interactions"
)

// ErrEmptyOrder marks a well-formed response that named no ids.
var ErrEmptyOrder = errors.New("ranker: empty order")

// Candidate is one catalog entry offered for re-ordering.
type Candidate struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Request is the scoring request body: what the user likes plus the full
// candidate set. The service is asked to order preferred categories first,
// then topically similar titles.
type Request struct {
	PreferredCategories []string    `json:"preferred_categories"`
	LikedTitles         []string    `json:"liked_titles"`
	Candidates          []Candidate `json:"candidates"`
}

// Client calls the external scoring service over HTTP.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

func NewClient(rankURL string) *Client {
	return &Client{
		URL:        rankURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Rank requests a full re-ordering of the catalog ids. The response must be
// a JSON array of ids; anything else is an error. One attempt, no retry.
func (c *Client) Rank(ctx context.Context, videos []catalog.Video, rec interactions.Record) ([]string, error) {
	body, err := json.Marshal(BuildRequest(videos, rec))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ranker: status %d body=%q", resp.StatusCode, string(b[:min(len(b), 200)]))
	}

	var order []string
	if err := json.Unmarshal(b, &order); err != nil {
		return nil, fmt.Errorf("ranker: decode error: %w body=%q", err, string(b[:min(len(b), 200)]))
	}
	if len(order) == 0 {
		return nil, ErrEmptyOrder
	}
	return order, nil
}

// BuildRequest assembles the scoring request from the catalog and the
// current interaction state. Categories keep first-seen order.
func BuildRequest(videos []catalog.Video, rec interactions.Record) Request {
	var likedTitles []string
	var categories []string
	seenCat := make(map[string]struct{})

	for _, v := range videos {
		if !rec.Liked(v.ID) {
			continue
		}
		likedTitles = append(likedTitles, v.Title)
		if _, ok := seenCat[v.Category]; !ok {
			seenCat[v.Category] = struct{}{}
			categories = append(categories, v.Category)
		}
	}

	candidates := make([]Candidate, 0, len(videos))
	for _, v := range videos {
		candidates = append(candidates, Candidate{ID: v.ID, Title: v.Title, Category: v.Category})
	}

	return Request{
		PreferredCategories: categories,
		LikedTitles:         likedTitles,
		Candidates:          candidates,
	}
}
