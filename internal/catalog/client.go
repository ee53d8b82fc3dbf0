package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Resource is a single entry of the remote media listing.
type Resource struct {
	PublicID  string `json:"public_id"`
	Version   int64  `json:"version"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	CreatedAt string `json:"created_at"`
	Context   struct {
		Custom struct {
			Caption string `json:"caption"`
		} `json:"custom"`
	} `json:"context"`
}

type listResponse struct {
	Resources []Resource `json:"resources"`
}

// Client fetches the tagged media listing from the remote catalog host.
type Client struct {
	BaseURL    string
	CloudName  string
	Tag        string
	HTTPClient *http.Client
}

func NewClient(baseURL, cloudName, tag string) *Client {
	if baseURL == "" {
		baseURL = "https://res.cloudinary.com"
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		CloudName:  cloudName,
		Tag:        tag,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// List fetches every resource tagged with the client's collection tag.
// The timestamp query parameter defeats intermediary caching.
func (c *Client) List(ctx context.Context) ([]Resource, error) {
	rawURL := fmt.Sprintf("%s/%s/video/list/%s.json?t=%d",
		c.BaseURL, c.CloudName, c.Tag, time.Now().UnixMilli())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "horror-feed/1.0")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: status %d body=%q", resp.StatusCode, string(b[:min(len(b), 200)]))
	}
	var out listResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("catalog: decode error: %w body=%q", err, string(b[:min(len(b), 200)]))
	}
	return out.Resources, nil
}
