// Package swapi reads the film catalogue from the Star Wars API.
package swapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
)

// DefaultBaseURL is the public instance; it must end with a slash.
const DefaultBaseURL = "https://www.swapi.tech/api/"

var ErrUpstream = errors.New("swapi: upstream request failed")

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type filmsResponse struct {
	Result []struct {
		Properties filmProperties `json:"properties"`
	} `json:"result"`
}

type filmProperties struct {
	Title        string `json:"title"`
	Director     string `json:"director"`
	OpeningCrawl string `json:"opening_crawl"`
	ReleaseDate  string `json:"release_date"`
}

// Films fetches every film. The release year is the leading four characters
// of the upstream release date.
func (c *Client) Films(ctx context.Context) ([]domain.Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"films", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var body filmsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrUpstream, err)
	}

	films := make([]domain.Movie, 0, len(body.Result))
	for _, r := range body.Result {
		p := r.Properties
		if len(p.ReleaseDate) < 4 {
			return nil, fmt.Errorf("%w: film %q has release date %q", ErrUpstream, p.Title, p.ReleaseDate)
		}
		films = append(films, domain.Movie{
			Title:       p.Title,
			Director:    p.Director,
			ReleaseYear: p.ReleaseDate[:4],
			Description: p.OpeningCrawl,
		})
	}
	return films, nil
}
