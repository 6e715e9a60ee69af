package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"movie-review-api/pkg/utils"

	"go.uber.org/zap"
)

// ErrNotFound covers both "the catalog has no such movie" and "the catalog is
// unreachable"; callers cannot tell the two apart.
var ErrNotFound = errors.New("movie not found in catalog")

// Movie is the catalog metadata mapped into local shape.
type Movie struct {
	Title       string
	PosterURL   string
	Description string
	Year        string
}

// Client fetches movie metadata from the external catalog. Every call is a
// fresh network round trip; there is no caching or retry, so batching can be
// added here later without touching handler logic.
type Client interface {
	FetchMovie(ctx context.Context, id int64) (*Movie, error)
}

type client struct {
	httpClient   *http.Client
	baseURL      string
	imageBaseURL string
	apiKey       string
	log          *zap.Logger
}

func NewClient(config utils.CatalogConfig, log *zap.Logger) Client {
	return &client{
		httpClient:   &http.Client{},
		baseURL:      config.BaseURL,
		imageBaseURL: config.ImageBaseURL,
		apiKey:       config.APIKey,
		log:          log.With(zap.String("client", "catalog")),
	}
}

type moviePayload struct {
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path"`
	Overview    string `json:"overview"`
	ReleaseDate string `json:"release_date"`
}

func (c *client) FetchMovie(ctx context.Context, id int64) (*Movie, error) {
	endpoint := fmt.Sprintf("%s/movie/%d?api_key=%s&language=en-US",
		c.baseURL, id, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.log.Warn("Failed to build catalog request",
			zap.Int64("movie_id", id),
			zap.Error(err),
		)
		return nil, ErrNotFound
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("Catalog request failed",
			zap.Int64("movie_id", id),
			zap.Error(err),
		)
		return nil, ErrNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("Catalog returned non-OK status",
			zap.Int64("movie_id", id),
			zap.Int("status", resp.StatusCode),
		)
		return nil, ErrNotFound
	}

	var payload moviePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Warn("Failed to decode catalog response",
			zap.Int64("movie_id", id),
			zap.Error(err),
		)
		return nil, ErrNotFound
	}

	return &Movie{
		Title: payload.Title,
		// The image base is concatenated with the raw path fragment. An
		// absent fragment yields the bare base URL; not validated.
		PosterURL:   c.imageBaseURL + payload.PosterPath,
		Description: payload.Overview,
		Year:        releaseYear(payload.ReleaseDate),
	}, nil
}

// releaseYear takes the first four characters of the release date. An empty
// date yields an empty string rather than an error.
func releaseYear(date string) string {
	if len(date) < 4 {
		return date
	}
	return date[:4]
}
