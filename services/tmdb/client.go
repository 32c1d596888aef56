package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"filmora/models"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultLanguage = "en-US"
)

// Kind classifies a failed catalog call so callers can pick a fallback
// strategy without string-matching error text.
type Kind string

const (
	// KindNetwork covers transport failures: the request never completed.
	KindNetwork Kind = "network"
	// KindStatus covers completed requests with a non-2xx status.
	KindStatus Kind = "status"
	// KindDecode covers payloads that did not match the expected shape.
	KindDecode Kind = "decode"
)

// Error is a typed failure from the catalog API.
type Error struct {
	Kind   Kind
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("tmdb: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("tmdb: %s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Config holds catalog client configuration.
type Config struct {
	APIKey   string
	BaseURL  string // defaults to the public TMDB v3 API
	Language string // defaults to en-US
}

// Client handles read requests against the TMDB catalog API. It performs a
// single attempt per call and never caches; the synchronization policy owns
// the fallback behaviour.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
}

// NewClient creates a new catalog API client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	language := cfg.Language
	if language == "" {
		language = defaultLanguage
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		language:   language,
	}
}

// get issues a single GET request and decodes the JSON response into out.
// The API key is attached to every call.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: fmt.Errorf("tmdb api request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return &Error{Kind: KindStatus, Status: resp.StatusCode, Err: fmt.Errorf("tmdb %s failed: %s - %s", path, resp.Status, string(respBody))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindDecode, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}

// PopularMovies retrieves one page of the popular movie list.
func (c *Client) PopularMovies(ctx context.Context, page int) (*models.MoviePage, error) {
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var result models.MoviePage
	if err := c.get(ctx, "/movie/popular", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type genreResponse struct {
	Genres []models.Genre `json:"genres"`
}

// Genres retrieves the full movie genre list.
func (c *Client) Genres(ctx context.Context) ([]models.Genre, error) {
	query := url.Values{}
	query.Set("language", c.language)

	var result genreResponse
	if err := c.get(ctx, "/genre/movie/list", query, &result); err != nil {
		return nil, err
	}
	return result.Genres, nil
}

// MoviesByGenre retrieves one page of movies for a genre via discover.
func (c *Client) MoviesByGenre(ctx context.Context, genreID, page int) (*models.MoviePage, error) {
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("with_genres", strconv.Itoa(genreID))
	query.Set("page", strconv.Itoa(page))

	var result models.MoviePage
	if err := c.get(ctx, "/discover/movie", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MovieDetail retrieves a single movie by id.
func (c *Client) MovieDetail(ctx context.Context, movieID int) (*models.Movie, error) {
	var result models.Movie
	if err := c.get(ctx, "/movie/"+strconv.Itoa(movieID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type videoResponse struct {
	Results []models.Video `json:"results"`
}

// MovieVideos retrieves trailers and clips for a movie.
func (c *Client) MovieVideos(ctx context.Context, movieID int) ([]models.Video, error) {
	var result videoResponse
	if err := c.get(ctx, "/movie/"+strconv.Itoa(movieID)+"/videos", nil, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

type creditsResponse struct {
	Cast []models.CastMember `json:"cast"`
}

// MovieCredits retrieves the cast list for a movie.
func (c *Client) MovieCredits(ctx context.Context, movieID int) ([]models.CastMember, error) {
	var result creditsResponse
	if err := c.get(ctx, "/movie/"+strconv.Itoa(movieID)+"/credits", nil, &result); err != nil {
		return nil, err
	}
	return result.Cast, nil
}

type reviewResponse struct {
	Results []models.RemoteReview `json:"results"`
}

// MovieReviews retrieves one page of editorial reviews for a movie.
func (c *Client) MovieReviews(ctx context.Context, movieID, page int) ([]models.RemoteReview, error) {
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var result reviewResponse
	if err := c.get(ctx, "/movie/"+strconv.Itoa(movieID)+"/reviews", query, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}
