package joke

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/MishkaBot_Go/internal/logger"
)

// RemoteJoke is a two-part joke as returned by JokeAPI
type RemoteJoke struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Setup    string `json:"setup"`
	Delivery string `json:"delivery"`
}

type jokeAPIResponse struct {
	Error   bool         `json:"error"`
	Message string       `json:"message"`
	Amount  int          `json:"amount"`
	Jokes   []RemoteJoke `json:"jokes"`
}

// Fetcher retrieves jokes from a remote source
type Fetcher interface {
	FetchJokes(ctx context.Context) ([]RemoteJoke, error)
}

// APIClient talks to JokeAPI (https://jokeapi.dev)
type APIClient struct {
	BaseURL string
	Client  *http.Client
}

// NewAPIClient creates a new JokeAPI client
func NewAPIClient(baseURL string) *APIClient {
	if baseURL == "" {
		baseURL = DefaultJokeAPIURL
	}
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: apiTimeout},
	}
}

// FetchJokes returns the two-part jokes from one import batch
func (c *APIClient) FetchJokes(ctx context.Context) ([]RemoteJoke, error) {
	resp, err := c.doRequest(ctx, JokeAPIImportPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFetchJokes, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: API returned status %d", ErrContextFetchJokes, resp.StatusCode)
	}

	var body jokeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextDecodeJokes, err)
	}
	if body.Error {
		return nil, fmt.Errorf("%s: %s", ErrContextFetchJokes, body.Message)
	}

	jokes := body.Jokes[:0]
	for _, j := range body.Jokes {
		if j.Type == "twopart" && j.Setup != "" && j.Delivery != "" {
			jokes = append(jokes, j)
		}
	}
	return jokes, nil
}

// doRequest performs a GET with retries on transport and 5xx errors
func (c *APIClient) doRequest(ctx context.Context, path string) (*http.Response, error) {
	log := logger.FromContext(ctx)
	url := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= apiMaxRetries; attempt++ {
		if attempt > 0 {
			delay := apiRetryDelay * time.Duration(1<<uint(attempt-1))
			log.Info(LogMsgRetryingRequest, "attempt", attempt, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.Client.Do(req)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil, err
			}
			lastErr = err
			log.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		log.Warn(LogMsgRequestFailed, "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}
