// Package api is the HTTPS client for the GitHub Models endpoints: the model
// catalog and the chat-completions inference route.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/KimSchm/gh-models-cli/common"
	"github.com/KimSchm/gh-models-cli/logger"
	"github.com/KimSchm/gh-models-cli/model"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the GitHub Models API host.
	DefaultBaseURL = "https://models.github.ai"
	// DefaultAPIVersion is the value of the X-GitHub-Api-Version header.
	DefaultAPIVersion = "2022-11-28"
	// DefaultTimeout is the per-call timeout in seconds.
	DefaultTimeout = 60

	catalogPath     = "/catalog/models"
	completionsPath = "/inference/chat/completions"

	acceptGitHubJSON = "application/vnd.github+json"
)

// Client performs the read-only catalog queries and the completion POST.
// Every method is one blocking round trip with no retry and no caching of
// catalog results between calls.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiVersion string
	timeout    int // in seconds
}

// NewClient creates an API client authenticated with a bearer token
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiVersion: DefaultAPIVersion,
		timeout:    DefaultTimeout,
	}

	var apiToken string

	// Apply options
	for _, opt := range opts {
		switch opt.Type {
		case APITokenOption:
			if token, ok := opt.Value.(string); ok {
				apiToken = token
			}
		case BaseURLOption:
			if baseURL, ok := opt.Value.(string); ok {
				c.baseURL = baseURL
			}
		case TimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				c.timeout = timeout
			}
		case APIVersionOption:
			if version, ok := opt.Value.(string); ok {
				c.apiVersion = version
			}
		}
	}

	if apiToken == "" {
		return nil, fmt.Errorf("API token is required")
	}

	// Bearer auth rides on an oauth2 transport over the shared HTTP client
	retryClient := common.NewRetryableClient(common.SingleAttemptConfig())
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiToken})
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, retryClient.StandardClient())
	c.httpClient = oauth2.NewClient(ctx, ts)

	logger.Debugf("API client initialized for %s (timeout: %ds)", c.baseURL, c.timeout)
	return c, nil
}

// ListModels fetches the model catalog and returns the raw JSON array.
func (c *Client) ListModels(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.timeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+catalogPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}
	req.Header.Set("Accept", acceptGitHubJSON)
	req.Header.Set("X-GitHub-Api-Version", c.apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch model catalog: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request failed with status %d: %s", resp.StatusCode, string(body))
	}

	logger.Debugf("Fetched model catalog (%d bytes)", len(body))
	return body, nil
}

// RateTier fetches the catalog and returns the rate_limit_tier of the entry
// whose id equals modelID, with its case preserved. Returns the empty string
// when no entry matches.
func (c *Client) RateTier(ctx context.Context, modelID string) (string, error) {
	body, err := c.ListModels(ctx)
	if err != nil {
		return "", err
	}

	tier := ""
	gjson.ParseBytes(body).ForEach(func(_, entry gjson.Result) bool {
		if entry.Get("id").String() == modelID {
			tier = entry.Get("rate_limit_tier").String()
			return false
		}
		return true
	})

	return tier, nil
}

// Complete posts the chat-completion request and returns the raw response
// body regardless of HTTP status. Non-2xx bodies pass through unexamined so
// the renderer can substitute placeholders.
func (c *Client) Complete(ctx context.Context, chatReq model.ChatRequest) ([]byte, error) {
	payload, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	logger.Debugf("Completion request body: %s", payload)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.timeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger.Infof("Sending completion request to model %s", chatReq.Model)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warnf("Completion returned status %d", resp.StatusCode)
	}

	return body, nil
}
