package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/model"
	"github.com/skywhalehq/gomongolia-guide-admin-web/pkg/config"
)

// Envelope is the {message, data} wrapper every platform API response uses.
// Data stays raw until the caller knows the concrete element type.
type Envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Error is a fetch failure. Message carries the server-provided message
// when the error body had one, otherwise the generic status text.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Client talks to the platform API the dashboard reads from
type Client struct {
	BaseURL    string
	UsersPath  string
	TripsPath  string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewClient creates a new platform API client instance
func NewClient(cfg *config.UpstreamConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:    cfg.BaseURL,
		UsersPath:  cfg.UsersPath,
		TripsPath:  cfg.TripsPath,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
	}
}

// FetchUsers retrieves the full guide/driver list
func (c *Client) FetchUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.get(ctx, c.UsersPath, &users); err != nil {
		return nil, err
	}
	c.Logger.Info("Fetched users from platform API", zap.Int("count", len(users)))
	return users, nil
}

// FetchTrips retrieves the full trip list
func (c *Client) FetchTrips(ctx context.Context) ([]model.Trip, error) {
	var trips []model.Trip
	if err := c.get(ctx, c.TripsPath, &trips); err != nil {
		return nil, err
	}
	c.Logger.Info("Fetched trips from platform API", zap.Int("count", len(trips)))
	return trips, nil
}

// get performs a single GET and unwraps the response envelope into out.
// One attempt only; the caller decides how to react to failure. A null
// data field leaves out untouched.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", c.BaseURL, path), nil)
	if err != nil {
		c.Logger.Error("Failed to create request", zap.String("path", path), zap.Error(err))
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("Platform API request failed", zap.String("path", path), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Error("Failed to read response body", zap.String("path", path), zap.Error(err))
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Error bodies may carry {message}; fall back to generic status text
		var envelope Envelope
		message := ""
		if err := json.Unmarshal(body, &envelope); err == nil {
			message = envelope.Message
		}
		if message == "" {
			message = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
		}
		c.Logger.Error("Platform API returned error status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", message))
		return &Error{StatusCode: resp.StatusCode, Message: message}
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.Logger.Error("Failed to parse response envelope", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to parse response envelope: %w", err)
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		c.Logger.Error("Failed to parse response data", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to parse response data: %w", err)
	}

	return nil
}
