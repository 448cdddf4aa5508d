package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rutasapp/internal/session"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Error is a structured failure from the hosted service, carrying the
// human-readable message the service returned.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Client is the shared HTTP core under the auth and data clients: one
// http.Client, the service credentials, and a politeness limiter so a
// misbehaving flow cannot hammer the hosted API.
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	limiter  *rate.Limiter
	sessions *session.Store
	logger   logrus.FieldLogger
}

func NewClient(baseURL string, apiKey string, sessions *session.Store, logger logrus.FieldLogger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 10 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(10), 20),
		sessions: sessions,
		logger:   logger,
	}
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	request.Header.Set("apikey", c.apiKey)
	request.Header.Set("Authorization", "Bearer "+c.bearerToken())
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.http.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": response.StatusCode,
		}).Debug("remote call")
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return &Error{Status: response.StatusCode, Message: errorMessage(data, response.StatusCode)}
	}
	if target == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}

// bearerToken prefers the active session token; unauthenticated calls fall
// back to the service key, as the hosted API expects.
func (c *Client) bearerToken() string {
	if c.sessions != nil {
		if active, ok := c.sessions.Get(); ok {
			return active.AccessToken
		}
	}
	return c.apiKey
}

func errorMessage(data []byte, status int) string {
	var payload struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		for _, candidate := range []string{payload.Message, payload.Msg, payload.ErrorDescription} {
			if candidate != "" {
				return candidate
			}
		}
	}
	return fmt.Sprintf("remote call failed with status %d", status)
}
