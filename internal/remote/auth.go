package remote

import (
	"context"
	"net/http"
	"net/url"

	"rutasapp/internal/session"
)

// AuthAPI is the slice of the hosted auth service these flows consume.
type AuthAPI interface {
	AdoptSession(ctx context.Context, accessToken string, refreshToken string) (*session.Session, error)
	SignIn(ctx context.Context, email string, password string) (*session.Session, error)
	SignUp(ctx context.Context, input SignUpInput) error
	UpdatePassword(ctx context.Context, newPassword string) error
	RequestRecovery(ctx context.Context, email string, redirectTo string) error
}

type SignUpInput struct {
	Email      string
	Password   string
	Metadata   map[string]string
	RedirectTo string
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type authClient struct {
	core *Client
}

func NewAuthClient(core *Client) AuthAPI {
	return &authClient{core: core}
}

// AdoptSession asks the service to turn a recovery token pair into a live
// session. Only the refresh token travels: the exchange returns a fresh
// pair that supersedes the emailed access token, and it covers the
// expired-link case in the same round trip.
func (c *authClient) AdoptSession(ctx context.Context, accessToken string, refreshToken string) (*session.Session, error) {
	query := url.Values{"grant_type": {"refresh_token"}}
	body := map[string]string{"refresh_token": refreshToken}
	var tokens tokenResponse
	if err := c.core.do(ctx, http.MethodPost, "/auth/v1/token", query, body, &tokens); err != nil {
		return nil, err
	}
	return session.FromTokens(tokens.AccessToken, tokens.RefreshToken)
}

func (c *authClient) SignIn(ctx context.Context, email string, password string) (*session.Session, error) {
	query := url.Values{"grant_type": {"password"}}
	body := map[string]string{"email": email, "password": password}
	var tokens tokenResponse
	if err := c.core.do(ctx, http.MethodPost, "/auth/v1/token", query, body, &tokens); err != nil {
		return nil, err
	}
	return session.FromTokens(tokens.AccessToken, tokens.RefreshToken)
}

func (c *authClient) SignUp(ctx context.Context, input SignUpInput) error {
	var query url.Values
	if input.RedirectTo != "" {
		query = url.Values{"redirect_to": {input.RedirectTo}}
	}
	body := map[string]any{
		"email":    input.Email,
		"password": input.Password,
	}
	if len(input.Metadata) > 0 {
		body["data"] = input.Metadata
	}
	return c.core.do(ctx, http.MethodPost, "/auth/v1/signup", query, body, nil)
}

func (c *authClient) UpdatePassword(ctx context.Context, newPassword string) error {
	body := map[string]string{"password": newPassword}
	return c.core.do(ctx, http.MethodPut, "/auth/v1/user", nil, body, nil)
}

func (c *authClient) RequestRecovery(ctx context.Context, email string, redirectTo string) error {
	var query url.Values
	if redirectTo != "" {
		query = url.Values{"redirect_to": {redirectTo}}
	}
	body := map[string]string{"email": email}
	return c.core.do(ctx, http.MethodPost, "/auth/v1/recover", query, body, nil)
}
