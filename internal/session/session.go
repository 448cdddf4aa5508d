package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

type User struct {
	ID       uuid.UUID
	Email    string
	Metadata map[string]string
}

// Session is the server-recognized proof of authentication: the token pair
// plus whatever the access token says about its owner.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         User
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// clone copies the session including the metadata map, so holders of the
// copy cannot reach the original's state.
func (s *Session) clone() *Session {
	copied := *s
	if s.User.Metadata != nil {
		copied.User.Metadata = make(map[string]string, len(s.User.Metadata))
		for key, value := range s.User.Metadata {
			copied.User.Metadata[key] = value
		}
	}
	return &copied
}

type accessClaims struct {
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	jwt.RegisteredClaims
}

// FromTokens builds a session by decoding the access token claims. The
// client holds no signing key, so the signature is not verified here; the
// hosted service is the authority on token validity.
func FromTokens(accessToken string, refreshToken string) (*Session, error) {
	if accessToken == "" || refreshToken == "" {
		return nil, ErrInvalidToken
	}
	claims := &accessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, ErrInvalidToken
	}

	user := User{Email: claims.Email}
	if claims.Subject != "" {
		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			return nil, ErrInvalidToken
		}
		user.ID = id
	}
	if len(claims.UserMetadata) > 0 {
		user.Metadata = make(map[string]string, len(claims.UserMetadata))
		for key, value := range claims.UserMetadata {
			if text, ok := value.(string); ok {
				user.Metadata[key] = text
			}
		}
	}

	result := &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}
