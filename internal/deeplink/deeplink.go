package deeplink

import (
	"errors"
	"net/url"
	"strings"
)

var ErrMalformedLink = errors.New("malformed link")

// Screen names the application screens a link can route to.
type Screen string

const (
	ScreenLogin          Screen = "PantallaIniciarSesion"
	ScreenSignup         Screen = "PantallaRegistro"
	ScreenSignupSuccess  Screen = "PantallaRegistroExitoso"
	ScreenForgotPassword Screen = "PantallaRecuperarContrasena"
	ScreenCheckMail      Screen = "PantallaCheckMail"
	ScreenResetPassword  Screen = "PantallaCambiarContrasena"
	ScreenHome           Screen = "PantallaExploracion"
)

var screensByPath = map[string]Screen{
	"login":           ScreenLogin,
	"signup":          ScreenSignup,
	"signup-success":  ScreenSignupSuccess,
	"forgot-password": ScreenForgotPassword,
	"check-mail":      ScreenCheckMail,
	"reset-password":  ScreenResetPassword,
	"home":            ScreenHome,
}

// Payload is the routing information carried by a link. Query keeps the
// first value of each parameter, decoded by standard URL rules.
type Payload struct {
	Path  string
	Query map[string]string
}

type Interpreter struct {
	Scheme string
}

func NewInterpreter(scheme string) Interpreter {
	if scheme == "" {
		scheme = "rtc"
	}
	return Interpreter{Scheme: scheme}
}

func (i Interpreter) Parse(raw string) (*Payload, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrMalformedLink
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, ErrMalformedLink
	}

	var path string
	switch parsed.Scheme {
	case i.Scheme:
		// rtc://reset-password?... parses with the path in the host part.
		path = parsed.Host + parsed.Path
	case "http", "https", "exp":
		host := parsed.Hostname()
		if host != "127.0.0.1" && host != "localhost" {
			return nil, ErrMalformedLink
		}
		path = parsed.Path
		// expo-style dev links nest the route behind /--/.
		path = strings.TrimPrefix(path, "/--")
	default:
		return nil, ErrMalformedLink
	}
	path = strings.Trim(path, "/")

	query := make(map[string]string)
	for key, values := range parsed.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}
	return &Payload{Path: path, Query: query}, nil
}

// ScreenFor resolves a parsed path against the closed set of routes.
func ScreenFor(path string) (Screen, bool) {
	screen, ok := screensByPath[path]
	return screen, ok
}

// Credentials extracts the recovery token pair verbatim from the payload.
func Credentials(p *Payload) (accessToken string, refreshToken string) {
	if p == nil {
		return "", ""
	}
	return p.Query["access_token"], p.Query["refresh_token"]
}
