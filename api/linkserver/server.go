package linkserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// DispatchFunc receives the full URL of an incoming link.
type DispatchFunc func(rawURL string)

// Server is the development stand-in for the OS deep-link subscription: a
// loopback HTTP listener that forwards redirect links (the reset-password
// email lands here) to the app dispatcher.
type Server struct {
	echo     *echo.Echo
	addr     string
	dispatch DispatchFunc
	logger   logrus.FieldLogger
}

func New(addr string, dispatch DispatchFunc, logger logrus.FieldLogger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(5)))

	server := &Server{echo: e, addr: addr, dispatch: dispatch, logger: logger}
	e.GET("/*", server.handleLink)
	return server
}

func (s *Server) handleLink(c echo.Context) error {
	incoming := &url.URL{
		Scheme:   "http",
		Host:     c.Request().Host,
		Path:     c.Request().URL.Path,
		RawQuery: c.Request().URL.RawQuery,
	}
	if s.logger != nil {
		s.logger.WithField("path", incoming.Path).Info("link received")
	}
	s.dispatch(incoming.String())
	return c.String(http.StatusOK, "ok, return to the app\n")
}

// Start refuses to bind anywhere but loopback; this listener exists for
// development only.
func (s *Server) Start() error {
	host, _, err := net.SplitHostPort(s.addr)
	if err != nil {
		return err
	}
	if host != "127.0.0.1" && host != "localhost" {
		return errors.New("link listener must bind to loopback")
	}
	return s.echo.Start(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
