package flow

import (
	"context"
	"fmt"
	"sync"

	"rutasapp/internal/deeplink"
	"rutasapp/internal/remote"
	"rutasapp/internal/session"

	"github.com/sirupsen/logrus"
)

// LaunchURLSource exposes the URL that launched or foregrounded the app,
// when there is one.
type LaunchURLSource interface {
	InitialURL() (string, bool)
}

type RecoveryState int

const (
	StateChecking RecoveryState = iota
	StateReady
	StateFailed
)

func (s RecoveryState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "checking"
	}
}

// RecoveryCoordinator turns a reset-password deep link into a live session.
// It runs once per screen activation; re-activation restarts the whole
// sequence, nothing is cached across activations.
type RecoveryCoordinator struct {
	links    deeplink.Interpreter
	launch   LaunchURLSource
	auth     remote.AuthAPI
	sessions *session.Store
	nav      Navigator
	logger   logrus.FieldLogger

	mutex sync.Mutex
	state RecoveryState
}

func NewRecoveryCoordinator(
	links deeplink.Interpreter,
	launch LaunchURLSource,
	auth remote.AuthAPI,
	sessions *session.Store,
	nav Navigator,
	logger logrus.FieldLogger,
) *RecoveryCoordinator {
	return &RecoveryCoordinator{
		links:    links,
		launch:   launch,
		auth:     auth,
		sessions: sessions,
		nav:      nav,
		logger:   logger,
	}
}

// Activate is the mount-time entry point. Every failure mode looks the same
// to the user: back to the login screen, no retry.
func (c *RecoveryCoordinator) Activate(ctx context.Context) RecoveryState {
	c.setState(StateChecking)

	if err := c.recover(ctx); err != nil {
		if c.logger != nil {
			c.logger.WithError(err).Warn("session recovery failed")
		}
		c.setState(StateFailed)
		c.nav.Replace(deeplink.ScreenLogin)
		return StateFailed
	}

	c.setState(StateReady)
	return StateReady
}

func (c *RecoveryCoordinator) recover(ctx context.Context) error {
	raw, ok := c.launch.InitialURL()
	if !ok {
		return ErrMissingLink
	}

	payload, err := c.links.Parse(raw)
	if err != nil {
		return ErrMalformedLink
	}

	accessToken, refreshToken := deeplink.Credentials(payload)
	if accessToken == "" || refreshToken == "" {
		return ErrMissingCredentials
	}

	adopted, err := c.auth.AdoptSession(ctx, accessToken, refreshToken)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSessionRejected, remoteMessage(err, "link invalid or expired"))
	}
	c.sessions.Set(adopted)
	return nil
}

func (c *RecoveryCoordinator) State() RecoveryState {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.state
}

func (c *RecoveryCoordinator) Ready() bool {
	return c.State() == StateReady
}

func (c *RecoveryCoordinator) setState(state RecoveryState) {
	c.mutex.Lock()
	c.state = state
	c.mutex.Unlock()
}
