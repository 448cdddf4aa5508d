package flow

import (
	"errors"
	"sync"

	"rutasapp/internal/deeplink"
	"rutasapp/internal/remote"

	"github.com/go-playground/validator/v10"
)

// Navigator is the outbound navigation surface. Replace matters for
// terminal transitions: the target must not be reachable via back.
type Navigator interface {
	Push(screen deeplink.Screen)
	Replace(screen deeplink.Screen)
}

// Status is the observable flow-state signal a presentation layer may react
// to (spinners, border animations). Flows emit it; nobody waits on it.
type Status int

const (
	StatusIdle Status = iota
	StatusBusy
	StatusSucceeded
	StatusFailed
)

type StatusFunc func(Status)

func (fn StatusFunc) emit(status Status) {
	if fn != nil {
		fn(status)
	}
}

// busyGate is the per-screen exclusive loading flag: one submission in
// flight at a time, cleared on every exit path.
type busyGate struct {
	mutex sync.Mutex
	busy  bool
}

func (g *busyGate) begin() bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	if g.busy {
		return false
	}
	g.busy = true
	return true
}

func (g *busyGate) end() {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.busy = false
}

// remoteMessage surfaces the service's own message when there is one.
func remoteMessage(err error, fallback string) string {
	var remoteErr *remote.Error
	if errors.As(err, &remoteErr) && remoteErr.Message != "" {
		return remoteErr.Message
	}
	return fallback
}

// validationMessage maps the first failing field to its screen message.
func validationMessage(err error, messages map[string]string) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		if message, ok := messages[fieldErrors[0].StructField()]; ok {
			return message
		}
	}
	return "please check the form and try again"
}
