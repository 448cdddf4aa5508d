package app

import (
	"sync"

	"rutasapp/internal/deeplink"

	"github.com/sirupsen/logrus"
)

// LaunchState remembers the most recent link that opened or foregrounded
// the app, so the recovery coordinator can read it at mount time.
type LaunchState struct {
	mutex sync.Mutex
	url   string
	set   bool
}

func (l *LaunchState) Record(raw string) {
	l.mutex.Lock()
	l.url = raw
	l.set = true
	l.mutex.Unlock()
}

func (l *LaunchState) InitialURL() (string, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.url, l.set
}

// Dispatcher is the app-level link subscription: it records the incoming
// URL and routes recognized paths to their screens.
type Dispatcher struct {
	links  deeplink.Interpreter
	nav    *StackNavigator
	launch *LaunchState
	logger logrus.FieldLogger
}

func NewDispatcher(links deeplink.Interpreter, nav *StackNavigator, launch *LaunchState, logger logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{links: links, nav: nav, launch: launch, logger: logger}
}

func (d *Dispatcher) HandleLink(raw string) {
	d.launch.Record(raw)

	payload, err := d.links.Parse(raw)
	if err != nil {
		if d.logger != nil {
			d.logger.WithError(err).WithField("url", raw).Warn("ignoring link")
		}
		return
	}
	screen, ok := deeplink.ScreenFor(payload.Path)
	if !ok {
		if d.logger != nil {
			d.logger.WithField("path", payload.Path).Warn("no screen for link path")
		}
		return
	}
	d.nav.Push(screen)
}
