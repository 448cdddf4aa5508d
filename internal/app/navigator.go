package app

import (
	"sync"

	"rutasapp/internal/deeplink"

	"github.com/sirupsen/logrus"
)

// StackNavigator is the on-device navigation stack: push keeps history,
// replace swaps the top so the previous screen is not reachable via back.
// Entering a screen fires its mount handler once per activation.
type StackNavigator struct {
	mutex    sync.Mutex
	stack    []deeplink.Screen
	handlers map[deeplink.Screen]func()
	logger   logrus.FieldLogger
}

func NewStackNavigator(initial deeplink.Screen, logger logrus.FieldLogger) *StackNavigator {
	return &StackNavigator{
		stack:    []deeplink.Screen{initial},
		handlers: make(map[deeplink.Screen]func()),
		logger:   logger,
	}
}

// Handle registers the mount-time activation for a screen.
func (n *StackNavigator) Handle(screen deeplink.Screen, activate func()) {
	n.mutex.Lock()
	n.handlers[screen] = activate
	n.mutex.Unlock()
}

func (n *StackNavigator) Push(screen deeplink.Screen) {
	n.mutex.Lock()
	n.stack = append(n.stack, screen)
	activate := n.handlers[screen]
	n.mutex.Unlock()

	n.log("push", screen)
	if activate != nil {
		activate()
	}
}

func (n *StackNavigator) Replace(screen deeplink.Screen) {
	n.mutex.Lock()
	if len(n.stack) == 0 {
		n.stack = []deeplink.Screen{screen}
	} else {
		n.stack[len(n.stack)-1] = screen
	}
	activate := n.handlers[screen]
	n.mutex.Unlock()

	n.log("replace", screen)
	if activate != nil {
		activate()
	}
}

func (n *StackNavigator) Back() (deeplink.Screen, bool) {
	n.mutex.Lock()
	if len(n.stack) <= 1 {
		n.mutex.Unlock()
		return "", false
	}
	n.stack = n.stack[:len(n.stack)-1]
	current := n.stack[len(n.stack)-1]
	activate := n.handlers[current]
	n.mutex.Unlock()

	n.log("back", current)
	if activate != nil {
		activate()
	}
	return current, true
}

func (n *StackNavigator) Current() deeplink.Screen {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return n.stack[len(n.stack)-1]
}

func (n *StackNavigator) Depth() int {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return len(n.stack)
}

func (n *StackNavigator) log(action string, screen deeplink.Screen) {
	if n.logger != nil {
		n.logger.WithFields(logrus.Fields{
			"action": action,
			"screen": screen,
		}).Info("navigation")
	}
}
