package app

import (
	"testing"

	"rutasapp/internal/deeplink"
)

func newDispatcher() (*Dispatcher, *StackNavigator, *LaunchState) {
	nav := NewStackNavigator(deeplink.ScreenLogin, nil)
	launch := &LaunchState{}
	dispatcher := NewDispatcher(deeplink.NewInterpreter("rtc"), nav, launch, nil)
	return dispatcher, nav, launch
}

func TestDispatcher_ResetPasswordLink(t *testing.T) {
	dispatcher, nav, launch := newDispatcher()

	raw := "rtc://reset-password?access_token=abc&refresh_token=def"
	dispatcher.HandleLink(raw)

	if nav.Current() != deeplink.ScreenResetPassword {
		t.Errorf("current = %q, want reset-password screen", nav.Current())
	}
	recorded, ok := launch.InitialURL()
	if !ok || recorded != raw {
		t.Errorf("InitialURL = (%q, %v), want the full link", recorded, ok)
	}
}

func TestDispatcher_IgnoresUnroutableLinks(t *testing.T) {
	dispatcher, nav, _ := newDispatcher()

	dispatcher.HandleLink("rtc://unknown-path")
	dispatcher.HandleLink("://not a link")

	if nav.Current() != deeplink.ScreenLogin || nav.Depth() != 1 {
		t.Errorf("navigation changed: current=%q depth=%d", nav.Current(), nav.Depth())
	}
}

func TestLaunchState_Empty(t *testing.T) {
	launch := &LaunchState{}
	if _, ok := launch.InitialURL(); ok {
		t.Error("InitialURL reported a link before any was recorded")
	}
}
