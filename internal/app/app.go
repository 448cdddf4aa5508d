package app

import "rutasapp/internal/flow"

// App bundles the wired flows for whatever front-end drives them.
type App struct {
	Navigator  *StackNavigator
	Dispatcher *Dispatcher
	Launch     *LaunchState

	Recovery     *flow.RecoveryCoordinator
	Reset        *flow.PasswordUpdateFlow
	Registration *flow.RegistrationFlow
	Login        *flow.LoginFlow
	Forgot       *flow.ForgotPasswordFlow
	Browse       *flow.BrowseFlow
}
