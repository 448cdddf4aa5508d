package flow

import (
	"context"
	"fmt"
	"sync"

	"rutasapp/internal/deeplink"
	"rutasapp/internal/dto"
	"rutasapp/internal/password"
	"rutasapp/internal/remote"

	"github.com/sirupsen/logrus"
)

// PasswordUpdateFlow is the reset screen's form: validate locally, then one
// update-credential call against the session the coordinator adopted.
type PasswordUpdateFlow struct {
	coordinator *RecoveryCoordinator
	auth        remote.AuthAPI
	policy      password.Policy
	nav         Navigator
	onStatus    StatusFunc
	logger      logrus.FieldLogger

	gate  busyGate
	mutex sync.Mutex
	form  dto.PasswordUpdateForm
}

func NewPasswordUpdateFlow(
	coordinator *RecoveryCoordinator,
	auth remote.AuthAPI,
	policy password.Policy,
	nav Navigator,
	onStatus StatusFunc,
	logger logrus.FieldLogger,
) *PasswordUpdateFlow {
	return &PasswordUpdateFlow{
		coordinator: coordinator,
		auth:        auth,
		policy:      policy,
		nav:         nav,
		onStatus:    onStatus,
		logger:      logger,
	}
}

func (f *PasswordUpdateFlow) SetForm(form dto.PasswordUpdateForm) {
	f.mutex.Lock()
	f.form = form
	f.mutex.Unlock()
}

// Form returns the current field values; they survive a failed submit.
func (f *PasswordUpdateFlow) Form() dto.PasswordUpdateForm {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.form
}

// Validate is pure and side-effect free.
func (f *PasswordUpdateFlow) Validate(newPassword string, confirmation string) password.Result {
	return f.policy.Validate(newPassword, confirmation)
}

// Submit performs at most one remote call. A validation failure never
// reaches the network; a remote failure keeps the form; success discards it
// and replaces the screen with login.
func (f *PasswordUpdateFlow) Submit(ctx context.Context) (string, error) {
	if !f.coordinator.Ready() {
		return "link invalid or expired", ErrSessionRejected
	}
	if !f.gate.begin() {
		return "", ErrBusy
	}
	defer f.gate.end()

	form := f.Form()
	if result := f.Validate(form.NewPassword, form.Confirmation); !result.OK {
		f.onStatus.emit(StatusFailed)
		return result.Message, fmt.Errorf("%w: %s", ErrValidationFailed, result.Message)
	}

	f.onStatus.emit(StatusBusy)
	if err := f.auth.UpdatePassword(ctx, form.NewPassword); err != nil {
		if f.logger != nil {
			f.logger.WithError(err).Warn("password update rejected")
		}
		f.onStatus.emit(StatusFailed)
		return remoteMessage(err, "we could not change your password"), fmt.Errorf("%w: %v", ErrRemoteCallFailed, err)
	}

	f.SetForm(dto.PasswordUpdateForm{})
	f.onStatus.emit(StatusSucceeded)
	f.nav.Replace(deeplink.ScreenLogin)
	return "password updated, redirecting to login", nil
}
