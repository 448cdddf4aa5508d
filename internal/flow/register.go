package flow

import (
	"context"
	"fmt"

	"rutasapp/internal/deeplink"
	"rutasapp/internal/dto"
	"rutasapp/internal/password"
	"rutasapp/internal/remote"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var registerMessages = map[string]string{
	"FirstName": "first name must be at least 2 characters",
	"LastName":  "last name must be at least 2 characters",
	"Email":     "enter a valid email",
}

type RegistrationFlow struct {
	auth     remote.AuthAPI
	validate *validator.Validate
	policy   password.Policy
	nav      Navigator
	scheme   string
	onStatus StatusFunc
	logger   logrus.FieldLogger

	gate busyGate
}

func NewRegistrationFlow(
	auth remote.AuthAPI,
	validate *validator.Validate,
	policy password.Policy,
	nav Navigator,
	scheme string,
	onStatus StatusFunc,
	logger logrus.FieldLogger,
) *RegistrationFlow {
	if scheme == "" {
		scheme = "rtc"
	}
	return &RegistrationFlow{
		auth:     auth,
		validate: validate,
		policy:   policy,
		nav:      nav,
		scheme:   scheme,
		onStatus: onStatus,
		logger:   logger,
	}
}

// Submit validates names, email shape, and password strength in fixed
// order, then issues one create-account call. The confirmation email sent
// by the service links back to the app's login screen.
func (f *RegistrationFlow) Submit(ctx context.Context, form dto.RegisterForm) (string, error) {
	if !f.gate.begin() {
		return "", ErrBusy
	}
	defer f.gate.end()

	if err := f.validate.Struct(form); err != nil {
		message := validationMessage(err, registerMessages)
		f.onStatus.emit(StatusFailed)
		return message, fmt.Errorf("%w: %s", ErrValidationFailed, message)
	}
	if result := f.policy.Validate(form.Password, form.Confirm); !result.OK {
		f.onStatus.emit(StatusFailed)
		return result.Message, fmt.Errorf("%w: %s", ErrValidationFailed, result.Message)
	}

	f.onStatus.emit(StatusBusy)
	err := f.auth.SignUp(ctx, remote.SignUpInput{
		Email:    form.Email,
		Password: form.Password,
		Metadata: map[string]string{
			"firstName": form.FirstName,
			"lastName":  form.LastName,
		},
		RedirectTo: f.scheme + "://login",
	})
	if err != nil {
		if f.logger != nil {
			f.logger.WithError(err).Warn("sign-up rejected")
		}
		f.onStatus.emit(StatusFailed)
		// the service message is surfaced verbatim on this screen
		return remoteMessage(err, "registration failed"), fmt.Errorf("%w: %v", ErrRemoteCallFailed, err)
	}

	f.onStatus.emit(StatusSucceeded)
	f.nav.Replace(deeplink.ScreenSignupSuccess)
	return "check your email and confirm your account before signing in", nil
}
