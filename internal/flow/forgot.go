package flow

import (
	"context"
	"fmt"

	"rutasapp/internal/deeplink"
	"rutasapp/internal/dto"
	"rutasapp/internal/remote"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ForgotPasswordFlow asks the service to email a recovery link pointing
// back at the app's reset-password route.
type ForgotPasswordFlow struct {
	auth     remote.AuthAPI
	validate *validator.Validate
	nav      Navigator
	scheme   string
	onStatus StatusFunc
	logger   logrus.FieldLogger

	gate busyGate
}

func NewForgotPasswordFlow(
	auth remote.AuthAPI,
	validate *validator.Validate,
	nav Navigator,
	scheme string,
	onStatus StatusFunc,
	logger logrus.FieldLogger,
) *ForgotPasswordFlow {
	if scheme == "" {
		scheme = "rtc"
	}
	return &ForgotPasswordFlow{
		auth:     auth,
		validate: validate,
		nav:      nav,
		scheme:   scheme,
		onStatus: onStatus,
		logger:   logger,
	}
}

func (f *ForgotPasswordFlow) Submit(ctx context.Context, form dto.ForgotPasswordForm) (string, error) {
	if !f.gate.begin() {
		return "", ErrBusy
	}
	defer f.gate.end()

	if err := f.validate.Struct(form); err != nil {
		message := forgotValidationMessage(form)
		f.onStatus.emit(StatusFailed)
		return message, fmt.Errorf("%w: %s", ErrValidationFailed, message)
	}

	f.onStatus.emit(StatusBusy)
	redirectTo := f.scheme + "://reset-password"
	if err := f.auth.RequestRecovery(ctx, form.Email, redirectTo); err != nil {
		if f.logger != nil {
			f.logger.WithError(err).Warn("recovery email request failed")
		}
		f.onStatus.emit(StatusFailed)
		return "we could not send the email, try again", fmt.Errorf("%w: %v", ErrRemoteCallFailed, err)
	}

	f.onStatus.emit(StatusSucceeded)
	f.nav.Replace(deeplink.ScreenCheckMail)
	return "", nil
}

func forgotValidationMessage(form dto.ForgotPasswordForm) string {
	if form.Email == "" {
		return "enter your email"
	}
	return "enter a valid email"
}
