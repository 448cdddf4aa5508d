package flow

import (
	"context"
	"fmt"

	"rutasapp/internal/deeplink"
	"rutasapp/internal/dto"
	"rutasapp/internal/remote"
	"rutasapp/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const profilesTable = "profiles"

// LoginFlow signs the user in and makes sure a profile row exists for the
// authenticated identity, creating a minimal one from session metadata when
// absent.
type LoginFlow struct {
	auth     remote.AuthAPI
	data     remote.DataAPI
	sessions *session.Store
	validate *validator.Validate
	nav      Navigator
	onStatus StatusFunc
	logger   logrus.FieldLogger

	gate busyGate
}

func NewLoginFlow(
	auth remote.AuthAPI,
	data remote.DataAPI,
	sessions *session.Store,
	validate *validator.Validate,
	nav Navigator,
	onStatus StatusFunc,
	logger logrus.FieldLogger,
) *LoginFlow {
	return &LoginFlow{
		auth:     auth,
		data:     data,
		sessions: sessions,
		validate: validate,
		nav:      nav,
		onStatus: onStatus,
		logger:   logger,
	}
}

func (f *LoginFlow) Submit(ctx context.Context, form dto.LoginForm) (string, error) {
	if !f.gate.begin() {
		return "", ErrBusy
	}
	defer f.gate.end()

	if err := f.validate.Struct(form); err != nil {
		message := loginValidationMessage(form, err)
		f.onStatus.emit(StatusFailed)
		return message, fmt.Errorf("%w: %s", ErrValidationFailed, message)
	}

	f.onStatus.emit(StatusBusy)
	signedIn, err := f.auth.SignIn(ctx, form.Email, form.Password)
	if err != nil {
		f.onStatus.emit(StatusFailed)
		return "invalid credentials", fmt.Errorf("%w: %v", ErrRemoteCallFailed, err)
	}
	f.sessions.Set(signedIn)

	if err := f.ensureProfile(ctx, signedIn); err != nil {
		if f.logger != nil {
			f.logger.WithError(err).Error("profile check failed")
		}
		f.onStatus.emit(StatusFailed)
		return "internal error, please try again", fmt.Errorf("%w: %v", ErrRemoteCallFailed, err)
	}

	f.onStatus.emit(StatusSucceeded)
	f.nav.Replace(deeplink.ScreenHome)
	return "", nil
}

func (f *LoginFlow) ensureProfile(ctx context.Context, active *session.Session) error {
	userID := active.User.ID.String()
	existing, err := f.data.ReadOne(ctx, profilesTable, map[string]string{"id": userID})
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return f.data.Insert(ctx, profilesTable, map[string]any{
		"id":       userID,
		"nombre":   active.User.Metadata["firstName"],
		"apellido": active.User.Metadata["lastName"],
	})
}

func loginValidationMessage(form dto.LoginForm, err error) string {
	if form.Email == "" || form.Password == "" {
		return "please fill in both fields"
	}
	return validationMessage(err, map[string]string{"Email": "enter a valid email"})
}
