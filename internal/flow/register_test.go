package flow

import (
	"context"
	"errors"
	"testing"

	"rutasapp/internal/deeplink"
	"rutasapp/internal/dto"
	"rutasapp/internal/password"
	"rutasapp/internal/remote"
)

func validRegisterForm() dto.RegisterForm {
	return dto.RegisterForm{
		FirstName: "Ana",
		LastName:  "Paz",
		Email:     "ana@example.com",
		Password:  "Abcdefg1!",
		Confirm:   "Abcdefg1!",
	}
}

func newRegistrationFlow(t *testing.T, auth *stubAuth) (*RegistrationFlow, *stubNav) {
	t.Helper()
	nav := &stubNav{}
	return NewRegistrationFlow(auth, newValidator(t), password.RegistrationPolicy, nav, "rtc", nil, nil), nav
}

func TestRegistration_ValidationOrder(t *testing.T) {
	cases := []struct {
		name        string
		mutate      func(*dto.RegisterForm)
		wantMessage string
	}{
		{"short first name", func(f *dto.RegisterForm) { f.FirstName = "A" }, "first name must be at least 2 characters"},
		{"short last name", func(f *dto.RegisterForm) { f.LastName = "P" }, "last name must be at least 2 characters"},
		{"bad email", func(f *dto.RegisterForm) { f.Email = "not an email" }, "enter a valid email"},
		{"weak password", func(f *dto.RegisterForm) { f.Password = "abcdefg1!"; f.Confirm = "abcdefg1!" }, "password needs an uppercase letter"},
		{"mismatch", func(f *dto.RegisterForm) { f.Confirm = "Abcdefg2!" }, "passwords do not match"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &stubAuth{}
			registration, _ := newRegistrationFlow(t, auth)
			form := validRegisterForm()
			tc.mutate(&form)

			message, err := registration.Submit(context.Background(), form)
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("err = %v, want ErrValidationFailed", err)
			}
			if message != tc.wantMessage {
				t.Errorf("message = %q, want %q", message, tc.wantMessage)
			}
			if len(auth.signUpCalls) != 0 {
				t.Error("create-account called on validation failure")
			}
		})
	}
}

func TestRegistration_Success(t *testing.T) {
	auth := &stubAuth{}
	registration, nav := newRegistrationFlow(t, auth)

	if _, err := registration.Submit(context.Background(), validRegisterForm()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(auth.signUpCalls) != 1 {
		t.Fatalf("create-account called %d times, want 1", len(auth.signUpCalls))
	}
	call := auth.signUpCalls[0]
	if call.Email != "ana@example.com" || call.Password != "Abcdefg1!" {
		t.Errorf("credentials sent = %q / %q", call.Email, call.Password)
	}
	if call.Metadata["firstName"] != "Ana" || call.Metadata["lastName"] != "Paz" {
		t.Errorf("metadata = %v", call.Metadata)
	}
	if call.RedirectTo != "rtc://login" {
		t.Errorf("RedirectTo = %q", call.RedirectTo)
	}
	if screen, ok := nav.lastReplaced(); !ok || screen != deeplink.ScreenSignupSuccess {
		t.Errorf("navigation = %v, want replace to signup-success", nav.replaced)
	}
}

func TestRegistration_RemoteErrorSurfacedVerbatim(t *testing.T) {
	auth := &stubAuth{signUpErr: &remote.Error{Status: 422, Message: "User already registered"}}
	registration, nav := newRegistrationFlow(t, auth)

	message, err := registration.Submit(context.Background(), validRegisterForm())
	if !errors.Is(err, ErrRemoteCallFailed) {
		t.Fatalf("err = %v, want ErrRemoteCallFailed", err)
	}
	if message != "User already registered" {
		t.Errorf("message = %q, want the remote message verbatim", message)
	}
	if len(nav.replaced) != 0 {
		t.Error("navigation happened on failure")
	}
}
