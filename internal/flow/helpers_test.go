package flow

import (
	"context"
	"testing"

	"rutasapp/internal/deeplink"
	"rutasapp/internal/dto"
	"rutasapp/internal/remote"
	"rutasapp/internal/session"

	"github.com/go-playground/validator/v10"
)

type adoptCall struct {
	access  string
	refresh string
}

type stubAuth struct {
	adoptCalls  []adoptCall
	adoptResult *session.Session
	adoptErr    error

	signInCalls  int
	signInResult *session.Session
	signInErr    error

	signUpCalls []remote.SignUpInput
	signUpErr   error

	updateCalls []string
	updateErr   error

	recoverCalls    []string
	recoverRedirect string
	recoverErr      error
}

func (s *stubAuth) AdoptSession(ctx context.Context, accessToken string, refreshToken string) (*session.Session, error) {
	s.adoptCalls = append(s.adoptCalls, adoptCall{access: accessToken, refresh: refreshToken})
	return s.adoptResult, s.adoptErr
}

func (s *stubAuth) SignIn(ctx context.Context, email string, password string) (*session.Session, error) {
	s.signInCalls++
	return s.signInResult, s.signInErr
}

func (s *stubAuth) SignUp(ctx context.Context, input remote.SignUpInput) error {
	s.signUpCalls = append(s.signUpCalls, input)
	return s.signUpErr
}

func (s *stubAuth) UpdatePassword(ctx context.Context, newPassword string) error {
	s.updateCalls = append(s.updateCalls, newPassword)
	return s.updateErr
}

func (s *stubAuth) RequestRecovery(ctx context.Context, email string, redirectTo string) error {
	s.recoverCalls = append(s.recoverCalls, email)
	s.recoverRedirect = redirectTo
	return s.recoverErr
}

type stubData struct {
	readOneResult map[string]any
	readOneErr    error
	readOneCalls  int

	insertRecords []map[string]any
	insertErr     error

	listRows []map[string]any
	listErr  error
}

func (s *stubData) ReadOne(ctx context.Context, table string, filters map[string]string) (map[string]any, error) {
	s.readOneCalls++
	return s.readOneResult, s.readOneErr
}

func (s *stubData) Insert(ctx context.Context, table string, record map[string]any) error {
	s.insertRecords = append(s.insertRecords, record)
	return s.insertErr
}

func (s *stubData) List(ctx context.Context, table string, filters map[string]string, orderBy string, descending bool) ([]map[string]any, error) {
	return s.listRows, s.listErr
}

type stubNav struct {
	pushed   []deeplink.Screen
	replaced []deeplink.Screen
}

func (n *stubNav) Push(screen deeplink.Screen) {
	n.pushed = append(n.pushed, screen)
}

func (n *stubNav) Replace(screen deeplink.Screen) {
	n.replaced = append(n.replaced, screen)
}

func (n *stubNav) lastReplaced() (deeplink.Screen, bool) {
	if len(n.replaced) == 0 {
		return "", false
	}
	return n.replaced[len(n.replaced)-1], true
}

type stubLaunch struct {
	url string
	ok  bool
}

func (l stubLaunch) InitialURL() (string, bool) {
	return l.url, l.ok
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	if err := dto.RegisterEmailShape(validate); err != nil {
		t.Fatalf("RegisterEmailShape: %v", err)
	}
	return validate
}
