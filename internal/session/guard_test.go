package session

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/voyago/admin-panel/internal/backend"
	"github.com/voyago/admin-panel/internal/domain"
)

// fakeAPI stands in for the backend client. It mimics the client's token
// behavior: a successful login stores the pair, logout and ClearTokens drop
// it.
type fakeAPI struct {
	hasToken    bool
	loginResp   *backend.AuthResponse
	loginErr    error
	currentUser *domain.User
	currentErr  error
	logoutErr   error

	loginCalls   int
	currentCalls int
	logoutCalls  int
	clearCalls   int

	onLogin func()
}

func (f *fakeAPI) Login(_ context.Context, _, _ string) (*backend.AuthResponse, error) {
	f.loginCalls++
	if f.onLogin != nil {
		f.onLogin()
	}
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.hasToken = true
	return f.loginResp, nil
}

func (f *fakeAPI) CurrentUser(_ context.Context) (*domain.User, error) {
	f.currentCalls++
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	return f.currentUser, nil
}

func (f *fakeAPI) Logout(_ context.Context) error {
	f.logoutCalls++
	f.hasToken = false
	return f.logoutErr
}

func (f *fakeAPI) IsAuthenticated(_ context.Context) bool {
	return f.hasToken
}

func (f *fakeAPI) ClearTokens(_ context.Context) {
	f.clearCalls++
	f.hasToken = false
}

func adminUser() *domain.User {
	return &domain.User{
		ID:    "u-1",
		Email: "root@voyago.dev",
		Name:  "Root",
		Role:  domain.RoleAdmin,
	}
}

func adminSummary() domain.UserSummary {
	return domain.UserSummary{ID: "u-1", Email: "root@voyago.dev", Name: "Root", Role: domain.RoleAdmin}
}

func newTestGuard(api *fakeAPI) *Guard {
	return NewGuard(api, zap.NewNop())
}

func TestHydrate_NoTokenSettlesAnonymousWithoutFetch(t *testing.T) {
	api := &fakeAPI{hasToken: false}
	guard := newTestGuard(api)

	if !guard.Snapshot().IsLoading {
		t.Fatal("expected new guard to start loading")
	}

	guard.Hydrate(context.Background())

	state := guard.Snapshot()
	if state.IsLoading {
		t.Fatal("expected hydration to settle")
	}
	if state.IsAuthenticated() {
		t.Fatal("expected anonymous state")
	}
	if api.currentCalls != 0 {
		t.Fatalf("expected no profile fetch, got %d", api.currentCalls)
	}
}

func TestHydrate_RejectedTokenClearsAndSettlesAnonymous(t *testing.T) {
	api := &fakeAPI{
		hasToken:   true,
		currentErr: &backend.APIError{Message: "token expired", StatusCode: 401},
	}
	guard := newTestGuard(api)

	guard.Hydrate(context.Background())

	state := guard.Snapshot()
	if state.IsAuthenticated() || state.IsLoading {
		t.Fatalf("expected settled anonymous state, got %+v", state)
	}
	if api.clearCalls != 1 {
		t.Fatalf("expected tokens cleared once, got %d", api.clearCalls)
	}
}

func TestHydrate_NonAdminClearsAndIsIdempotent(t *testing.T) {
	agent := adminUser()
	agent.Role = domain.RoleAgent
	api := &fakeAPI{hasToken: true, currentUser: agent}
	guard := newTestGuard(api)

	guard.Hydrate(context.Background())

	state := guard.Snapshot()
	if state.IsAuthenticated() {
		t.Fatal("non-admin identity must never be authenticated")
	}
	if api.clearCalls != 1 {
		t.Fatalf("expected tokens cleared once, got %d", api.clearCalls)
	}

	// Tokens are gone now, so the repeat behaves as the no-token case.
	guard.Hydrate(context.Background())
	if api.currentCalls != 1 {
		t.Fatalf("expected no further fetch after tokens were cleared, got %d", api.currentCalls)
	}
	if guard.Snapshot().IsAuthenticated() {
		t.Fatal("expected anonymous state after repeated hydration")
	}
}

func TestHydrate_AdminSettlesAuthenticated(t *testing.T) {
	api := &fakeAPI{hasToken: true, currentUser: adminUser()}
	guard := newTestGuard(api)

	guard.Hydrate(context.Background())

	state := guard.Snapshot()
	if !state.IsAuthenticated() {
		t.Fatal("expected authenticated admin state")
	}
	if state.User.ID != "u-1" {
		t.Fatalf("expected full record, got %+v", state.User)
	}
	if api.clearCalls != 0 {
		t.Fatalf("expected tokens untouched, got %d clears", api.clearCalls)
	}
}

func TestLogin_AdminNavigatesHomeWithFullRecord(t *testing.T) {
	resp := &backend.AuthResponse{AccessToken: "a", RefreshToken: "r", User: adminSummary()}
	api := &fakeAPI{loginResp: resp, currentUser: adminUser()}
	guard := newTestGuard(api)

	nav := guard.Login(context.Background(), "root@voyago.dev", "secret")

	if nav != NavigateHome {
		t.Fatalf("expected NavigateHome, got %v", nav)
	}
	state := guard.Snapshot()
	if !state.IsAuthenticated() || state.User.ID != "u-1" || state.User.Role != domain.RoleAdmin {
		t.Fatalf("expected settled admin record, got %+v", state.User)
	}
	if state.ErrorMessage != "" {
		t.Fatalf("expected no error message, got %q", state.ErrorMessage)
	}
	if api.currentCalls != 1 {
		t.Fatalf("expected exactly one profile fetch, got %d", api.currentCalls)
	}
}

func TestLogin_NonAdminIsDeniedWithoutProfileFetch(t *testing.T) {
	summary := adminSummary()
	summary.Role = domain.RoleAgent
	api := &fakeAPI{loginResp: &backend.AuthResponse{AccessToken: "a", RefreshToken: "r", User: summary}}
	guard := newTestGuard(api)

	nav := guard.Login(context.Background(), "agent@voyago.dev", "secret")

	if nav != NavigateNone {
		t.Fatalf("expected NavigateNone, got %v", nav)
	}
	state := guard.Snapshot()
	if state.IsAuthenticated() {
		t.Fatal("expected anonymous state")
	}
	if state.ErrorMessage != MsgAccessDenied {
		t.Fatalf("expected %q, got %q", MsgAccessDenied, state.ErrorMessage)
	}
	if api.currentCalls != 0 {
		t.Fatalf("expected no profile fetch for a denied login, got %d", api.currentCalls)
	}
	if api.clearCalls != 1 {
		t.Fatalf("expected tokens cleared once, got %d", api.clearCalls)
	}
}

func TestLogin_BackendRejectionSurfacesMessage(t *testing.T) {
	api := &fakeAPI{loginErr: &backend.APIError{Message: "Invalid credentials", StatusCode: 401}}
	guard := newTestGuard(api)

	nav := guard.Login(context.Background(), "root@voyago.dev", "wrong")

	if nav != NavigateNone {
		t.Fatalf("expected NavigateNone, got %v", nav)
	}
	state := guard.Snapshot()
	if state.ErrorMessage != "Invalid credentials" {
		t.Fatalf("expected verbatim backend message, got %q", state.ErrorMessage)
	}
	if state.IsAuthenticated() || state.IsLoading {
		t.Fatalf("expected settled anonymous state, got %+v", state)
	}
	if api.clearCalls != 0 {
		t.Fatal("tokens were never set and must stay untouched")
	}
	if api.hasToken {
		t.Fatal("rejected login must not leave tokens behind")
	}
}

func TestLogin_GenericFailureFallsBackToDefaultMessage(t *testing.T) {
	api := &fakeAPI{loginErr: errors.New("connection reset")}
	guard := newTestGuard(api)

	guard.Login(context.Background(), "root@voyago.dev", "secret")

	if msg := guard.Snapshot().ErrorMessage; msg != MsgLoginFailed {
		t.Fatalf("expected %q, got %q", MsgLoginFailed, msg)
	}
}

func TestLogout_AlwaysResetsEvenWhenRemoteFails(t *testing.T) {
	api := &fakeAPI{hasToken: true, currentUser: adminUser(), logoutErr: errors.New("backend down")}
	guard := newTestGuard(api)
	guard.Hydrate(context.Background())
	if !guard.Snapshot().IsAuthenticated() {
		t.Fatal("precondition: expected authenticated state")
	}

	nav := guard.Logout(context.Background())

	if nav != NavigateLogin {
		t.Fatalf("expected NavigateLogin, got %v", nav)
	}
	state := guard.Snapshot()
	if state.IsAuthenticated() || state.IsLoading {
		t.Fatalf("expected settled anonymous state, got %+v", state)
	}
	if api.logoutCalls != 1 {
		t.Fatalf("expected remote logout attempted, got %d", api.logoutCalls)
	}
}

func TestClearError_TouchesOnlyTheMessage(t *testing.T) {
	api := &fakeAPI{loginErr: &backend.APIError{Message: "Invalid credentials", StatusCode: 401}}
	guard := newTestGuard(api)
	guard.Login(context.Background(), "root@voyago.dev", "wrong")

	before := guard.Snapshot()
	guard.ClearError()
	after := guard.Snapshot()

	if after.ErrorMessage != "" {
		t.Fatalf("expected error cleared, got %q", after.ErrorMessage)
	}
	if after.IsLoading != before.IsLoading {
		t.Fatal("ClearError must not alter the loading flag")
	}
	if after.User != before.User {
		t.Fatal("ClearError must not alter the current user")
	}
}

// A logout racing a slow login supersedes it: the login's late result is
// discarded instead of re-populating the session.
func TestLogin_StaleResultDiscardedAfterLogout(t *testing.T) {
	resp := &backend.AuthResponse{AccessToken: "a", RefreshToken: "r", User: adminSummary()}
	api := &fakeAPI{loginResp: resp, currentUser: adminUser()}
	guard := newTestGuard(api)

	api.onLogin = func() {
		guard.Logout(context.Background())
	}

	nav := guard.Login(context.Background(), "root@voyago.dev", "secret")

	if nav != NavigateNone {
		t.Fatalf("expected stale login to be discarded, got %v", nav)
	}
	state := guard.Snapshot()
	if state.IsAuthenticated() {
		t.Fatal("stale login result must not re-populate the session")
	}
	if state.IsLoading {
		t.Fatal("expected settled state after supersession")
	}
}
