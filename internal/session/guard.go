package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/voyago/admin-panel/internal/backend"
	"github.com/voyago/admin-panel/internal/domain"
)

// Operator-facing messages. The denial text is part of the panel's contract
// with its tests and must not drift.
const (
	MsgLoginFailed  = "Login failed."
	MsgAccessDenied = "Access denied. Admin privileges required."
)

// AuthAPI is the narrow backend surface the guard depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*backend.AuthResponse, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	ClearTokens(ctx context.Context)
}

// Navigation tells the caller where to send the operator after a transition.
type Navigation int

const (
	NavigateNone Navigation = iota
	NavigateHome
	NavigateLogin
)

// State is the read surface of the guard. IsAuthenticated is derived and
// gates UI only; the backend re-validates every authenticated request.
type State struct {
	User         *domain.User
	IsLoading    bool
	ErrorMessage string
}

// IsAuthenticated reports whether an admin identity is settled.
func (s State) IsAuthenticated() bool {
	return s.User != nil
}

// Guard owns the panel's authentication state. It admits only ADMIN
// identities, re-verifying the role on every hydration and login; the role is
// never trusted from a stale cache. Every operation absorbs its failures into
// state rather than returning errors.
//
// Each hydrate/login tags its work with a monotonic generation; a result
// whose generation has been superseded (by a logout or a later attempt) is
// discarded instead of overwriting newer state.
type Guard struct {
	api AuthAPI
	log *zap.Logger

	mu      sync.Mutex
	user    *domain.User
	loading bool
	errMsg  string
	gen     uint64
}

// NewGuard creates a guard in the hydrating state. Callers are expected to
// run Hydrate once at startup.
func NewGuard(api AuthAPI, logger *zap.Logger) *Guard {
	return &Guard{api: api, log: logger, loading: true}
}

// Snapshot returns the current state.
func (g *Guard) Snapshot() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return State{User: g.user, IsLoading: g.loading, ErrorMessage: g.errMsg}
}

// Hydrate reconstructs the session from stored tokens. With no token present
// it settles anonymous without touching the network. Any fetch failure, and
// any identity whose role is not ADMIN, clears tokens and settles anonymous.
func (g *Guard) Hydrate(ctx context.Context) {
	gen := g.begin()

	if !g.api.IsAuthenticated(ctx) {
		g.settle(gen, nil)
		return
	}

	user, err := g.api.CurrentUser(ctx)
	if err != nil {
		g.log.Info("hydration rejected", zap.Error(err))
		g.api.ClearTokens(ctx)
		g.settle(gen, nil)
		return
	}
	if user.Role != domain.RoleAdmin {
		g.log.Info("hydration denied for non-admin", zap.String("role", string(user.Role)))
		g.api.ClearTokens(ctx)
		g.settle(gen, nil)
		return
	}

	g.settle(gen, user)
}

// Login authenticates the operator. The login response carries only a user
// summary, so on an ADMIN role a second fetch obtains the authoritative full
// record before the session is marked authenticated. Returns NavigateHome
// exactly when that record is settled.
func (g *Guard) Login(ctx context.Context, email, password string) Navigation {
	gen := g.begin()

	resp, err := g.api.Login(ctx, email, password)
	if err != nil {
		g.fail(gen, loginMessage(err))
		return NavigateNone
	}

	if resp.User.Role != domain.RoleAdmin {
		g.api.ClearTokens(ctx)
		g.fail(gen, MsgAccessDenied)
		return NavigateNone
	}

	user, err := g.api.CurrentUser(ctx)
	if err != nil {
		g.api.ClearTokens(ctx)
		g.fail(gen, loginMessage(err))
		return NavigateNone
	}

	if !g.settle(gen, user) {
		return NavigateNone
	}
	return NavigateHome
}

// Logout ends the session. The remote call is best-effort; the local reset
// runs on every exit path. Bumping the generation here discards any login or
// hydration still in flight.
func (g *Guard) Logout(ctx context.Context) Navigation {
	g.mu.Lock()
	g.gen++
	g.mu.Unlock()

	if err := g.api.Logout(ctx); err != nil {
		g.log.Warn("remote logout failed", zap.Error(err))
	}

	g.mu.Lock()
	g.user = nil
	g.loading = false
	g.mu.Unlock()
	return NavigateLogin
}

// ClearError dismisses the error message without touching the rest of the
// state.
func (g *Guard) ClearError() {
	g.mu.Lock()
	g.errMsg = ""
	g.mu.Unlock()
}

// begin marks a new hydrate/login attempt and returns its generation.
func (g *Guard) begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.errMsg = ""
	g.loading = true
	g.gen++
	return g.gen
}

// settle applies the attempt's outcome unless it has been superseded.
// Reports whether the result was applied.
func (g *Guard) settle(gen uint64, user *domain.User) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.gen {
		return false
	}
	g.user = user
	g.loading = false
	return true
}

// fail records a user-visible error unless the attempt has been superseded.
func (g *Guard) fail(gen uint64, msg string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.gen {
		return
	}
	g.user = nil
	g.loading = false
	g.errMsg = msg
}

func loginMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return MsgLoginFailed
}
