// Package session holds the client's authentication state: the current token
// and user, plus the two busy flags the UI layer keys off. It is the single
// source of truth for "is a user signed in".
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/tafuta/internal/client/authapi"
	"github.com/dmitrijs2005/tafuta/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/tafuta/internal/common"
	"github.com/dmitrijs2005/tafuta/internal/logging"
)

// Route tells the navigation layer where the user belongs right now.
type Route int

const (
	// RouteLoading means the initial token load has not finished yet;
	// show a spinner and do not redirect.
	RouteLoading Route = iota
	// RouteLogin means no session exists; go to the sign-in screen.
	RouteLogin
	// RouteHome means a token is present; go to the authenticated area.
	RouteHome
)

// State is a point-in-time snapshot of the session.
//
// User and Token are set together or both absent, with one exception: after a
// persisted token is reloaded at startup, User is a placeholder that was never
// confirmed against the backend. See Manager.Initialize.
type State struct {
	User       *authapi.User
	Token      string
	IsLoading  bool
	IsMutating bool
}

// Route derives the navigation target from the snapshot.
func (s State) Route() Route {
	switch {
	case s.IsLoading:
		return RouteLoading
	case s.Token != "":
		return RouteHome
	default:
		return RouteLogin
	}
}

// Manager owns the session state and is the only code that mutates it.
//
// Mutating operations (Login, Register, Logout) are serialized behind an
// operation lock, so two in-flight mutations can never interleave their
// completions and clobber each other's state. Snapshots never block behind a
// slow mutation.
type Manager struct {
	api    authapi.API
	store  tokens.Repository
	logger logging.Logger

	opMu sync.Mutex // serializes mutating operations

	mu         sync.RWMutex // guards the fields below
	user       *authapi.User
	token      string
	isLoading  bool
	isMutating bool
}

// NewManager returns a Manager in the loading state. Call Initialize once at
// startup to resolve it.
func NewManager(api authapi.API, store tokens.Repository, logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Manager{
		api:       api,
		store:     store,
		logger:    logger,
		isLoading: true,
	}
}

// placeholderUser stands in for the real profile when a session is restored
// from storage. The stored token is trusted without re-validation, so the
// identity behind it is unknown until a real profile fetch exists.
func placeholderUser() *authapi.User {
	return &authapi.User{ID: "1", Email: "user from storage"}
}

// State returns a snapshot of the current session.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := State{
		Token:      m.token,
		IsLoading:  m.isLoading,
		IsMutating: m.isMutating,
	}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

// Initialize restores a previously persisted session. It runs once at process
// start and never fails visibly: a storage read error is logged and treated as
// "no token". When a token is found it is trusted as-is, without confirming it
// against the auth backend, and a placeholder user is installed.
// IsLoading is false once Initialize returns, regardless of outcome.
func (m *Manager) Initialize(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.isLoading = false
		m.mu.Unlock()
	}()

	stored, err := m.store.Get(ctx, common.TokenStorageKey)
	if err != nil {
		m.logger.Error(ctx, "failed to load token from storage", "error", err)
		return
	}
	if stored == "" {
		return
	}

	m.mu.Lock()
	m.token = stored
	m.user = placeholderUser()
	m.mu.Unlock()

	m.logger.Info(ctx, "session restored from storage")
}

// Login authenticates via the auth backend. On success the returned token is
// persisted and the in-memory session replaced; on failure prior state is left
// untouched and the backend's error is returned unchanged for the caller to
// display. IsMutating is set for the duration.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	return m.mutate(ctx, func(ctx context.Context) error {
		res, err := m.api.Login(ctx, email, password)
		if err != nil {
			return err
		}
		m.adopt(ctx, res)
		return nil
	})
}

// Register creates an account via the auth backend. Same contract as Login.
func (m *Manager) Register(ctx context.Context, email, password string) error {
	return m.mutate(ctx, func(ctx context.Context) error {
		res, err := m.api.Register(ctx, email, password)
		if err != nil {
			return err
		}
		m.adopt(ctx, res)
		return nil
	})
}

// Logout ends the session. The remote logout is best-effort: its failure is
// logged and swallowed. Local state and the persisted token are always
// cleared, so the user ends up signed out no matter what. Always returns nil.
func (m *Manager) Logout(ctx context.Context) error {
	return m.mutate(ctx, func(ctx context.Context) error {
		if err := m.api.Logout(ctx); err != nil {
			m.logger.Warn(ctx, "remote logout failed", "error", err)
		}

		m.mu.Lock()
		m.user = nil
		m.token = ""
		m.mu.Unlock()

		if err := m.store.Delete(ctx, common.TokenStorageKey); err != nil {
			m.logger.Error(ctx, "failed to delete token from storage", "error", err)
		}

		m.logger.Info(ctx, "signed out")
		return nil
	})
}

// mutate runs op with the operation lock held and the IsMutating flag raised.
func (m *Manager) mutate(ctx context.Context, op func(ctx context.Context) error) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	m.isMutating = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.isMutating = false
		m.mu.Unlock()
	}()

	return op(ctx)
}

// adopt persists the token from a successful auth result and installs the new
// session. A storage write failure is logged and absorbed: it must not block
// the sign-in (the session just won't survive a restart).
func (m *Manager) adopt(ctx context.Context, res *authapi.Result) {
	if err := m.store.Set(ctx, common.TokenStorageKey, res.Token); err != nil {
		m.logger.Error(ctx, "failed to persist token", "error", err)
	}

	m.mu.Lock()
	m.user = res.User
	m.token = res.Token
	m.mu.Unlock()

	m.logger.Info(ctx, "signed in", "email", res.User.Email)
}
