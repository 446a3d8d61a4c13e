package authapi

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/tafuta/internal/common"
	"github.com/dmitrijs2005/tafuta/internal/logging"
)

// Default artificial latency, matching a slow mobile connection.
const (
	DefaultAuthDelay   = 1500 * time.Millisecond
	DefaultLogoutDelay = 500 * time.Millisecond
)

// Mock is an in-memory stand-in for a real authentication backend.
//
// It keeps a mutable user registry in process memory (lost on restart) and
// gates every call behind an artificial delay. The password argument is
// deliberately ignored on Login: any value passes. This is development stub
// behavior, not an authentication check.
type Mock struct {
	mu          sync.Mutex
	users       []User
	calls       map[string]int
	authDelay   time.Duration
	logoutDelay time.Duration
	logger      logging.Logger
}

// NewMock returns a Mock pre-seeded with one account
// (id "1", email "test@example.com") and default latency.
func NewMock(logger logging.Logger) *Mock {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Mock{
		users:       []User{{ID: "1", Email: "test@example.com"}},
		calls:       make(map[string]int),
		authDelay:   DefaultAuthDelay,
		logoutDelay: DefaultLogoutDelay,
		logger:      logger,
	}
}

// SetDelays overrides the simulated latency. Tests set both to zero.
func (m *Mock) SetDelays(auth, logout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.authDelay = auth
	m.logoutDelay = logout
}

// Login looks up a user by case-insensitive email after the simulated delay.
// The password is accepted unconditionally (mock-only behavior). The returned
// token is deterministically derived from the user id.
func (m *Mock) Login(ctx context.Context, email, password string) (*Result, error) {
	m.count("login")
	if err := m.wait(ctx, m.delay()); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			m.logger.Info(ctx, "mock login ok", "email", email)
			user := u
			return &Result{Token: common.TokenPrefix + u.ID, User: &user}, nil
		}
	}

	m.logger.Info(ctx, "mock login failed: user not found", "email", email)
	return nil, common.ErrInvalidCredentials
}

// Register creates a new account after the simulated delay, unless the email
// is already registered (case-insensitive).
func (m *Mock) Register(ctx context.Context, email, password string) (*Result, error) {
	m.count("register")
	if err := m.wait(ctx, m.delay()); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			m.logger.Info(ctx, "mock register failed: email exists", "email", email)
			return nil, common.ErrDuplicateAccount
		}
	}

	user := User{ID: uuid.NewString(), Email: email}
	m.users = append(m.users, user)
	m.logger.Info(ctx, "mock register ok", "email", email, "id", user.ID)
	return &Result{Token: common.TokenPrefix + user.ID, User: &user}, nil
}

// Logout always succeeds after a shorter delay and changes no state.
func (m *Mock) Logout(ctx context.Context) error {
	m.count("logout")
	m.mu.Lock()
	d := m.logoutDelay
	m.mu.Unlock()
	if err := m.wait(ctx, d); err != nil {
		return err
	}
	m.logger.Info(ctx, "mock logout ok")
	return nil
}

// Len reports the current registry size.
func (m *Mock) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// CallCount reports how many times the given operation
// ("login", "register", "logout") was invoked.
func (m *Mock) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *Mock) count(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[op]++
}

func (m *Mock) delay() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authDelay
}

// wait blocks for d or until ctx is canceled, whichever comes first.
func (m *Mock) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
