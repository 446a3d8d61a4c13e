package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/tafuta/internal/client/authapi"
	"github.com/dmitrijs2005/tafuta/internal/client/config"
	"github.com/dmitrijs2005/tafuta/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/tafuta/internal/client/session"
	"github.com/dmitrijs2005/tafuta/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionIface is the slice of the session manager the CLI depends on.
// Tests provide a fake.
type sessionIface interface {
	Initialize(ctx context.Context)
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	State() session.State
}

type App struct {
	config  *config.Config
	session sessionIface
	reader  *bufio.Reader
	out     io.Writer
	db      *sql.DB
}

// NewApp builds the client: token store and auth backend are selected here,
// once, from configuration.
func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	ctx := context.Background()

	var store tokens.Repository
	var db *sql.DB
	switch cfg.StorageBackend {
	case config.StorageSQLite:
		var err error
		db, err = tokens.Open(ctx, cfg.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open token store: %w", err)
		}
		store = tokens.NewSQLiteRepository(db)
	case config.StorageFile:
		var err error
		store, err = tokens.NewFileRepository(cfg.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open token store: %w", err)
		}
	case config.StorageMemory:
		store = tokens.NewMemoryRepository()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	var api authapi.API
	switch cfg.AuthBackend {
	case config.AuthMock:
		mock := authapi.NewMock(logger)
		mock.SetDelays(cfg.AuthDelay, cfg.LogoutDelay)
		api = mock
	case config.AuthHTTP:
		api = authapi.NewHTTPClient(cfg.ServerEndpointURL)
	default:
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("unknown auth backend %q", cfg.AuthBackend)
	}

	return &App{
		config:  cfg,
		session: session.NewManager(api, store, logger),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		db:      db,
	}, nil
}

// Run restores the persisted session and enters the REPL. Blocks until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.session.Initialize(ctx)

	fmt.Fprintln(a.out, "Welcome to Tafuta (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Route() == session.RouteHome
}

// getStatus renders the prompt suffix from the session route, standing in
// for the app's navigation guard.
func (a *App) getStatus() string {
	s := a.session.State()
	switch s.Route() {
	case session.RouteLoading:
		return "(loading)"
	case session.RouteHome:
		if s.User != nil {
			return fmt.Sprintf("(%s)", s.User.Email)
		}
		return "(signed in)"
	default:
		return "(signed out)"
	}
}
