package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/restomate/poscli/internal/client"
	"github.com/restomate/poscli/internal/config"
	"github.com/restomate/poscli/internal/logging"
	"github.com/restomate/poscli/internal/session"

	_ "modernc.org/sqlite"
)

// App wires the session store, the gateway client and the session manager
// behind the REPL.
type App struct {
	config  *config.Config
	store   *session.SQLiteStore
	api     client.Client
	manager *session.Manager
	reader  *bufio.Reader
	log     logging.Logger
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	store, err := session.OpenSQLiteStore(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing session store: %w", err)
	}

	app := &App{config: c, store: store, reader: bufio.NewReader(os.Stdin), log: log}

	// The auth-lost hook resolves app.manager at call time; the manager is
	// wired below, before any request can be issued.
	api := client.NewRESTClient(c.ServerBaseURL, c.RequestTimeout,
		client.TokenSourceFunc(store.Retrieve), log,
		client.WithAuthLostHandler(func() {
			app.manager.AuthorizationLost(context.Background())
		}))

	app.api = api
	app.manager = session.NewManager(store, api, newTerminalNotifier(os.Stdout), app, log)

	return app, nil
}

// ToLogin implements session.Navigator. In a terminal there is no URL to
// change; the redirect signal is a prompt to authenticate again.
func (a *App) ToLogin() {
	fmt.Println("Session expired — please log in again.")
}

// Run restores the persisted session and hands control to the REPL. The
// restore resolves before any command can be dispatched, so the gate never
// sees the in-flight startup state.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.manager.Restore(ctx)

	fmt.Println("Restomate POS admin console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the session store.
func (a *App) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn(context.Background(), "closing session store", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.manager.IsAuthenticated()
}

func (a *App) authorize(dest session.Destination) session.Decision {
	return a.manager.Authorize(dest)
}

// status renders the prompt suffix: username and role when authenticated.
func (a *App) status() string {
	user := a.manager.Identity()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", user.Username, user.Role)
}
