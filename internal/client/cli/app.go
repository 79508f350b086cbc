package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/config"
	"github.com/saytruth/saytruth/internal/client/services"
	"github.com/saytruth/saytruth/internal/client/session"
	"github.com/saytruth/saytruth/internal/client/store"
	"github.com/saytruth/saytruth/internal/logging"
)

// App bundles the services behind the REPL commands.
type App struct {
	config   *config.Config
	session  *session.Controller
	links    *services.LinkService
	messages *services.MessageService
	users    *services.UserService
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB

	// last fetched inbox, so commands can address messages by id
	lastInbox *api.Inbox
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	st, db, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	apiClient := api.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)
	sess := session.NewController(apiClient, st, log)

	return &App{
		config:   c,
		session:  sess,
		links:    services.NewLinkService(apiClient, sess, log),
		messages: services.NewMessageService(apiClient, log),
		users:    services.NewUserService(apiClient, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		db:       db,
	}, nil
}

// Run restores the session and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	state := a.session.Restore(ctx)
	if state.IsAuthenticated && state.CurrentUser != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", state.CurrentUser.Username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

func (a *App) status() string {
	s := a.session.State()
	if s.CurrentUser != nil {
		return fmt.Sprintf("(%s)", s.CurrentUser.Username)
	}
	if s.IsAuthenticated {
		return "(logged in)"
	}
	return "(guest)"
}
