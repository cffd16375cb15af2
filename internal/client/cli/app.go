package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/resumeportal/internal/client/client"
	"github.com/dmitrijs2005/resumeportal/internal/client/config"
	"github.com/dmitrijs2005/resumeportal/internal/client/services"
	"github.com/dmitrijs2005/resumeportal/internal/client/session"
	"github.com/dmitrijs2005/resumeportal/internal/client/storage"
	"github.com/dmitrijs2005/resumeportal/internal/filex"
	"github.com/dmitrijs2005/resumeportal/internal/logging"
)

// tokenStore is what a session backend must offer the CLI: token persistence
// plus the remembered login e-mail.
type tokenStore interface {
	session.TokenStore
	services.EmailMemory
}

type App struct {
	config  *config.Config
	auth    services.AuthService
	resumes services.ResumeService
	router  *router
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
	closers []func() error
}

// NewApp wires storage, the session manager, the HTTP facade and the services
// for cfg. Close releases everything NewApp opened.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sm := session.NewManager(store, session.WithLogger(log.With("component", "session")))
	api := client.NewHTTPClient(cfg.APIEndpoint, sm, client.WithLogger(log.With("component", "api")))

	a := &App{
		config:  cfg,
		auth:    services.NewAuthService(api, sm, store, log),
		resumes: services.NewResumeService(api, sm, log),
		router:  newRouter(),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     log,
	}

	unsubscribe := sm.Subscribe(func(e session.Event) {
		if e == session.EventLoggedOut {
			a.router.Navigate(services.RouteRoot)
		}
	})
	a.closers = []func() error{
		func() error { unsubscribe(); return nil },
		api.Close,
		closeStore,
	}
	return a, nil
}

func openStore(ctx context.Context, cfg *config.Config) (tokenStore, func() error, error) {
	if cfg.Ephemeral {
		return storage.NewMemoryTokenStore(), func() error { return nil }, nil
	}
	if err := filex.EnsureParentDir(cfg.StoragePath); err != nil {
		return nil, nil, err
	}
	db, err := storage.InitDatabase(ctx, cfg.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open session database %q: %w", cfg.StoragePath, err)
	}
	return storage.NewTokenStore(db), db.Close, nil
}

// Close runs the closers registered by NewApp and joins their errors.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Run picks the landing route from the stored session and blocks in the REPL
// until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.router.Navigate(a.auth.Landing(ctx))
	a.log.Debug(ctx, "client started", "endpoint", a.config.APIEndpoint, "route", a.router.Current())

	fmt.Fprintln(a.out, "Welcome to the resume portal (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) route() services.Route {
	return a.router.Current()
}

// status is the prompt suffix: "email (route)" when logged in.
func (a *App) status() string {
	r := a.router.Current()
	if r == services.RouteRoot {
		return fmt.Sprintf("(%s)", r)
	}
	c, err := a.auth.WhoAmI(context.Background())
	if err != nil || c == nil || c.Email == "" {
		return fmt.Sprintf("(%s)", r)
	}
	return fmt.Sprintf("%s (%s)", c.Email, r)
}
