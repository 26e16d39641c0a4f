package cmd

import (
	"context"
	"errors"
	"fmt"

	"abroadctl/internal/api"
	"abroadctl/internal/config"
	"abroadctl/internal/logging"
	"abroadctl/internal/session"
	"abroadctl/internal/store"
)

// App bundles everything a command needs: configuration, logger, credential
// store, API client with its per-domain services, and the session manager
// with the persisted session already restored.
type App struct {
	Cfg     *config.Config
	Log     *logging.Logger
	Store   store.Store
	Client  *api.Client
	Session *session.Manager

	Auth         *api.AuthService
	Students     *api.StudentService
	Applications *api.ApplicationService
	Documents    *api.DocumentService
	Chats        *api.ChatService
	Users        *api.UserService
}

// newApp wires the application graph and restores the session from the
// credential store, mirroring the app-start data flow of the mobile client.
func newApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	st, err := store.NewFileStore(cfg.Credentials.Dir)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	// The client reads the token through the session manager at send time,
	// so it is constructed against the manager's token source.
	var mgr *session.Manager
	client := api.NewClient(cfg.API.BaseURL, func() string {
		if mgr == nil {
			return ""
		}
		return mgr.Token()
	}, log, api.WithTimeout(cfg.API.Timeout))

	auth := api.NewAuthService(client)
	mgr = session.NewManager(st, auth, log)
	mgr.Restore(ctx)

	return &App{
		Cfg:          cfg,
		Log:          log,
		Store:        st,
		Client:       client,
		Session:      mgr,
		Auth:         auth,
		Students:     api.NewStudentService(client),
		Applications: api.NewApplicationService(client),
		Documents:    api.NewDocumentService(client),
		Chats:        api.NewChatService(client),
		Users:        api.NewUserService(client),
	}, nil
}

// Close releases the app's resources.
func (a *App) Close() {
	if a.Log != nil {
		_ = a.Log.Close()
	}
}

// errNotLoggedIn tells the user how to start a session.
var errNotLoggedIn = errors.New("not logged in; run `abroadctl login` first")

// requireAuth fails unless a session is active.
func (a *App) requireAuth() error {
	if a.Session.CurrentUser() == nil {
		return errNotLoggedIn
	}
	return nil
}

// requireStaff fails unless the current user is an admin or advisor.
func (a *App) requireStaff() error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if !a.Session.IsAdminOrAdvisor() {
		return errors.New("this command is available to advisors and admins only")
	}
	return nil
}
