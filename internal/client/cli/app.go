// Package cli is the interactive front end of the portal client. It is a
// pure consumer of the auth coordinator and the catalog/result services;
// everything it prints flows from their public contracts.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/alpstech/portal/internal/client/api"
	"github.com/alpstech/portal/internal/client/auth"
	"github.com/alpstech/portal/internal/client/config"
	"github.com/alpstech/portal/internal/client/models"
	"github.com/alpstech/portal/internal/client/repositories/identity"
	"github.com/alpstech/portal/internal/client/services"
	"github.com/alpstech/portal/internal/client/session"
	"github.com/alpstech/portal/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeLocal   Mode = "local"
)

type App struct {
	config      *config.Config
	coordinator *auth.Coordinator
	apiClient   *api.Client

	courses     *services.CourseService
	results     *services.ResultService
	students    *services.StudentService
	dashboard   *services.DashboardService
	assignments *services.AssignmentService

	log    logging.Logger
	reader *bufio.Reader

	// mode is read by the REPL status line and written by the online status
	// watcher goroutine, so access goes through setMode/currentMode.
	modeMu sync.Mutex
	mode   Mode
}

// NewApp wires the client together: session database, identity repository
// (remote when an API endpoint is configured, the seeded local registry
// otherwise), coordinator and services.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.Default()

	db, err := session.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}
	store := session.NewSQLiteStore(db, log)

	a := &App{
		config: cfg,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}

	var repo identity.Repository
	if cfg.LocalFallback() {
		a.mode = ModeLocal
		repo = identity.NewLocalRepository(store)
		a.courses = services.NewCourseService(nil)
	} else {
		a.mode = ModeOnline
		a.apiClient = api.New(cfg.APIBaseURL, cfg.RequestTimeout, store, log)
		repo = identity.NewRemoteRepository(a.apiClient)
		a.courses = services.NewCourseService(a.apiClient)
		a.results = services.NewResultService(a.apiClient)
		a.students = services.NewStudentService(a.apiClient)
		a.dashboard = services.NewDashboardService(a.apiClient)
		a.assignments = services.NewAssignmentService(a.apiClient)
	}

	a.coordinator = auth.NewCoordinator(ctx, repo, store, &consoleNotifier{}, log)
	return a, nil
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		printlnFn(fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) currentMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) isLoggedIn() bool {
	return a.coordinator.CurrentUser() != nil
}

func (a *App) isAdmin() bool {
	user := a.coordinator.CurrentUser()
	return user != nil && user.Role == models.RoleAdmin
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

// StartOnlineStatusWatcher periodically checks backend reachability and
// flips the status line between online and offline. It is not started in
// local mode, where there is nothing to check.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			checkCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.apiClient.TestConnection(checkCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
