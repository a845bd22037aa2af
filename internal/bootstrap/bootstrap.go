package bootstrap

import (
	"database/sql"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"

	accountinadapter "studytrack/internal/modules/account/adapter/in"
	accountoutadapter "studytrack/internal/modules/account/adapter/out"
	accountin "studytrack/internal/modules/account/port/in"
	accountservice "studytrack/internal/modules/account/service"
	accountusecase "studytrack/internal/modules/account/usecase"
	feedinadapter "studytrack/internal/modules/feed/adapter/in"
	feedoutadapter "studytrack/internal/modules/feed/adapter/out"
	feedin "studytrack/internal/modules/feed/port/in"
	feedusecase "studytrack/internal/modules/feed/usecase"
	registryinadapter "studytrack/internal/modules/registry/adapter/in"
	registryoutadapter "studytrack/internal/modules/registry/adapter/out"
	registryservice "studytrack/internal/modules/registry/service"
	registryusecase "studytrack/internal/modules/registry/usecase"
	sessioninadapter "studytrack/internal/modules/session/adapter/in"
	sessionoutadapter "studytrack/internal/modules/session/adapter/out"
	sessionservice "studytrack/internal/modules/session/service"
	sessionusecase "studytrack/internal/modules/session/usecase"
	timelineinadapter "studytrack/internal/modules/timeline/adapter/in"
	timelineoutadapter "studytrack/internal/modules/timeline/adapter/out"
	timelineusecase "studytrack/internal/modules/timeline/usecase"
	"studytrack/internal/platform/clock"
	"studytrack/internal/platform/config"
	"studytrack/internal/platform/id"
	"studytrack/internal/platform/sqlite"
	"studytrack/internal/platform/tx"
	"studytrack/internal/ui/feedwatch"
)

type App struct {
	DB *sql.DB

	AccountUC accountin.Usecase
	FeedUC    feedin.Usecase

	AccountHTTP  accountinadapter.HTTPHandler
	RegistryHTTP registryinadapter.HTTPHandler
	SessionHTTP  sessioninadapter.HTTPHandler
	TimelineHTTP timelineinadapter.HTTPHandler
	FeedHTTP     feedinadapter.HTTPHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	db, err := sqlite.Open(cfg.DBPath())
	if err != nil {
		return nil, err
	}
	txm := tx.NewSQLManager(db)

	userStore, err := accountoutadapter.NewSQLiteUserStore(db)
	if err != nil {
		return nil, fmt.Errorf("new user store: %w", err)
	}
	tokenStore, err := accountoutadapter.NewSQLiteTokenStore(db)
	if err != nil {
		return nil, fmt.Errorf("new token store: %w", err)
	}
	accountUC := accountusecase.NewInteractor(
		accountservice.NewAccountService(clk, ids, userStore, tokenStore, cfg.BcryptCost, cfg.TokenTTLDays),
	)

	taskStore, err := registryoutadapter.NewSQLiteTaskStore(db)
	if err != nil {
		return nil, fmt.Errorf("new task store: %w", err)
	}
	registryUC := registryusecase.NewInteractor(registryservice.NewTaskService(clk, ids, taskStore))

	ledger, err := sessionoutadapter.NewSQLiteSessionLedger(db)
	if err != nil {
		return nil, fmt.Errorf("new session ledger: %w", err)
	}
	activeStore, err := sessionoutadapter.NewSQLiteActiveSessionStore(db)
	if err != nil {
		return nil, fmt.Errorf("new active session store: %w", err)
	}
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids, ledger, sessionoutadapter.NewSQLiteTaskStateStore(db), activeStore),
		txm,
	)

	timelineUC := timelineusecase.NewInteractor(clk, timelineoutadapter.NewSQLiteSessionReader(db))
	feedUC := feedusecase.NewInteractor(feedoutadapter.NewSQLiteRosterReader(db))

	return &App{
		DB:           db,
		AccountUC:    accountUC,
		FeedUC:       feedUC,
		AccountHTTP:  accountinadapter.NewHTTPHandler(accountUC),
		RegistryHTTP: registryinadapter.NewHTTPHandler(registryUC),
		SessionHTTP:  sessioninadapter.NewHTTPHandler(sessionUC),
		TimelineHTTP: timelineinadapter.NewHTTPHandler(timelineUC),
		FeedHTTP:     feedinadapter.NewHTTPHandler(feedUC),
	}, nil
}

// NewRouter mounts every module's HTTP surface under /api, with the
// account middleware guarding everything except register and login.
func NewRouter(app *App) *gin.Engine {
	router := gin.Default()

	public := router.Group("/api")
	app.AccountHTTP.RegisterPublic(public)

	api := router.Group("/api")
	api.Use(app.AccountHTTP.Middleware())
	app.AccountHTTP.Register(api)
	app.RegistryHTTP.Register(api)
	app.SessionHTTP.Register(api)
	app.TimelineHTTP.Register(api)
	app.FeedHTTP.Register(api)

	return router
}

func RunServer(cfg config.Config, app *App) error {
	return NewRouter(app).Run(cfg.Addr)
}

func RunFeedWatch(app *App, interval time.Duration) error {
	program := tea.NewProgram(feedwatch.NewModel(app.FeedUC, interval), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
