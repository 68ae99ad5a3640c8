// Package server initializes and runs the study-notes application server.
// It opens the database, applies migrations, wires services, and starts the
// HTTP API with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/studynotes/internal/logging"
	"github.com/dmitrijs2005/studynotes/internal/server/config"
	"github.com/dmitrijs2005/studynotes/internal/server/httpapi"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studynotes/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config            *config.Config
	logger            logging.Logger
	db                *sql.DB
	userService       *services.UserService
	subjectService    *services.SubjectService
	questionService   *services.QuestionService
	attachmentService *services.AttachmentService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		return nil, fmt.Errorf("repomanager init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &App{
		config:            cfg,
		logger:            logger,
		db:                db,
		userService:       services.NewUserService(db, rm, cfg),
		subjectService:    services.NewSubjectService(db, rm),
		questionService:   services.NewQuestionService(db, rm),
		attachmentService: services.NewAttachmentService(db, rm, cfg),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger,
		app.userService, app.subjectService, app.questionService, app.attachmentService,
		app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "Error closing db", "error", err)
	}
}
