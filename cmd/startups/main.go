package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/config"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/db"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/landingpage"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/leancanvas"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/llm"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/logging"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/naming"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/repository"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/service"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/sprint"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/startupschool"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/storybrand"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(os.Getenv("STARTUPS_CONFIG"))
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck
	if cfg.File != "" {
		log.Debug("config loaded", zap.String("file", cfg.File))
	}

	app := &cli.App{
		Log:        log,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Version:    version,
		KitLimit:   cfg.KitParallel,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// History is optional; the calculators work without a database.
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		log.Warn("history disabled", zap.String("db_path", cfg.DBPath), zap.Error(err))
	} else {
		defer database.Close()
		uow := db.NewSQLiteUnitOfWork(database)
		app.Recorder = service.NewGenerationRecorder(uow, cfg.LLM.Model, service.NewLogUseCaseObserver(log))
		app.Artifacts = repository.NewSQLiteArtifactRepo(database)
	}

	if cfg.LLM.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LLM.LogCalls {
			observer = llm.NewLogObserver(log)
		}
		client, err := llm.NewClient(ctx, cfg.LLM, observer)
		if err != nil {
			return fmt.Errorf("creating llm client: %w", err)
		}
		app.Sprint = sprint.NewService(client)
		app.StoryBrand = storybrand.NewService(client)
		app.LeanCanvas = leancanvas.NewService(client)
		app.LandingPage = landingpage.NewService(client)
		app.School = startupschool.NewService(client)
		app.Naming = naming.NewService(client)
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
