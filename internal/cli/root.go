package cli

import (
	"errors"
	"net/http"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/landingpage"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/leancanvas"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/logging"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/naming"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/repository"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/service"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/sprint"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/startupschool"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/storybrand"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrAIDisabled is returned by generator commands when no model is configured.
var ErrAIDisabled = errors.New("AI features are disabled: set llm.enabled in startups.yaml or STARTUPS_LLM_ENABLED=true")

// App holds the services and settings CLI commands run against. Generator
// services are nil when the model is disabled; Recorder and Artifacts are
// nil when the database could not be opened.
type App struct {
	Sprint      sprint.Service
	StoryBrand  storybrand.Service
	LeanCanvas  leancanvas.Service
	LandingPage landingpage.Service
	School      startupschool.Service
	Naming      naming.Service

	Recorder  service.GenerationRecorder
	Artifacts repository.ArtifactRepo

	Log        *zap.Logger
	HTTPClient *http.Client
	Version    string
	// KitLimit caps concurrent generators in the kit command.
	KitLimit int

	// IsInteractive reports whether the terminal can run forms and
	// spinners. Nil means not interactive.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

// NewRootCmd creates the top-level "startups" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "startups",
		Short:         "Frameworks and calculators for building a startup",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("log-level") {
				return nil
			}
			log, err := logging.New(logLevel, false)
			if err != nil {
				return err
			}
			app.Log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = app.logger().Sync()
		},
	}

	root.PersistentFlags().Bool(flagJSON, false, "Print results as JSON")
	root.PersistentFlags().Bool(flagYAML, false, "Print results as YAML")
	root.MarkFlagsMutuallyExclusive(flagJSON, flagYAML)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	root.AddCommand(
		newScoreCmd(app),
		newABTestCmd(app),
		newTextCmd(app),
		newSprintCmd(app),
		newStoryBrandCmd(app),
		newCanvasCmd(app),
		newLandingCmd(app),
		newSchoolCmd(app),
		newNamesCmd(app),
		newKitCmd(app),
		newHistoryCmd(app),
		newServeCmd(app),
		newVersionCmd(app),
	)

	return root
}
