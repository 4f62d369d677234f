package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli/formatter"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/repository"
	"github.com/spf13/cobra"
)

// errNoHistory is returned by history commands when no database is open.
var errNoHistory = errors.New("history is unavailable: no database")

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past generations",
	}
	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryDeleteCmd(app),
	)
	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var (
		framework string
		kit       string
		limit     int
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List generations, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Artifacts == nil {
				return errNoHistory
			}
			f := repository.ArtifactFilter{KitID: kit, Limit: limit}
			if framework != "" {
				fw, ok := domain.ParseFramework(framework)
				if !ok {
					return fmt.Errorf("unknown framework %q", framework)
				}
				f.Framework = fw
			}
			artifacts, err := app.Artifacts.List(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}
			return render(cmd, artifacts, func() string {
				return formatter.FormatArtifacts(artifacts, time.Now())
			})
		},
	}
	cmd.Flags().StringVar(&framework, "framework", "", "Only this framework")
	cmd.Flags().StringVar(&kit, "kit", "", "Only artifacts from this launch kit")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Show at most this many (0 for all)")
	return cmd
}

// findArtifact resolves a full ID or the unique artifact whose ID starts
// with id, as printed by history list.
func (a *App) findArtifact(cmd *cobra.Command, id string) (*domain.Artifact, error) {
	if a.Artifacts == nil {
		return nil, errNoHistory
	}
	artifact, err := a.Artifacts.GetByID(cmd.Context(), id)
	if err == nil || !errors.Is(err, repository.ErrNotFound) {
		return artifact, err
	}
	all, err := a.Artifacts.List(cmd.Context(), repository.ArtifactFilter{})
	if err != nil {
		return nil, err
	}
	var match *domain.Artifact
	for _, c := range all {
		if !strings.HasPrefix(c.ID, id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("id %q is ambiguous", id)
		}
		match = c
	}
	if match == nil {
		return nil, fmt.Errorf("artifact %s: %w", id, repository.ErrNotFound)
	}
	return match, nil
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one generation with its input and output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			artifact, err := app.findArtifact(cmd, args[0])
			if err != nil {
				return err
			}
			return render(cmd, artifact, func() string {
				return formatter.FormatArtifact(artifact)
			})
		},
	}
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete one generation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			artifact, err := app.findArtifact(cmd, args[0])
			if err != nil {
				return err
			}
			if err := app.Artifacts.Delete(cmd.Context(), artifact.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s %s\n", artifact.ID, artifact.Framework, artifact.Kind)
			return nil
		},
	}
}
