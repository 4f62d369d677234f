package cli

import (
	"context"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli/formatter"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/launchkit"
	"github.com/spf13/cobra"
)

func newKitCmd(app *App) *cobra.Command {
	var (
		idea     launchkit.Idea
		file     string
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "kit",
		Short: "Generate names, headlines, a canvas and a brand script in one go",
		Example: "  startups kit --name PayNudge --description \"invoice reminders\" --customer freelancers\n" +
			"  startups kit --file idea.yaml --parallel 4",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				if err := readYAMLFile(file, &idea); err != nil {
					return err
				}
			} else if err := requireFlags(cmd.Flags(), "name", "description", "customer"); err != nil {
				return err
			}
			gens := launchkit.Generators{
				StoryBrand:  app.StoryBrand,
				LeanCanvas:  app.LeanCanvas,
				Naming:      app.Naming,
				LandingPage: app.LandingPage,
			}
			if gens.StoryBrand == nil && gens.LeanCanvas == nil && gens.Naming == nil && gens.LandingPage == nil {
				return ErrAIDisabled
			}
			if !cmd.Flags().Changed("parallel") && app.KitLimit != 0 {
				parallel = app.KitLimit
			}

			var kit *launchkit.Kit
			err := app.spin(cmd, "Building launch kit…", func(ctx context.Context) error {
				var err error
				kit, err = launchkit.Build(ctx, gens, idea, launchkit.WithLimit(parallel))
				return err
			})
			if err != nil {
				return err
			}
			app.recordKit(cmd.Context(), kit.Generations())
			return render(cmd, kit, func() string {
				return formatter.FormatKit(kit)
			})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&idea.Name, "name", "", "Working name")
	fs.StringVar(&idea.Description, "description", "", "What the product does")
	fs.StringVar(&idea.Customer, "customer", "", "Who it is for")
	fs.StringVar(&idea.Problem, "problem", "", "The problem it solves")
	fs.StringVar(&idea.Industry, "industry", "", "Industry")
	fs.StringVarP(&file, "file", "f", "", "Read the idea from a YAML or JSON file")
	fs.IntVarP(&parallel, "parallel", "p", launchkit.DefaultLimit, "Generators to run at once (0 for all)")
	cmd.MarkFlagsMutuallyExclusive("file", "name")
	return cmd
}
