package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli/formatter"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/landingpage"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/scoring"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newLandingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "landing",
		Short: "Audit and improve landing pages",
	}
	cmd.AddCommand(
		newAuditCmd(app),
		newHeadlineCmd(),
		newPowerWordsCmd(),
		newPricingCmd(),
		newPrioritizeCmd(),
		newHeadlinesCmd(app),
	)
	return cmd
}

func addProductFlags(fs *pflag.FlagSet, p *landingpage.Product) {
	fs.StringVar(&p.Name, "name", "", "Product name")
	fs.StringVar(&p.Description, "description", "", "What the product does")
	fs.StringVar(&p.Audience, "audience", "", "Who the page is for")
	fs.StringVar(&p.Benefit, "benefit", "", "The main benefit")
}

// loadPage fetches src when it is an http(s) URL and parses it as a local
// file otherwise; "-" reads stdin.
func (a *App) loadPage(cmd *cobra.Command, src string) (landingpage.Page, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		var page landingpage.Page
		err := a.spin(cmd, "Fetching "+src+"…", func(ctx context.Context) error {
			var err error
			page, err = landingpage.FetchPage(ctx, a.HTTPClient, src)
			return err
		})
		return page, err
	}
	if src == "-" {
		return landingpage.ParsePage(cmd.InOrStdin())
	}
	f, err := os.Open(src)
	if err != nil {
		return landingpage.Page{}, fmt.Errorf("opening %s: %w", src, err)
	}
	defer f.Close()
	return landingpage.ParsePage(f)
}

func newAuditCmd(app *App) *cobra.Command {
	var critique bool
	cmd := &cobra.Command{
		Use:     "audit <url|file|->",
		Short:   "Audit a landing page against conversion heuristics",
		Example: "  startups landing audit https://example.com\n  startups landing audit index.html --critique",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := app.loadPage(cmd, args[0])
			if err != nil {
				return err
			}
			report := landingpage.Audit(page)

			var review *landingpage.Critique
			if critique {
				if err := requireAI(app.LandingPage); err != nil {
					return err
				}
				err := app.spin(cmd, "Reviewing audit…", func(ctx context.Context) error {
					var err error
					review, err = app.LandingPage.Critique(ctx, report)
					return err
				})
				if err != nil {
					return err
				}
				app.record(cmd.Context(), domain.FrameworkLandingPage, "critique", report, review)
			}

			out := struct {
				Report   landingpage.AuditReport `json:"report"`
				Critique *landingpage.Critique   `json:"critique,omitempty"`
			}{report, review}
			return render(cmd, out, func() string {
				s := formatter.FormatAudit(report)
				if review != nil {
					s += "\n" + formatter.FormatCritique(review) + "\n"
				}
				return s
			})
		},
	}
	cmd.Flags().BoolVar(&critique, "critique", false, "Ask the model for prioritized fixes")
	return cmd
}

func newHeadlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "headline <text...>",
		Short: "Score a headline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := landingpage.AnalyzeHeadline(strings.Join(args, " "))
			return render(cmd, a, func() string {
				return formatter.FormatHeadline(a)
			})
		},
	}
}

func newPowerWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "power-words [text...]",
		Short: "List power words, or find them in text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				catalog := map[string][]string{}
				for _, c := range landingpage.PowerWordCategories() {
					catalog[string(c)] = landingpage.PowerWords(c)
				}
				return render(cmd, catalog, formatter.FormatPowerWordCatalog)
			}
			matches := landingpage.PowerWordsIn(strings.Join(args, " "))
			return render(cmd, matches, func() string {
				return formatter.FormatPowerWordMatches(matches)
			})
		},
	}
}

func newPricingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pricing [slug]",
		Short: "Pricing page tactics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hs := landingpage.PricingHeuristics()
			if len(args) == 1 {
				h, ok := landingpage.PricingHeuristicBySlug(args[0])
				if !ok {
					return fmt.Errorf("no pricing heuristic %q", args[0])
				}
				hs = []landingpage.PricingHeuristic{h}
			}
			return render(cmd, hs, func() string {
				return formatter.FormatPricing(hs)
			})
		},
	}
}

func newPrioritizeCmd() *cobra.Command {
	var (
		file   string
		method scoring.Method
	)
	cmd := &cobra.Command{
		Use:   "prioritize",
		Short: "Rank page experiments from a YAML or JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ideas []scoring.Idea
			if err := readYAMLFile(file, &ideas); err != nil {
				return err
			}
			ranked := landingpage.Prioritize(ideas, method)
			return render(cmd, rankedOutputs(ranked), func() string {
				return formatter.FormatRanked(method, ranked)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Experiments file (YAML or JSON list)")
	cmd.Flags().Var(newMethodValue(scoring.MethodPIE, &method), "method", "Scoring method: ice, rice or pie")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newHeadlinesCmd(app *App) *cobra.Command {
	var (
		p           landingpage.Product
		experiments bool
	)
	cmd := &cobra.Command{
		Use:   "headlines",
		Short: "Generate scored headlines for a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "name", "description"); err != nil {
				return err
			}
			if err := requireAI(app.LandingPage); err != nil {
				return err
			}
			var (
				set  *landingpage.HeadlineSet
				plan *landingpage.ExperimentPlan
			)
			err := app.spin(cmd, "Writing headlines…", func(ctx context.Context) error {
				var err error
				if set, err = app.LandingPage.Headlines(ctx, p); err != nil {
					return err
				}
				if experiments {
					plan, err = app.LandingPage.Experiments(ctx, p)
				}
				return err
			})
			if err != nil {
				return err
			}
			app.record(cmd.Context(), domain.FrameworkLandingPage, "headlines", p, set)
			if plan != nil {
				app.record(cmd.Context(), domain.FrameworkLandingPage, "experiments", p, plan)
			}

			out := struct {
				Headlines   *landingpage.HeadlineSet    `json:"headlines"`
				Experiments *landingpage.ExperimentPlan `json:"experiments,omitempty"`
			}{set, plan}
			return render(cmd, out, func() string {
				s := formatter.FormatHeadlineSet(set)
				if plan != nil {
					s += "\n" + formatter.Header("Experiments") + "\n" + formatter.FormatExperiments(plan)
				}
				return s
			})
		},
	}
	addProductFlags(cmd.Flags(), &p)
	cmd.Flags().BoolVar(&experiments, "experiments", false, "Also propose A/B tests ranked by ICE")
	return cmd
}
