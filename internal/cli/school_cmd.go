package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli/formatter"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/startupschool"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSchoolCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "school",
		Aliases: []string{"yc"},
		Short:   "Startup School lectures, concepts and metrics",
	}
	cmd.AddCommand(
		newLecturesCmd(),
		newLectureCmd(app),
		newConceptsCmd(),
		newConceptCmd(app),
		newPhaseCmd(),
		newRunwayCmd(),
		newGrowthCmd(),
		newExplainCmd(app),
		newRecommendCmd(app),
		newOfficeHoursCmd(app),
	)
	return cmd
}

func newLecturesCmd() *cobra.Command {
	var (
		category string
		speaker  string
		phase    int
	)
	cmd := &cobra.Command{
		Use:   "lectures",
		Short: "List lectures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lectures := startupschool.Lectures()
			switch {
			case category != "":
				lectures = startupschool.LecturesByCategory(startupschool.Category(category))
			case speaker != "":
				lectures = startupschool.LecturesBySpeaker(speaker)
			case phase > 0:
				lectures = startupschool.LecturesForPhase(phase)
			}
			return render(cmd, lectures, func() string {
				return formatter.FormatLectures(lectures)
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "ideas, product, growth, fundraising, team or operations")
	cmd.Flags().StringVar(&speaker, "speaker", "", "Speaker name (substring match)")
	cmd.Flags().IntVar(&phase, "phase", 0, "Company phase number")
	cmd.MarkFlagsMutuallyExclusive("category", "speaker", "phase")
	return cmd
}

func newLectureCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lecture <id>",
		Short: "Show one lecture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, ok := startupschool.LectureByID(args[0])
			if !ok {
				return fmt.Errorf("no lecture %q", args[0])
			}
			return render(cmd, l, func() string {
				return app.markdown(formatter.LectureMarkdown(l))
			})
		},
	}
}

func newConceptsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "concepts",
		Short: "List concepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			concepts := startupschool.Concepts()
			if category != "" {
				concepts = startupschool.ConceptsByCategory(startupschool.Category(category))
			}
			return render(cmd, concepts, func() string {
				return formatter.FormatConcepts(concepts)
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only concepts in this category")
	return cmd
}

func newConceptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "concept <slug>",
		Short: "Define a concept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := startupschool.ConceptBySlug(args[0])
			if !ok {
				return fmt.Errorf("no concept %q", args[0])
			}
			return render(cmd, c, func() string {
				return app.markdown(formatter.ConceptMarkdown(c))
			})
		},
	}
}

func newPhaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phase [n]",
		Short: "Show company phases and their lectures",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				phases := startupschool.Phases()
				return render(cmd, phases, func() string {
					var b strings.Builder
					for _, p := range phases {
						fmt.Fprintf(&b, "%d. %s %s\n", p.Number, formatter.Bold(p.Name), formatter.Dim(p.Description))
					}
					return b.String()
				})
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("phase must be a number: %w", err)
			}
			p, ok := startupschool.PhaseByNumber(n)
			if !ok {
				return fmt.Errorf("no phase %d", n)
			}
			lectures := startupschool.LecturesForPhase(n)
			out := struct {
				startupschool.Phase
				Lectures []startupschool.Lecture `json:"lectures"`
			}{p, lectures}
			return render(cmd, out, func() string {
				return formatter.FormatPhase(p, lectures)
			})
		},
	}
}

func newRunwayCmd() *cobra.Command {
	var cash, burn, expenses, revenue, growth float64
	cmd := &cobra.Command{
		Use:   "runway",
		Short: "Months of runway and whether the company is default alive",
		Example: "  startups school runway --cash 500000 --burn 40000\n" +
			"  startups school runway --cash 500000 --expenses 60000 --revenue 20000 --growth 0.1",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "cash"); err != nil {
				return err
			}
			fs := cmd.Flags()
			if !fs.Changed("burn") && !fs.Changed("expenses") {
				return fmt.Errorf("one of --burn or --expenses is required")
			}
			if !fs.Changed("burn") {
				burn = expenses - revenue
			}
			report := formatter.RunwayReport{Months: startupschool.Runway(cash, burn)}
			if fs.Changed("expenses") {
				p := startupschool.DefaultAlive(cash, expenses, revenue, growth)
				report.Projection = &p
			}
			return render(cmd, report, func() string {
				return formatter.FormatRunway(report)
			})
		},
	}
	cmd.Flags().Float64Var(&cash, "cash", 0, "Cash in the bank")
	cmd.Flags().Float64Var(&burn, "burn", 0, "Net monthly burn")
	cmd.Flags().Float64Var(&expenses, "expenses", 0, "Monthly expenses, enables the default alive projection")
	cmd.Flags().Float64Var(&revenue, "revenue", 0, "Monthly revenue")
	cmd.Flags().Float64Var(&growth, "growth", 0, "Monthly revenue growth as a fraction, e.g. 0.1")
	return cmd
}

func newGrowthCmd() *cobra.Command {
	var (
		start, end float64
		weeks      int
	)
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Compound weekly growth rate between two values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "start", "end", "weeks"); err != nil {
				return err
			}
			rate := startupschool.WeeklyGrowthRate(start, end, weeks)
			return render(cmd, map[string]float64{"weekly_growth": rate}, func() string {
				return fmt.Sprintf("%s %s per week\n", formatter.Bold("Growth:"), formatter.Percent(rate))
			})
		},
	}
	cmd.Flags().Float64Var(&start, "start", 0, "Starting value (revenue, users)")
	cmd.Flags().Float64Var(&end, "end", 0, "Ending value")
	cmd.Flags().IntVar(&weeks, "weeks", 0, "Weeks between start and end")
	return cmd
}

func newExplainCmd(app *App) *cobra.Command {
	var q startupschool.ConceptQuestion
	cmd := &cobra.Command{
		Use:   "explain <concept>",
		Short: "Explain a concept with examples",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAI(app.School); err != nil {
				return err
			}
			q.Concept = strings.Join(args, " ")
			var e *startupschool.Explanation
			err := app.spin(cmd, "Explaining "+q.Concept+"…", func(ctx context.Context) error {
				var err error
				e, err = app.School.ExplainConcept(ctx, q)
				return err
			})
			if err != nil {
				return err
			}
			app.record(cmd.Context(), domain.FrameworkStartupSchool, "explanation", q, e)
			return render(cmd, e, func() string {
				return app.markdown(formatter.FormatExplanation(e))
			})
		},
	}
	cmd.Flags().StringVarP(&q.Question, "question", "q", "", "A specific question about the concept")
	return cmd
}

func addSituationFlags(fs *pflag.FlagSet, s *startupschool.Situation) {
	fs.IntVar(&s.Phase, "phase", 0, "Company phase number")
	fs.StringVar(&s.Description, "description", "", "What the company does and where it is")
	fs.StringVar(&s.Challenge, "challenge", "", "The current challenge")
	fs.StringVar(&s.Metrics, "metrics", "", "Key numbers, free form")
}

func newRecommendCmd(app *App) *cobra.Command {
	var sit startupschool.Situation
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Suggest lectures for your situation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "description"); err != nil {
				return err
			}
			if err := requireAI(app.School); err != nil {
				return err
			}
			var recs []startupschool.Recommendation
			err := app.spin(cmd, "Picking lectures…", func(ctx context.Context) error {
				var err error
				recs, err = app.School.RecommendLectures(ctx, sit)
				return err
			})
			if err != nil {
				return err
			}
			app.record(cmd.Context(), domain.FrameworkStartupSchool, "recommendations", sit, recs)
			return render(cmd, recs, func() string {
				return formatter.FormatRecommendations(recs)
			})
		},
	}
	addSituationFlags(cmd.Flags(), &sit)
	return cmd
}

func newOfficeHoursCmd(app *App) *cobra.Command {
	var sit startupschool.Situation
	cmd := &cobra.Command{
		Use:   "office-hours",
		Short: "Diagnose your situation like a YC partner would",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "description"); err != nil {
				return err
			}
			if err := requireAI(app.School); err != nil {
				return err
			}
			var advice *startupschool.Advice
			err := app.spin(cmd, "Thinking…", func(ctx context.Context) error {
				var err error
				advice, err = app.School.OfficeHours(ctx, sit)
				return err
			})
			if err != nil {
				return err
			}
			app.record(cmd.Context(), domain.FrameworkStartupSchool, "office_hours", sit, advice)
			return render(cmd, advice, func() string {
				return formatter.FormatAdvice(advice)
			})
		},
	}
	addSituationFlags(cmd.Flags(), &sit)
	return cmd
}
