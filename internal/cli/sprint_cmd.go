package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli/formatter"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/sprint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSprintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "The five-day Design Sprint",
	}
	cmd.AddCommand(
		newSprintDaysCmd(),
		newSprintDayCmd(),
		newSprintRolesCmd(),
		newSprintInterviewCmd(app),
		newSprintQuestionsCmd(app),
		newSprintHMWCmd(app),
	)
	return cmd
}

func addChallengeFlags(fs *pflag.FlagSet, c *sprint.Challenge) {
	fs.StringVar(&c.Company, "company", "", "Company running the sprint")
	fs.StringVar(&c.Product, "product", "", "Product or service")
	fs.StringVar(&c.Challenge, "challenge", "", "The problem the sprint tackles")
	fs.StringVar(&c.Customer, "customer", "", "Target customer")
}

func newSprintDaysCmd() *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "days",
		Short: "List the five sprint days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if start == "" {
				days := sprint.Days()
				return render(cmd, days, func() string {
					return formatter.FormatDays(days)
				})
			}
			date, err := time.ParseInLocation("2006-01-02", start, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --start %q: want YYYY-MM-DD", start)
			}
			sessions := sprint.Schedule(date)
			return render(cmd, sessions, func() string {
				rows := make([][]string, len(sessions))
				for i, s := range sessions {
					rows[i] = []string{s.Date.Format("Mon Jan 2"), s.Day.Name, s.Day.Theme}
				}
				return formatter.RenderTable([]string{"DATE", "DAY", "THEME"}, rows)
			})
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "Lay the sprint over the weekdays from this date (YYYY-MM-DD)")
	return cmd
}

func newSprintDayCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "day <number|name>",
		Short:   "Show one day's agenda",
		Example: "  startups sprint day 2\n  startups sprint day decide",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				d  sprint.Day
				ok bool
			)
			if n, err := strconv.Atoi(args[0]); err == nil {
				d, ok = sprint.DayByNumber(n)
			} else {
				d, ok = sprint.DayByName(args[0])
			}
			if !ok {
				return fmt.Errorf("no sprint day %q", args[0])
			}
			return render(cmd, d, func() string {
				return formatter.FormatDay(d)
			})
		},
	}
}

func newSprintRolesCmd() *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Who is in the sprint room",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := sprint.Roles()
			if role != "" {
				info, ok := sprint.RoleByKey(sprint.Role(role))
				if !ok {
					return fmt.Errorf("no sprint role %q", role)
				}
				roles = []sprint.RoleInfo{info}
			}
			return render(cmd, roles, func() string {
				return formatter.FormatRoles(roles)
			})
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "Show one role")
	return cmd
}

func newSprintInterviewCmd(app *App) *cobra.Command {
	var c sprint.Challenge
	cmd := &cobra.Command{
		Use:   "interview",
		Short: "The five-act customer interview; pass a challenge to tailor it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Challenge == "" {
				acts := sprint.InterviewActs()
				return render(cmd, acts, func() string {
					return formatter.FormatInterviewActs(acts)
				})
			}
			if err := requireAI(app.Sprint); err != nil {
				return err
			}
			var script *sprint.InterviewScript
			err := app.spin(cmd, "Writing interview script…", func(ctx context.Context) error {
				var err error
				script, err = app.Sprint.InterviewScript(ctx, c)
				return err
			})
			if err != nil {
				return err
			}
			app.record(cmd.Context(), domain.FrameworkSprint, "interview_script", c, script)
			return render(cmd, script, func() string {
				return formatter.FormatInterviewScript(script)
			})
		},
	}
	addChallengeFlags(cmd.Flags(), &c)
	return cmd
}

func newSprintQuestionsCmd(app *App) *cobra.Command {
	var c sprint.Challenge
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Draft the long-term goal and sprint questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "company", "challenge"); err != nil {
				return err
			}
			if err := requireAI(app.Sprint); err != nil {
				return err
			}
			var q *sprint.SprintQuestions
			err := app.spin(cmd, "Framing the sprint…", func(ctx context.Context) error {
				var err error
				q, err = app.Sprint.SprintQuestions(ctx, c)
				return err
			})
			if err != nil {
				return err
			}
			app.record(cmd.Context(), domain.FrameworkSprint, "sprint_questions", c, q)
			return render(cmd, q, func() string {
				return formatter.FormatSprintQuestions(q)
			})
		},
	}
	addChallengeFlags(cmd.Flags(), &c)
	return cmd
}

func newSprintHMWCmd(app *App) *cobra.Command {
	var c sprint.Challenge
	cmd := &cobra.Command{
		Use:   "hmw",
		Short: `Draft "How might we" notes`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "challenge"); err != nil {
				return err
			}
			if err := requireAI(app.Sprint); err != nil {
				return err
			}
			var notes *sprint.HowMightWeNotes
			err := app.spin(cmd, "Collecting opportunities…", func(ctx context.Context) error {
				var err error
				notes, err = app.Sprint.HowMightWe(ctx, c)
				return err
			})
			if err != nil {
				return err
			}
			app.record(cmd.Context(), domain.FrameworkSprint, "how_might_we", c, notes)
			return render(cmd, notes, func() string {
				return formatter.FormatHowMightWe(notes)
			})
		},
	}
	addChallengeFlags(cmd.Flags(), &c)
	return cmd
}
