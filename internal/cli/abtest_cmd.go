package cli

import (
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli/formatter"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/rpc"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/stats"
	"github.com/spf13/cobra"
)

func newABTestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "abtest",
		Aliases: []string{"ab"},
		Short:   "Plan and read A/B tests",
	}
	cmd.AddCommand(
		newSampleSizeCmd(),
		newSignificanceCmd(),
		newUpliftCmd(),
		newDurationCmd(),
	)
	return cmd
}

func newSampleSizeCmd() *cobra.Command {
	var (
		baseline, mde, power, significance float64
		variants                           int
	)
	cmd := &cobra.Command{
		Use:   "sample-size",
		Short: "Visitors needed per variant to detect a lift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "baseline", "mde"); err != nil {
				return err
			}
			n := stats.RequiredSampleSize(baseline, mde, power, significance)
			out := map[string]int{"per_variant": n, "total": n * variants}
			return render(cmd, out, func() string {
				return formatter.FormatSampleSize(n, variants)
			})
		},
	}
	cmd.Flags().Float64Var(&baseline, "baseline", 0, "Baseline conversion rate as a fraction, e.g. 0.05")
	cmd.Flags().Float64Var(&mde, "mde", 0, "Minimum detectable relative effect, e.g. 0.2 for +20%")
	cmd.Flags().Float64Var(&power, "power", stats.DefaultPower, "Statistical power")
	cmd.Flags().Float64Var(&significance, "significance", stats.DefaultSignificance, "Confidence level")
	cmd.Flags().IntVar(&variants, "variants", 2, "Number of arms including control")
	return cmd
}

type significanceOutput struct {
	stats.Result
	Uplift rpc.Number `json:"uplift"`
}

func newSignificanceCmd() *cobra.Command {
	var controlRate, controlSize, treatmentRate, treatmentSize, confidence float64
	cmd := &cobra.Command{
		Use:   "significance",
		Short: "Two-proportion z-test between control and treatment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "control-rate", "control-size", "treatment-rate", "treatment-size"); err != nil {
				return err
			}
			r := stats.SignificanceAt(controlRate, controlSize, treatmentRate, treatmentSize, confidence)
			uplift := stats.Uplift(controlRate, treatmentRate)
			return render(cmd, significanceOutput{Result: r, Uplift: rpc.NewNumber(uplift)}, func() string {
				return formatter.FormatSignificance(r, uplift)
			})
		},
	}
	cmd.Flags().Float64Var(&controlRate, "control-rate", 0, "Control conversion rate as a fraction")
	cmd.Flags().Float64Var(&controlSize, "control-size", 0, "Control visitors")
	cmd.Flags().Float64Var(&treatmentRate, "treatment-rate", 0, "Treatment conversion rate as a fraction")
	cmd.Flags().Float64Var(&treatmentSize, "treatment-size", 0, "Treatment visitors")
	cmd.Flags().Float64Var(&confidence, "confidence", stats.DefaultSignificance, "Confidence level")
	return cmd
}

func newUpliftCmd() *cobra.Command {
	var baseline, treatment float64
	cmd := &cobra.Command{
		Use:   "uplift",
		Short: "Percentage change from baseline to treatment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "baseline", "treatment"); err != nil {
				return err
			}
			u := stats.Uplift(baseline, treatment)
			return render(cmd, rpc.NewNumber(u), func() string {
				return formatter.FormatUplift(u)
			})
		},
	}
	cmd.Flags().Float64Var(&baseline, "baseline", 0, "Baseline rate")
	cmd.Flags().Float64Var(&treatment, "treatment", 0, "Treatment rate")
	return cmd
}

func newDurationCmd() *cobra.Command {
	var (
		sample, variants int
		daily            float64
	)
	cmd := &cobra.Command{
		Use:   "duration",
		Short: "Days a test must run to reach its sample size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "sample", "daily-visitors"); err != nil {
				return err
			}
			days := stats.EstimateDuration(sample, variants, daily)
			return render(cmd, map[string]int{"days": days}, func() string {
				return formatter.FormatDuration(days)
			})
		},
	}
	cmd.Flags().IntVar(&sample, "sample", 0, "Visitors needed per variant")
	cmd.Flags().IntVar(&variants, "variants", 2, "Number of arms including control")
	cmd.Flags().Float64Var(&daily, "daily-visitors", 0, "Visitors per day across the test")
	return cmd
}
