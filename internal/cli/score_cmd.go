package cli

import (
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli/formatter"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/rpc"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/scoring"
	"github.com/spf13/cobra"
)

func newScoreCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Prioritize ideas with ICE, RICE or PIE",
	}
	cmd.AddCommand(
		newScoreICECmd(),
		newScoreRICECmd(),
		newScorePIECmd(),
		newScoreRankCmd(),
	)
	return cmd
}

func printScore(cmd *cobra.Command, method scoring.Method, score float64) error {
	return render(cmd, rpc.NewNumber(score), func() string {
		return formatter.FormatScore(method, score)
	})
}

func newScoreICECmd() *cobra.Command {
	var impact, confidence, ease float64
	cmd := &cobra.Command{
		Use:   "ice",
		Short: "Impact × Confidence × Ease",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "impact", "confidence", "ease"); err != nil {
				return err
			}
			return printScore(cmd, scoring.MethodICE, scoring.ICE(impact, confidence, ease))
		},
	}
	cmd.Flags().Float64Var(&impact, "impact", 0, "Impact, usually 1-10")
	cmd.Flags().Float64Var(&confidence, "confidence", 0, "Confidence, usually 1-10")
	cmd.Flags().Float64Var(&ease, "ease", 0, "Ease, usually 1-10")
	return cmd
}

func newScoreRICECmd() *cobra.Command {
	var reach, impact, confidence, effort float64
	cmd := &cobra.Command{
		Use:   "rice",
		Short: "(Reach × Impact × Confidence) / Effort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "reach", "impact", "confidence", "effort"); err != nil {
				return err
			}
			return printScore(cmd, scoring.MethodRICE, scoring.RICE(reach, impact, confidence, effort))
		},
	}
	cmd.Flags().Float64Var(&reach, "reach", 0, "People reached per period")
	cmd.Flags().Float64Var(&impact, "impact", 0, "Impact per person (0.25, 0.5, 1, 2, 3)")
	cmd.Flags().Float64Var(&confidence, "confidence", 0, "Confidence as a fraction, e.g. 0.8")
	cmd.Flags().Float64Var(&effort, "effort", 0, "Effort in person-months")
	return cmd
}

func newScorePIECmd() *cobra.Command {
	var potential, importance, ease float64
	cmd := &cobra.Command{
		Use:   "pie",
		Short: "Mean of Potential, Importance and Ease",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "potential", "importance", "ease"); err != nil {
				return err
			}
			return printScore(cmd, scoring.MethodPIE, scoring.PIE(potential, importance, ease))
		},
	}
	cmd.Flags().Float64Var(&potential, "potential", 0, "Room for improvement, 1-10")
	cmd.Flags().Float64Var(&importance, "importance", 0, "Value of the traffic, 1-10")
	cmd.Flags().Float64Var(&ease, "ease", 0, "Ease of implementation, 1-10")
	return cmd
}

// rankedOutput is a ranked idea whose score survives JSON encoding.
type rankedOutput struct {
	Rank int          `json:"rank"`
	Idea scoring.Idea `json:"idea"`
	rpc.Number
}

func rankedOutputs(ranked []scoring.Ranked) []rankedOutput {
	out := make([]rankedOutput, len(ranked))
	for i, r := range ranked {
		out[i] = rankedOutput{Rank: r.Rank, Idea: r.Idea, Number: rpc.NewNumber(r.Score)}
	}
	return out
}

func newScoreRankCmd() *cobra.Command {
	var (
		file   string
		method scoring.Method
	)
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank ideas from a YAML or JSON file",
		Example: `  startups score rank --file ideas.yaml --method rice

  # ideas.yaml
  - name: Onboarding checklist
    reach: 800
    impact: 2
    confidence: 0.8
    effort: 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ideas []scoring.Idea
			if err := readYAMLFile(file, &ideas); err != nil {
				return err
			}
			ranked := scoring.Rank(ideas, method)
			return render(cmd, rankedOutputs(ranked), func() string {
				return formatter.FormatRanked(method, ranked)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Ideas file (YAML or JSON list)")
	cmd.Flags().Var(newMethodValue(scoring.MethodICE, &method), "method", "Scoring method: ice, rice or pie")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
