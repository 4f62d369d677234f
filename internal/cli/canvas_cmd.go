package cli

import (
	"context"
	"fmt"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli/formatter"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/leancanvas"
	"github.com/spf13/cobra"
)

func newCanvasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "canvas",
		Aliases: []string{"lean"},
		Short:   "Lean Canvas, pivots and the AARRR funnel",
	}
	cmd.AddCommand(
		newBlocksCmd(),
		newPivotsCmd(),
		newAARRRCmd(),
		newFunnelCmd(),
		newCanvasGenerateCmd(app),
		newCanvasWizardCmd(app),
	)
	return cmd
}

func newBlocksCmd() *cobra.Command {
	var side, risk string
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "List canvas blocks in fill order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks := leancanvas.Blocks()
			switch {
			case side != "":
				blocks = leancanvas.BlocksBySide(leancanvas.Side(side))
			case risk != "":
				blocks = leancanvas.BlocksByRisk(leancanvas.Risk(risk))
			}
			return render(cmd, blocks, func() string {
				return formatter.FormatBlocks(blocks)
			})
		},
	}
	cmd.Flags().StringVar(&side, "side", "", "Only blocks on this side (product, market)")
	cmd.Flags().StringVar(&risk, "risk", "", "Only blocks carrying this risk (product, customer, market)")
	cmd.MarkFlagsMutuallyExclusive("side", "risk")
	return cmd
}

func newPivotsCmd() *cobra.Command {
	var block string
	cmd := &cobra.Command{
		Use:   "pivots [slug]",
		Short: "List pivot types, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pivots := leancanvas.Pivots()
			if len(args) == 1 {
				p, ok := leancanvas.PivotBySlug(args[0])
				if !ok {
					return fmt.Errorf("no pivot type %q", args[0])
				}
				pivots = []leancanvas.PivotType{p}
			} else if block != "" {
				pivots = leancanvas.PivotsForBlock(leancanvas.BlockKey(block))
			}
			return render(cmd, pivots, func() string {
				return formatter.FormatPivots(pivots)
			})
		},
	}
	cmd.Flags().StringVar(&block, "block", "", "Only pivots that rewrite this block")
	return cmd
}

func newAARRRCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aarrr",
		Short: "The pirate metrics funnel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stages := leancanvas.Stages()
			return render(cmd, stages, func() string {
				return formatter.FormatStages(stages)
			})
		},
	}
}

func newFunnelCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "funnel <count>...",
		Short:   "Step-to-step conversion of funnel counts",
		Example: "  startups canvas funnel 10000 1200 400 90 20",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := parseInts(args)
			if err != nil {
				return err
			}
			rates := leancanvas.FunnelConversion(counts)
			out := map[string]any{"counts": counts, "conversion": rates}
			return render(cmd, out, func() string {
				return formatter.FormatFunnel(leancanvas.Stages(), counts, rates)
			})
		},
	}
}

func newCanvasGenerateCmd(app *App) *cobra.Command {
	var (
		idea        leancanvas.Idea
		assumptions bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draft a Lean Canvas for an idea",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "name", "description"); err != nil {
				return err
			}
			if err := requireAI(app.LeanCanvas); err != nil {
				return err
			}
			var (
				canvas *leancanvas.Canvas
				risks  *leancanvas.Assumptions
			)
			err := app.spin(cmd, "Drafting canvas…", func(ctx context.Context) error {
				var err error
				if canvas, err = app.LeanCanvas.Canvas(ctx, idea); err != nil {
					return err
				}
				if assumptions {
					risks, err = app.LeanCanvas.RiskiestAssumptions(ctx, *canvas)
				}
				return err
			})
			if err != nil {
				return err
			}
			app.record(cmd.Context(), domain.FrameworkLeanCanvas, "canvas", idea, canvas)
			if risks != nil {
				app.record(cmd.Context(), domain.FrameworkLeanCanvas, "riskiest_assumptions", canvas, risks)
			}

			out := struct {
				Canvas      *leancanvas.Canvas      `json:"canvas"`
				Assumptions *leancanvas.Assumptions `json:"assumptions,omitempty"`
			}{canvas, risks}
			return render(cmd, out, func() string {
				s := formatter.FormatCanvas(*canvas)
				if risks != nil {
					s += "\n" + formatter.Header("Riskiest assumptions") + "\n" + formatter.FormatAssumptions(risks)
				}
				return s
			})
		},
	}
	cmd.Flags().StringVar(&idea.Name, "name", "", "Idea name")
	cmd.Flags().StringVar(&idea.Description, "description", "", "What the idea is")
	cmd.Flags().StringVar(&idea.Customer, "customer", "", "Target customer")
	cmd.Flags().BoolVar(&assumptions, "assumptions", false, "Also list the riskiest assumptions")
	return cmd
}

func newCanvasWizardCmd(app *App) *cobra.Command {
	var (
		pivots    bool
		learnings string
	)
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Fill in a Lean Canvas block by block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			ans := answers{}
			if err := canvasForm(ans).Run(); err != nil {
				return err
			}
			canvas := canvasFromAnswers(ans)
			app.record(cmd.Context(), domain.FrameworkLeanCanvas, "canvas_wizard", nil, canvas)

			var options *leancanvas.PivotOptions
			if pivots {
				if err := requireAI(app.LeanCanvas); err != nil {
					return err
				}
				req := leancanvas.PivotRequest{Canvas: canvas, Learnings: learnings}
				err := app.spin(cmd, "Looking for pivots…", func(ctx context.Context) error {
					var err error
					options, err = app.LeanCanvas.Pivots(ctx, req)
					return err
				})
				if err != nil {
					return err
				}
				app.record(cmd.Context(), domain.FrameworkLeanCanvas, "pivots", req, options)
			}

			out := struct {
				Canvas leancanvas.Canvas        `json:"canvas"`
				Pivots *leancanvas.PivotOptions `json:"pivots,omitempty"`
			}{canvas, options}
			return render(cmd, out, func() string {
				s := formatter.FormatCanvas(canvas)
				if options != nil {
					s += "\n" + formatter.Header("Pivot options") + "\n" + formatter.FormatPivotOptions(options)
				}
				return s
			})
		},
	}
	cmd.Flags().BoolVar(&pivots, "pivots", false, "Suggest pivots for the finished canvas")
	cmd.Flags().StringVar(&learnings, "learnings", "", "What experiments have taught you so far")
	return cmd
}
