package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli/formatter"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/storybrand"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newStoryBrandCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "storybrand",
		Aliases: []string{"sb"},
		Short:   "Clarify your message with the SB7 framework",
	}
	cmd.AddCommand(
		newElementsCmd(),
		newElementCmd(),
		newBrandScriptCmd(app),
		newOneLinerCmd(app),
		newBrandScriptWizardCmd(app),
	)
	return cmd
}

func addBusinessFlags(fs *pflag.FlagSet, b *storybrand.Business) {
	fs.StringVar(&b.Name, "name", "", "Business name")
	fs.StringVar(&b.Product, "product", "", "What you sell")
	fs.StringVar(&b.Customer, "customer", "", "Who you sell to")
	fs.StringVar(&b.Problem, "problem", "", "The problem you solve")
	fs.StringVar(&b.Differentiator, "differentiator", "", "What sets you apart")
}

func newElementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the seven story elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			elements := storybrand.Elements()
			return render(cmd, elements, func() string {
				return formatter.FormatElements(elements)
			})
		},
	}
}

func newElementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "element <key>",
		Short: "Show one story element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := storybrand.ElementByKey(args[0])
			if !ok {
				return fmt.Errorf("no story element %q", args[0])
			}
			return render(cmd, e, func() string {
				return formatter.FormatElement(e, storybrand.ProblemLevels())
			})
		},
	}
}

// printBrandScript writes the script as markdown followed by its status.
func (a *App) printBrandScript(w io.Writer, s storybrand.BrandScript) {
	fmt.Fprint(w, a.markdown(s.Markdown()))
	fmt.Fprintln(w)
	fmt.Fprint(w, formatter.FormatScriptStatus(s))
}

func newBrandScriptCmd(app *App) *cobra.Command {
	var (
		b         storybrand.Business
		wireframe bool
	)
	cmd := &cobra.Command{
		Use:   "script",
		Short: "Generate a BrandScript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "name", "product", "customer"); err != nil {
				return err
			}
			if err := requireAI(app.StoryBrand); err != nil {
				return err
			}

			var (
				script *storybrand.BrandScript
				site   *storybrand.Wireframe
			)
			err := app.spin(cmd, "Writing BrandScript…", func(ctx context.Context) error {
				var err error
				if script, err = app.StoryBrand.BrandScript(ctx, b); err != nil {
					return err
				}
				if wireframe {
					site, err = app.StoryBrand.Wireframe(ctx, *script)
				}
				return err
			})
			if err != nil {
				return err
			}
			app.record(cmd.Context(), domain.FrameworkStoryBrand, "brand_script", b, script)
			if site != nil {
				app.record(cmd.Context(), domain.FrameworkStoryBrand, "wireframe", script, site)
			}

			out := struct {
				Script    *storybrand.BrandScript `json:"brand_script"`
				Wireframe *storybrand.Wireframe   `json:"wireframe,omitempty"`
			}{script, site}
			if formatOf(cmd) != formatText {
				return render(cmd, out, nil)
			}
			app.printBrandScript(cmd.OutOrStdout(), *script)
			if site != nil {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), formatter.Header("Website wireframe")+"\n")
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWireframe(site))
			}
			return nil
		},
	}
	addBusinessFlags(cmd.Flags(), &b)
	cmd.Flags().BoolVar(&wireframe, "wireframe", false, "Also outline a website from the script")
	return cmd
}

func newOneLinerCmd(app *App) *cobra.Command {
	var (
		b                         storybrand.Business
		problem, solution, result string
	)
	cmd := &cobra.Command{
		Use:   "one-liner",
		Short: "Compose a one-liner, or generate one from business flags",
		Example: `  startups storybrand one-liner --problem-statement "Busy parents skip dinner" \
    --solution "We deliver 20-minute meal kits" --result "Families eat together again"
  startups storybrand one-liner --name Forkful --product "meal kits" --customer "busy parents"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if problem != "" || solution != "" || result != "" {
				o := storybrand.OneLiner{Problem: problem, Solution: solution, Result: result}
				return render(cmd, map[string]string{"one_liner": o.String()}, func() string {
					return formatter.FormatOneLiner(o)
				})
			}
			if err := requireFlags(cmd.Flags(), "name", "product", "customer"); err != nil {
				return err
			}
			if err := requireAI(app.StoryBrand); err != nil {
				return err
			}
			var o *storybrand.OneLiner
			err := app.spin(cmd, "Writing one-liner…", func(ctx context.Context) error {
				var err error
				o, err = app.StoryBrand.OneLiner(ctx, b)
				return err
			})
			if err != nil {
				return err
			}
			app.record(cmd.Context(), domain.FrameworkStoryBrand, "one_liner", b, o)
			return render(cmd, o, func() string {
				return formatter.FormatOneLiner(*o)
			})
		},
	}
	addBusinessFlags(cmd.Flags(), &b)
	cmd.Flags().StringVar(&problem, "problem-statement", "", "Problem part of a hand-written one-liner")
	cmd.Flags().StringVar(&solution, "solution", "", "Solution part of a hand-written one-liner")
	cmd.Flags().StringVar(&result, "result", "", "Result part of a hand-written one-liner")
	return cmd
}

func newBrandScriptWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Fill in a BrandScript step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			ans := answers{}
			if err := brandScriptForm(ans).Run(); err != nil {
				return err
			}
			script, err := brandScriptFromAnswers(ans)
			if err != nil {
				return err
			}
			app.record(cmd.Context(), domain.FrameworkStoryBrand, "brand_script_wizard", nil, script)
			if formatOf(cmd) != formatText {
				return render(cmd, script, nil)
			}
			app.printBrandScript(cmd.OutOrStdout(), script)
			return nil
		},
	}
}
