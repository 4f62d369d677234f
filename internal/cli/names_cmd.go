package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli/formatter"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/naming"
	"github.com/spf13/cobra"
)

func newNamesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "names",
		Aliases: []string{"name"},
		Short:   "Score, combine and generate startup names",
	}
	cmd.AddCommand(
		newNamesScoreCmd(),
		newNamesCombineCmd(),
		newNamesStylesCmd(),
		newNamesDomainsCmd(),
		newNamesGenerateCmd(app),
	)
	return cmd
}

func newNamesScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <name>...",
		Short: "Score names for length, syllables and pronounceability",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scores := naming.RankNames(args)
			return render(cmd, scores, func() string {
				return formatter.FormatNameScores(scores)
			})
		},
	}
}

func newNamesCombineCmd() *cobra.Command {
	var (
		industry    string
		roots       []string
		affixes     []string
		portmanteau []string
		limit       int
	)
	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Build names from roots and affixes",
		Example: "  startups names combine --industry fintech\n" +
			"  startups names combine --roots cloud,ship --affixes -ly,-ify,go-\n" +
			"  startups names combine --portmanteau breakfast,lunch",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var candidates []string
			switch {
			case len(portmanteau) > 0:
				if len(portmanteau) != 2 {
					return fmt.Errorf("--portmanteau takes exactly two words")
				}
				candidates = []string{naming.Portmanteau(portmanteau[0], portmanteau[1])}
			default:
				if industry != "" {
					r, ok := naming.RootsFor(industry)
					if !ok {
						return fmt.Errorf("unknown industry %q (known: %s)", industry, strings.Join(naming.Industries(), ", "))
					}
					roots = append(roots, r...)
				}
				if len(roots) == 0 {
					return fmt.Errorf("one of --industry, --roots or --portmanteau is required")
				}
				if len(affixes) == 0 {
					for _, p := range naming.Prefixes() {
						affixes = append(affixes, p+"-")
					}
					for _, s := range naming.Suffixes() {
						affixes = append(affixes, "-"+s)
					}
				}
				candidates = naming.Combine(roots, affixes)
			}

			scores := naming.RankNames(candidates)
			if limit > 0 && len(scores) > limit {
				scores = scores[:limit]
			}
			return render(cmd, scores, func() string {
				return formatter.FormatNameScores(scores)
			})
		},
	}
	cmd.Flags().StringVar(&industry, "industry", "", "Use the root words for an industry")
	cmd.Flags().StringSliceVar(&roots, "roots", nil, "Root words")
	cmd.Flags().StringSliceVar(&affixes, "affixes", nil, `Affixes; "x-" is a prefix, "-x" a suffix (default: built-in lists)`)
	cmd.Flags().StringSliceVar(&portmanteau, "portmanteau", nil, "Blend two words")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Show at most this many names (0 for all)")
	cmd.MarkFlagsMutuallyExclusive("portmanteau", "industry")
	cmd.MarkFlagsMutuallyExclusive("portmanteau", "roots")
	return cmd
}

func newNamesStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List naming styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			styles := naming.Styles()
			return render(cmd, styles, func() string {
				var b strings.Builder
				for _, s := range styles {
					fmt.Fprintf(&b, "%s %s\n  %s\n", formatter.Bold(s.Name), formatter.Dim("("+s.Slug+")"), s.Description)
					fmt.Fprintf(&b, "  %s\n", formatter.Dim(strings.Join(s.Examples, ", ")))
				}
				return b.String()
			})
		},
	}
}

func newNamesDomainsCmd() *cobra.Command {
	var tlds []string
	cmd := &cobra.Command{
		Use:   "domains <name>",
		Short: "Domain names to check for a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domains := naming.DomainCandidates(args[0], tlds)
			return render(cmd, domains, func() string {
				return formatter.FormatDomains(args[0], domains)
			})
		},
	}
	cmd.Flags().StringSliceVar(&tlds, "tld", naming.DefaultTLDs, "Top level domains")
	return cmd
}

func newNamesGenerateCmd(app *App) *cobra.Command {
	var b naming.Brief
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate scored names for a business",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "description"); err != nil {
				return err
			}
			if err := requireAI(app.Naming); err != nil {
				return err
			}
			var set *naming.NameSet
			err := app.spin(cmd, "Naming…", func(ctx context.Context) error {
				var err error
				set, err = app.Naming.Names(ctx, b)
				return err
			})
			if err != nil {
				return err
			}
			app.record(cmd.Context(), domain.FrameworkNaming, "names", b, set)
			return render(cmd, set, func() string {
				return formatter.FormatNameSet(set)
			})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&b.Description, "description", "", "What the business does")
	fs.StringVar(&b.Industry, "industry", "", "Industry")
	fs.StringVar(&b.Audience, "audience", "", "Who the customers are")
	fs.StringSliceVar(&b.Keywords, "keywords", nil, "Words to draw on")
	fs.StringSliceVar(&b.Styles, "styles", nil, "Only these style slugs")
	fs.IntVarP(&b.Count, "count", "n", naming.DefaultCount, "How many names to ask for")
	return cmd
}
