package cli

import (
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli/formatter"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/landingpage"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/textmetrics"
	"github.com/spf13/cobra"
)

func newTextCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Readability and color contrast checks",
	}
	cmd.AddCommand(
		newReadingLevelCmd(),
		newContrastCmd(),
	)
	return cmd
}

func newReadingLevelCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "reading-level [text...]",
		Short: "Flesch-Kincaid grade and reading ease",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args, file)
			if err != nil {
				return err
			}
			r := formatter.Readability{
				Words:       textmetrics.CountWords(text),
				Sentences:   textmetrics.CountSentences(text),
				Grade:       textmetrics.EstimateReadingLevel(text),
				ReadingEase: textmetrics.FleschReadingEase(text),
			}
			return render(cmd, r, func() string {
				return formatter.FormatReadability(r)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read text from a file, - for stdin")
	return cmd
}

func newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "contrast <foreground> <background>",
		Short:   "WCAG contrast ratio of two hex colors",
		Example: "  startups text contrast '#333' '#ffffff'",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			check, err := landingpage.CheckContrast(args[0], args[1])
			if err != nil {
				return err
			}
			return render(cmd, check, func() string {
				return formatter.FormatContrast(check)
			})
		},
	}
}
