package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := app.Version
			if v == "" {
				v = "dev"
			}
			info := map[string]string{"version": v, "go": runtime.Version()}
			return render(cmd, info, func() string {
				return fmt.Sprintf("startups %s (%s)\n", v, runtime.Version())
			})
		},
	}
}
