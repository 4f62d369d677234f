package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/rpc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer JSON-RPC 2.0 requests on stdin and stdout",
		Long: "Serve the calculators and lookups as JSON-RPC 2.0 methods over stdin and stdout.\n\n" +
			"Methods: " + strings.Join(rpc.Methods(), ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := app.logger().Named("rpc")
			log.Debug("serving", zap.Int("methods", len(rpc.Methods())))
			stream := rpc.Stdio(io.NopCloser(cmd.InOrStdin()), nopWriteCloser{cmd.OutOrStdout()})
			err := rpc.Serve(cmd.Context(), stream)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			log.Debug("peer disconnected")
			return nil
		},
	}
}
