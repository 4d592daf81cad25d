package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kapu/pachinko-persona-lab/internal/service/ai"
)

func newServeCmd(opts []ai.GeneratorOption) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the persona HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, cleanup, err := bootstrap(cmd.Context(), logStdout, cmd.ErrOrStderr(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if addr != "" {
				container.Config.Server.Addr = addr
			}
			srv, err := container.NewServer(cmd.Context())
			if err != nil {
				return err
			}

			container.Logger.Info("Pachinko Persona Lab API starting",
				zap.String("version", Version),
				zap.String("addr", container.Config.Server.Addr),
			)
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides SERVER_ADDR)")
	return cmd
}
