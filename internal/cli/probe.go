package cli

import (
	"time"

	"hello-web/internal/probe"

	"github.com/spf13/cobra"
)

// NewProbeCommand fires a burst of requests at the balancer and prints
// which server answered each of them.
func NewProbeCommand() *cobra.Command {
	var cfg probe.Config

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Send requests through the balancer and count replies per server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := bootstrap(nil)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			stats := probe.New(cfg, nil, cmd.OutOrStdout(), log).Run(ctx)
			return stats.Print(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&cfg.URL, "url", "http://localhost:9095", "balancer URL")
	cmd.Flags().IntVar(&cfg.Requests, "requests", 10, "number of requests to send")
	cmd.Flags().DurationVar(&cfg.Delay, "delay", 100*time.Millisecond, "pause between starting requests")
	return cmd
}
