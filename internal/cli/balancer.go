package cli

import (
	"strings"
	"sync"

	"hello-web/internal/balancer"
	"hello-web/internal/config"
	"hello-web/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewBalancerCommand proxies to the greeting servers listed in a JSON file:
//
//	balancer [config-file] [--log-file path]
func NewBalancerCommand() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "balancer [config-file]",
		Short: "Least-active load balancer for greeting servers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "config.json"
			if len(args) == 1 {
				path = args[0]
			}

			cfg, log, err := bootstrap(func(cfg *config.Config) {
				if cmd.Flags().Changed("log-file") || cfg.Log.File == "" {
					cfg.Log.File = logFile
				}
			})
			if err != nil {
				return err
			}
			defer log.Sync()

			bcfg, err := config.LoadBalancer(path)
			if err != nil {
				return err
			}

			pool, err := balancer.NewPool(bcfg.Servers)
			if err != nil {
				return err
			}

			router := balancer.NewRouter(balancer.NewHandler(pool, log), log)
			srv, err := server.Listen(cfg.Server, listenAddr(bcfg.ListenPort), router, log)
			if err != nil {
				return err
			}
			log.Info("Starting balancer",
				zap.Stringer("addr", srv.Addr()),
				zap.Int("backends", len(bcfg.Servers)),
				zap.Duration("health_check_interval", bcfg.HealthCheckInterval),
			)

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				balancer.NewHealthChecker(pool, bcfg.HealthCheckInterval, nil, log).Run(ctx)
			}()

			err = srv.Serve(ctx)
			stop()
			wg.Wait()
			return err
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "logfile.log", "file that receives the balancer log")
	return cmd
}

// listenAddr accepts both ":9095" and "9095".
func listenAddr(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
