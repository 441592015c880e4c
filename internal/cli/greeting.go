package cli

import (
	"context"
	"fmt"
	"net"

	"hello-web/internal/config"
	"hello-web/internal/handler"
	"hello-web/internal/resolver"
	"hello-web/internal/server"
	"hello-web/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewWebServiceCommand is the port-only greeting server:
//
//	webservice <port>
func NewWebServiceCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "webservice <port>",
		Short:              "Serve the Hello, World! page on a port",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Usage: webservice <port>")
				return ErrUsage
			}

			port, err := config.ParsePort(args[0])
			if err != nil {
				return err
			}

			return serveGreeting(cmd.Context(), &service.Greeting{Port: port}, func(net.Addr) {
				fmt.Fprintf(cmd.OutOrStdout(), "Starting web service on port %d\n", port)
			})
		},
	}
}

// NewWebAppCommand is the named greeting server:
//
//	webapp <port> <server_name>
//
// A wrong argument count prints the usage line and carries on; it only
// fails once a required argument is actually missing.
func NewWebAppCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "webapp <port> <server_name>",
		Short:              "Serve the Hello, World! page with a server name",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				fmt.Fprintln(cmd.OutOrStdout(), "Usage: webapp PORT_NUMBER SERVER_NAME")
			}
			if len(args) < 1 {
				return fmt.Errorf("missing argument: PORT_NUMBER")
			}

			port, err := config.ParsePort(args[0])
			if err != nil {
				return err
			}
			if len(args) < 2 {
				return fmt.Errorf("missing argument: SERVER_NAME")
			}

			greeting := &service.Greeting{Port: port, Name: args[1], HasName: true}
			return serveGreeting(cmd.Context(), greeting, nil)
		},
	}
}

func serveGreeting(ctx context.Context, greeting *service.Greeting, onListen func(net.Addr)) error {
	cfg, log, err := bootstrap(nil)
	if err != nil {
		return err
	}
	defer log.Sync()

	svc := service.NewGreetingService(greeting, resolver.NewHostnameResolver(nil, cfg.Server.LookupTimeout))
	router := handler.NewGreetingRouter(handler.NewGreetingHandler(svc, log), log)

	srv, err := server.Listen(cfg.Server, cfg.Server.Addr(greeting.Port), router, log)
	if err != nil {
		return err
	}

	log.Info("greeting server ready",
		zap.Int("port", greeting.Port),
		zap.String("name", greeting.Name),
		zap.Stringer("addr", srv.Addr()),
	)
	if onListen != nil {
		onListen(srv.Addr())
	}

	ctx, stop := signalContext(ctx)
	defer stop()

	return srv.Serve(ctx)
}
