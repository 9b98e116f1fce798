package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"

	"github.com/danielpatrickdp/eres666/internal/rpc"
)

// #region serve-cmd
var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the verifier over gRPC",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: server.addr from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	store, err := openLedger(cfg, logger)
	if err != nil {
		return err
	}
	var recorder rpc.Recorder
	if store != nil {
		defer store.Close()
		recorder = store
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	gs := grpc.NewServer(grpc.UnaryInterceptor(rpc.LoggingInterceptor(logger)))
	hs := rpc.Register(gs, rpc.NewServer(logger, recorder))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("verifier listening",
		zap.String("addr", lis.Addr().String()),
		zap.Bool("ledger", store != nil),
	)
	if err := serveUntil(ctx, gs, hs, lis); err != nil {
		return err
	}
	logger.Info("verifier stopped")
	return nil
}

// serveUntil serves lis until ctx is done or Serve fails. On cancellation
// every health entry goes NOT_SERVING before in-flight calls drain.
func serveUntil(ctx context.Context, gs *grpc.Server, hs *health.Server, lis net.Listener) error {
	errc := make(chan error, 1)
	go func() { errc <- gs.Serve(lis) }()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		hs.Shutdown()
		gs.GracefulStop()
		if err := <-errc; err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}
}

// #endregion serve-cmd
