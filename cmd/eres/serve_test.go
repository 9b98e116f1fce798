package main

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/danielpatrickdp/eres666/internal/rpc"
)

func TestServeUntilCancelMarksNotServing(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	hs := rpc.Register(gs, rpc.NewServer(zap.NewNop(), nil))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- serveUntil(ctx, gs, hs, lis) }()
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("serveUntil: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serveUntil did not return after cancel")
	}

	for _, svc := range []string{"", rpc.ServiceName} {
		resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{Service: svc})
		if err != nil {
			t.Fatalf("health check %q: %v", svc, err)
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_NOT_SERVING {
			t.Fatalf("service %q: expected NOT_SERVING after shutdown, got %s", svc, resp.GetStatus())
		}
	}
}

func TestServeUntilReturnsServeError(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	lis.Close()
	gs := grpc.NewServer()
	hs := rpc.Register(gs, rpc.NewServer(zap.NewNop(), nil))

	errc := make(chan error, 1)
	go func() { errc <- serveUntil(context.Background(), gs, hs, lis) }()

	select {
	case err := <-errc:
		if err == nil {
			t.Fatal("expected serve error on closed listener")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serveUntil did not return on serve failure")
	}
}
