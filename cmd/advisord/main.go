// Package main provides the advisor daemon: the turn solver served over gRPC.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"

	"github.com/cory-johannsen/dicee/internal/advisor"
	"github.com/cory-johannsen/dicee/internal/config"
	"github.com/cory-johannsen/dicee/internal/game/category"
	"github.com/cory-johannsen/dicee/internal/game/solver"
	"github.com/cory-johannsen/dicee/internal/gameserver"
	"github.com/cory-johannsen/dicee/internal/observability"
	"github.com/cory-johannsen/dicee/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file; empty uses defaults and DICEE_* environment")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "advisord")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		logger.Fatal("setting up tracing", zap.Error(err))
	}

	warmSet, err := cfg.Solver.WarmSet()
	if err != nil {
		logger.Fatal("parsing warm categories", zap.Error(err))
	}

	slv := solver.New(
		solver.WithLogger(logger.Named("solver")),
		solver.WithCacheCapacity(cfg.Solver.CacheCapacity),
	)
	svc := advisor.NewService(slv, logger.Named("advisor"))
	grpcServer, healthServer := gameserver.NewServer(svc, logger.Named("grpc"))

	lifecycle := server.NewLifecycle(logger, cfg.Advisor.ShutdownTimeout)

	lifecycle.Add("grpc", &server.FuncService{
		StartFn: func(context.Context) error {
			lis, err := net.Listen("tcp", cfg.Advisor.Addr())
			if err != nil {
				return fmt.Errorf("listening on %s: %w", cfg.Advisor.Addr(), err)
			}
			logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
			return grpcServer.Serve(lis)
		},
		StopFn: func(ctx context.Context) error {
			return gameserver.GracefulStop(ctx, grpcServer, healthServer)
		},
	})

	if cfg.Solver.WarmOnStart {
		lifecycle.Add("warmer", newWarmer(slv, healthServer, warmSet, cfg.Solver.WarmWorkers))
	}

	lifecycle.OnShutdown("tracing", shutdownTracing)

	logger.Info("advisor initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("grpc_addr", cfg.Advisor.Addr()),
		zap.Bool("warm_on_start", cfg.Solver.WarmOnStart),
		zap.Stringer("warm_categories", warmSet),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// newWarmer reports the whole server NOT_SERVING and returns a service that
// fills the solver cache for set, then reports SERVING again.
//
// Postcondition: A cancelled warm-up ends without error and leaves hs NOT_SERVING.
func newWarmer(slv *solver.Solver, hs *health.Server, set category.Set, workers int) *server.FuncService {
	gameserver.SetServing(hs, false)
	return &server.FuncService{
		StartFn: func(ctx context.Context) error {
			err := slv.Warm(ctx, set, workers)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			if err != nil {
				return err
			}
			gameserver.SetServing(hs, true)
			return nil
		},
	}
}
