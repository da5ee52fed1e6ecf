package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/rl1809/warehouse-mesh/internal/adapter/handler"
	"github.com/rl1809/warehouse-mesh/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-mesh/internal/adapter/peer"
	"github.com/rl1809/warehouse-mesh/internal/adapter/storage"
	"github.com/rl1809/warehouse-mesh/internal/config"
	"github.com/rl1809/warehouse-mesh/internal/core/domain"
	"github.com/rl1809/warehouse-mesh/internal/core/service"
	"github.com/rl1809/warehouse-mesh/internal/metrics"
	"github.com/rl1809/warehouse-mesh/internal/port"
	"github.com/rl1809/warehouse-mesh/internal/scheduler"
	"github.com/rl1809/warehouse-mesh/internal/telemetry"
	"github.com/rl1809/warehouse-mesh/internal/worker"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	logger = logger.With(zap.Int("node_index", cfg.NodeIndex))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.ServiceName)
	if err != nil {
		logger.Fatal("failed to set up telemetry", zap.Error(err))
	}
	activity := telemetry.NewActivity(otel.Tracer(cfg.ServiceName), telemetry.NewEntityTracker())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	stats := metrics.NewCollector(registry)

	ledger, closeLedger := buildLedger(ctx, cfg, logger)
	defer closeLedger()

	peers, err := peer.Dial(cfg.Peers)
	if err != nil {
		logger.Fatal("failed to dial peers", zap.Error(err))
	}
	defer peers.Close()
	logger.Info("peer table loaded", zap.Int("peers", len(cfg.Peers)))

	router, err := service.NewRouter(cfg.NodeIndex, cfg.NodeCount, cfg.ForwardProbability,
		uint64(time.Now().UnixNano()))
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}
	failures := domain.NewFailureFaker(cfg.FailureSeed, cfg.FailureProbability, nil)
	warehouse := service.NewWarehouseService(ledger, peers, router, failures, activity, stats, logger)

	// gRPC server
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	pb.RegisterWarehouseServer(grpcServer, handler.NewGRPCHandler(warehouse))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}
	go func() {
		logger.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	// HTTP server
	httpHandler := handler.NewHTTPHandler(warehouse, logger)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpHandler.HealthCheck)
	mux.HandleFunc("/item/add-stock", httpHandler.AddStock)
	mux.HandleFunc("/item/get-items", httpHandler.GetItems)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: otelhttp.NewHandler(mux, "warehouse-http"),
	}
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Simulated demand and supply
	var sched *scheduler.Scheduler
	if cfg.SimulationEnabled {
		seed := uint64(time.Now().UnixNano())
		sim := worker.NewSimulation(cfg.NodeIndex, cfg.NodeCount, peers, activity,
			worker.NewItemFaker(seed), seed+1, logger)

		sched = scheduler.New(clockwork.NewRealClock(), logger)
		sched.Add(scheduler.Job{Name: "order-simulation", Interval: cfg.OrderInterval, Run: sim.RunOrder})
		sched.Add(scheduler.Job{Name: "supply-simulation", Interval: cfg.SupplyInterval, Run: sim.RunSupply})
		sched.Start(ctx)
		logger.Info("simulation jobs started",
			zap.Duration("order_interval", cfg.OrderInterval),
			zap.Duration("supply_interval", cfg.SupplyInterval))
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	httpServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	if sched != nil {
		sched.Wait()
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logger.Warn("telemetry shutdown", zap.Error(err))
	}
	logger.Info("stopped")
}

func buildLedger(ctx context.Context, cfg *config.Config, logger *zap.Logger) (port.StockLedger, func()) {
	switch cfg.LedgerBackend {
	case config.BackendMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			logger.Fatal("failed to open mysql", zap.Error(err))
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		ping := func() error { return db.PingContext(ctx) }
		if err := backoff.Retry(ping, startupBackoff(ctx)); err != nil {
			logger.Fatal("failed to ping mysql", zap.Error(err))
		}
		logger.Info("connected to mysql")
		return storage.NewMySQLLedger(db), func() { db.Close() }

	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			PoolSize: 100,
		})
		ping := func() error { return rdb.Ping(ctx).Err() }
		if err := backoff.Retry(ping, startupBackoff(ctx)); err != nil {
			logger.Fatal("failed to ping redis", zap.Error(err))
		}
		logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
		return storage.NewRedisLedger(rdb), func() { rdb.Close() }
	}
}

func startupBackoff(ctx context.Context) backoff.BackOff {
	return backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
}
