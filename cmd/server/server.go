package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/wallet-arena/internal/config"
	"github.com/KirkDiggler/wallet-arena/internal/handlers/arena/v1alpha1"
	"github.com/KirkDiggler/wallet-arena/internal/handlers/gateway"
	"github.com/KirkDiggler/wallet-arena/internal/narrative"
	"github.com/KirkDiggler/wallet-arena/internal/orchestrators/arena"
	"github.com/KirkDiggler/wallet-arena/internal/pkg/clock"
	"github.com/KirkDiggler/wallet-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/wallet-arena/internal/redis"
	battlecache "github.com/KirkDiggler/wallet-arena/internal/repositories/battle_cache"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort      int
	httpPort      int
	redisEndpoint string
	logLevel      string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server and HTTP gateway",
	Long:  `Start the arena gRPC service and its JSON/HTTP gateway, backed by the Redis battle cache.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 0, "HTTP gateway port (overrides config)")
	serverCmd.Flags().StringVar(&redisEndpoint, "redis", "", "Redis endpoint (overrides config)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (overrides config)")
}

func loadServerConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if grpcPort != 0 {
		cfg.Server.GRPCPort = grpcPort
	}
	if httpPort != 0 {
		cfg.Server.HTTPPort = httpPort
	}
	if redisEndpoint != "" {
		cfg.Redis.Endpoint = redisEndpoint
	}
	if logLevel != "" {
		cfg.Server.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := loadServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := redis.NewClient(cfg.Redis.Endpoint, &redis.Options{
		PoolSize:   cfg.Redis.PoolSize,
		MaxRetries: cfg.Redis.MaxRetries,
		UseTLS:     cfg.Redis.UseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable, battles will not be cached until it recovers",
			"endpoint", cfg.Redis.Endpoint, "error", err)
	}

	cache, err := battlecache.NewRedisRepository(&battlecache.Config{
		Client: redisClient,
		Clock:  clock.New(),
		TTL:    cfg.Battle.CacheTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create battle cache: %w", err)
	}

	arenaService, err := arena.NewOrchestrator(&arena.Config{
		BattleCache:    cache,
		NonceGenerator: idgen.NewRandom(""),
		Narrator:       narrative.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create arena service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{ArenaService: arenaService})
	if err != nil {
		return fmt.Errorf("failed to create arena handler: %w", err)
	}

	router, err := gateway.NewRouter(&gateway.Config{ArenaService: arenaService})
	if err != nil {
		return fmt.Errorf("failed to create gateway: %w", err)
	}

	grpcServer := newGRPCServer(logger, handler)
	httpServer := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(cfg.Server.HTTPPort)),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(cfg.Server.GRPCPort)))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		slog.Info("HTTP gateway starting", "port", cfg.Server.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping")
	case err := <-errChan:
		grpcServer.Stop()
		_ = httpServer.Close()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP gateway shutdown failed", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}

	return nil
}

func newGRPCServer(logger *slog.Logger, handler v1alpha1.ArenaServiceServer) *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterArenaServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv
}

// interceptorLogger adapts slog to the middleware logger; the level values line up
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
