package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/base-identity/identity-indexer/internal/adapter"
	"github.com/base-identity/identity-indexer/internal/api/server"
	"github.com/base-identity/identity-indexer/internal/config"
	"github.com/base-identity/identity-indexer/internal/logger"
	"github.com/base-identity/identity-indexer/internal/providers/ethereum"
	"github.com/base-identity/identity-indexer/internal/providers/gemini"
	"github.com/base-identity/identity-indexer/internal/registry"
	"github.com/base-identity/identity-indexer/internal/store"
	"github.com/base-identity/identity-indexer/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting Identity Indexer API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.Info("Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db, adapter.NewClock())

	// Load token registry
	tokens, err := registry.LoadTokens(cfg.TokensPath)
	if err != nil {
		logger.Fatal("Failed to load token registry",
			zap.Error(err),
			zap.String("path", cfg.TokensPath))
	}
	logger.Info("Loaded token registry",
		zap.String("path", cfg.TokensPath),
		zap.Int("tokens", tokens.Len()))

	// Dial the chain data provider
	dialCtx, dialCancel := context.WithTimeout(ctx, cfg.Ethereum.RequestTimeout)
	ethClient, err := adapter.NewEthClientDialer().Dial(dialCtx, cfg.Ethereum.RPCURL)
	dialCancel()
	if err != nil {
		logger.Fatal("Failed to dial Ethereum RPC",
			zap.Error(err),
			zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	chainData := ethereum.NewClient(ethClient, tokens, cfg.Ethereum.RequestTimeout)
	defer chainData.Close()
	logger.Info("Connected to Ethereum RPC", zap.String("rpc_url", cfg.Ethereum.RPCURL))

	// Create the naming oracle client
	oracle := gemini.NewClient(
		adapter.NewHTTPClient(cfg.Oracle.Timeout),
		cfg.Oracle.APIURL,
		cfg.Oracle.APIKey,
		cfg.Oracle.Model,
		cfg.Oracle.Temperature,
		adapter.NewJSON(),
	)

	// Wire the analysis workflow
	workflow := workflows.NewIdentityWorkflow(chainData, oracle, dataStore, cfg.Ethereum.ChainID)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		APIKeys:      cfg.Auth.APIKeys,
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, workflow)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.Error(err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
