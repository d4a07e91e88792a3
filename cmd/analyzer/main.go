package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/base-identity/identity-indexer/internal/adapter"
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
	force      = flag.Bool("force", false, "Re-analyze even when a cached identity exists")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <wallet-address>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	address := flag.Arg(0)

	// Load configuration
	cfg, err := config.LoadAnalyzerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx := context.Background()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "analyzer",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	dataStore := store.NewPGStore(db, adapter.NewClock())

	// Load token registry
	tokens, err := registry.LoadTokens(cfg.TokensPath)
	if err != nil {
		logger.Fatal("Failed to load token registry",
			zap.Error(err),
			zap.String("path", cfg.TokensPath))
	}

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

	// Create the naming oracle client
	oracle := gemini.NewClient(
		adapter.NewHTTPClient(cfg.Oracle.Timeout),
		cfg.Oracle.APIURL,
		cfg.Oracle.APIKey,
		cfg.Oracle.Model,
		cfg.Oracle.Temperature,
		adapter.NewJSON(),
	)

	// Run the analysis workflow once
	workflow := workflows.NewIdentityWorkflow(chainData, oracle, dataStore, cfg.Ethereum.ChainID)
	result, err := workflow.Run(ctx, address, *force)
	if err != nil {
		logger.Fatal("Analysis failed",
			zap.Error(err),
			zap.String("address", address))
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("Failed to encode result", zap.Error(err))
	}
	fmt.Println(string(output))
}
