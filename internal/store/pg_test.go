package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/base-identity/identity-indexer/internal/adapter"
	"github.com/base-identity/identity-indexer/internal/domain"
	"github.com/base-identity/identity-indexer/internal/store/schema"
)

// fixedClock pins Now() for tests that assert stored timestamps
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func (c fixedClock) Since(t time.Time) time.Duration {
	return c.now.Sub(t)
}

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Initialize the database schema
	if err := testDB.AutoMigrate(&schema.Identity{}); err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// cleanupIdentities removes all rows between tests
func cleanupIdentities(t *testing.T) {
	t.Helper()
	require.NoError(t, testDB.Exec("DELETE FROM identities").Error)
}

func testUpsertInput(address string) UpsertIdentityInput {
	return UpsertIdentityInput{
		Address: address,
		Chain:   domain.ChainBaseMainnet,
		Name:    "Based Degen Champion",
		Verdict: "A relentless trader woven into the fabric of Base.",
		Facts: domain.WalletFacts{
			Address:       address,
			NativeBalance: 12.5,
			TxCount:       1200,
			Holdings:      map[string]float64{"BRETT": 1523.8},
		},
		Scores: domain.ScoreSet{
			Wealth:    100,
			Vitality:  100,
			Community: 20,
			Final:     76,
			Tier:      domain.TierLegendary,
		},
	}
}

func TestUpsertIdentity_CreatesNewRow(t *testing.T) {
	cleanupIdentities(t)
	ctx := context.Background()
	s := NewPGStore(testDB, adapter.NewClock())

	address := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	identity, err := s.UpsertIdentity(ctx, testUpsertInput(address))
	require.NoError(t, err)
	require.NotNil(t, identity)

	assert.Equal(t, address, identity.Address)
	assert.Equal(t, "eip155:8453", identity.Chain)
	assert.Equal(t, "Based Degen Champion", identity.Name)
	assert.Equal(t, "LEGENDARY", identity.Tier)
	assert.False(t, identity.Minted)
	assert.Nil(t, identity.MintTxHash)
	assert.Nil(t, identity.MintedAt)
	assert.False(t, identity.CreatedAt.IsZero())
}

func TestUpsertIdentity_UpdatesAnalysisFields(t *testing.T) {
	cleanupIdentities(t)
	ctx := context.Background()
	s := NewPGStore(testDB, adapter.NewClock())

	address := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	first, err := s.UpsertIdentity(ctx, testUpsertInput(address))
	require.NoError(t, err)

	input := testUpsertInput(address)
	input.Name = "Quiet Citizen"
	input.Verdict = "A modest wallet finding its way."
	input.Scores.Final = 10
	input.Scores.Tier = domain.TierCommon

	second, err := s.UpsertIdentity(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, "Quiet Citizen", second.Name)
	assert.Equal(t, "COMMON", second.Tier)
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())

	// Re-read to confirm the update is durable
	stored, err := s.GetIdentity(ctx, address)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Quiet Citizen", stored.Name)
}

func TestUpsertIdentity_PreservesMintState(t *testing.T) {
	cleanupIdentities(t)
	ctx := context.Background()
	s := NewPGStore(testDB, adapter.NewClock())

	address := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	_, err := s.UpsertIdentity(ctx, testUpsertInput(address))
	require.NoError(t, err)

	txHash := "0x8f5b2a1c9d3e4f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0c1d2e3f4a5b6c7d8e9f0a"
	found, err := s.MarkMinted(ctx, address, txHash)
	require.NoError(t, err)
	assert.True(t, found)

	// Re-analysis must not clear the mint fields
	input := testUpsertInput(address)
	input.Name = "Reborn Degen"
	_, err = s.UpsertIdentity(ctx, input)
	require.NoError(t, err)

	stored, err := s.GetIdentity(ctx, address)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Reborn Degen", stored.Name)
	assert.True(t, stored.Minted)
	require.NotNil(t, stored.MintTxHash)
	assert.Equal(t, txHash, *stored.MintTxHash)
	require.NotNil(t, stored.MintedAt)
}

func TestGetIdentity_NotFound(t *testing.T) {
	cleanupIdentities(t)
	ctx := context.Background()
	s := NewPGStore(testDB, adapter.NewClock())

	identity, err := s.GetIdentity(ctx, "0x0000000000000000000000000000000000000001")
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestMarkMinted_StampsClockTime(t *testing.T) {
	cleanupIdentities(t)
	ctx := context.Background()

	mintedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	s := NewPGStore(testDB, fixedClock{now: mintedAt})

	address := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	_, err := s.UpsertIdentity(ctx, testUpsertInput(address))
	require.NoError(t, err)

	found, err := s.MarkMinted(ctx, address, "0xdeadbeef")
	require.NoError(t, err)
	require.True(t, found)

	stored, err := s.GetIdentity(ctx, address)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.MintedAt)
	assert.True(t, stored.MintedAt.Equal(mintedAt))
}

func TestMarkMinted_NoIdentity(t *testing.T) {
	cleanupIdentities(t)
	ctx := context.Background()
	s := NewPGStore(testDB, adapter.NewClock())

	found, err := s.MarkMinted(ctx, "0x0000000000000000000000000000000000000001", "0xdead")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	tests := []struct {
		name            string
		maxOpen         int
		maxIdle         int
		wantMaxOpen     int
		wantMaxIdle     int
		wantMaxLifetime time.Duration
		wantMaxIdleTime time.Duration
	}{
		{
			name:            "all defaults",
			maxOpen:         0,
			maxIdle:         0,
			wantMaxOpen:     20,
			wantMaxIdle:     5,
			wantMaxLifetime: 5 * time.Minute,
			wantMaxIdleTime: 10 * time.Minute,
		},
		{
			name:            "idle clamped to open",
			maxOpen:         4,
			maxIdle:         10,
			wantMaxOpen:     4,
			wantMaxIdle:     4,
			wantMaxLifetime: 5 * time.Minute,
			wantMaxIdleTime: 10 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOpen, gotIdle, gotLifetime, gotIdleTime :=
				NormalizeConnectionPoolSettings(tt.maxOpen, tt.maxIdle, 0, 0)
			assert.Equal(t, tt.wantMaxOpen, gotOpen)
			assert.Equal(t, tt.wantMaxIdle, gotIdle)
			assert.Equal(t, tt.wantMaxLifetime, gotLifetime)
			assert.Equal(t, tt.wantMaxIdleTime, gotIdleTime)
		})
	}
}
