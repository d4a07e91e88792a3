package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/base-identity/identity-indexer/internal/adapter"
	"github.com/base-identity/identity-indexer/internal/store/schema"
)

type pgStore struct {
	db    *gorm.DB
	clock adapter.Clock
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB, clock adapter.Clock) Store {
	return &pgStore{db: db, clock: clock}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// UpsertIdentity creates or updates the analysis fields for an address while
// preserving any existing mint state (minted, mint_tx_hash, minted_at)
func (s *pgStore) UpsertIdentity(ctx context.Context, input UpsertIdentityInput) (*schema.Identity, error) {
	factsJSON, err := json.Marshal(input.Facts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal facts: %w", err)
	}

	scoresJSON, err := json.Marshal(input.Scores)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scores: %w", err)
	}

	var identity schema.Identity
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the existing row (if any) to prevent concurrent re-analysis
		// from interleaving with a mint update
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("address = ?", input.Address).
			First(&identity).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to lock identity: %w", err)
			}

			identity = schema.Identity{
				Address: input.Address,
				Chain:   string(input.Chain),
				Name:    input.Name,
				Tier:    string(input.Scores.Tier),
				Verdict: input.Verdict,
				Facts:   factsJSON,
				Scores:  scoresJSON,
			}
			if err := tx.Create(&identity).Error; err != nil {
				return fmt.Errorf("failed to create identity: %w", err)
			}
			return nil
		}

		// Update analysis fields only; mint fields stay untouched
		updates := map[string]interface{}{
			"chain":   string(input.Chain),
			"name":    input.Name,
			"tier":    string(input.Scores.Tier),
			"verdict": input.Verdict,
			"facts":   factsJSON,
			"scores":  scoresJSON,
		}
		if err := tx.Model(&identity).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update identity: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &identity, nil
}

// GetIdentity retrieves an identity by wallet address
func (s *pgStore) GetIdentity(ctx context.Context, address string) (*schema.Identity, error) {
	var identity schema.Identity
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return &identity, nil
}

// MarkMinted records the mint transaction for an address.
// Returns false when no identity exists for the address.
// Mint state is monotonic: it is set once and never unset.
func (s *pgStore) MarkMinted(ctx context.Context, address string, txHash string) (bool, error) {
	now := s.clock.Now().UTC()

	result := s.db.WithContext(ctx).
		Model(&schema.Identity{}).
		Where("address = ?", address).
		Updates(map[string]interface{}{
			"minted":       true,
			"mint_tx_hash": txHash,
			"minted_at":    now,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark minted: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
