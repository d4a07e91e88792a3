package store

import (
	"context"

	"github.com/base-identity/identity-indexer/internal/domain"
	"github.com/base-identity/identity-indexer/internal/store/schema"
)

// UpsertIdentityInput contains the analysis results to persist for a wallet
type UpsertIdentityInput struct {
	Address string
	Chain   domain.Chain
	Name    string
	Verdict string
	Facts   domain.WalletFacts
	Scores  domain.ScoreSet
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks
type Store interface {
	// UpsertIdentity creates or updates the analysis fields for an address,
	// preserving any existing mint state
	UpsertIdentity(ctx context.Context, input UpsertIdentityInput) (*schema.Identity, error)
	// GetIdentity retrieves an identity by wallet address, nil when absent
	GetIdentity(ctx context.Context, address string) (*schema.Identity, error)
	// MarkMinted records the mint transaction for an address, returning false
	// when no identity exists for it
	MarkMinted(ctx context.Context, address string, txHash string) (bool, error)
}
