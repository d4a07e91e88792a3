package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/base-identity/identity-indexer/internal/domain"
)

// Identity represents the identities table - one row per analyzed wallet address
type Identity struct {
	// Address is the EIP-55 checksummed wallet address (primary key)
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Chain identifies the blockchain network using CAIP-2 format (e.g., "eip155:8453")
	Chain string `gorm:"column:chain;not null;type:text"`
	// Name is the oracle-generated identity name
	Name string `gorm:"column:name;not null;type:text"`
	// Tier is the reputation tier derived from the final score
	Tier string `gorm:"column:tier;not null;type:text;index"`
	// Verdict is the oracle's one-sentence judgement of the wallet
	Verdict string `gorm:"column:verdict;not null;type:text"`
	// Facts holds the raw on-chain observations used for scoring
	Facts datatypes.JSON `gorm:"column:facts;type:jsonb"`
	// Scores holds the per-dimension and final scores
	Scores datatypes.JSON `gorm:"column:scores;type:jsonb"`
	// Minted indicates whether the identity has been minted on-chain
	Minted bool `gorm:"column:minted;not null;default:false"`
	// MintTxHash is the transaction hash of the mint (nil until minted)
	MintTxHash *string `gorm:"column:mint_tx_hash;type:text"`
	// MintedAt records when the identity was minted (nil until minted)
	MintedAt *time.Time `gorm:"column:minted_at"`
	// CreatedAt is the timestamp when this identity was first persisted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last re-analysis
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Identity model
func (Identity) TableName() string {
	return "identities"
}

// ToResult maps the stored row to the caller-facing result shape
func (i *Identity) ToResult() (*domain.IdentityResult, error) {
	var facts domain.WalletFacts
	if len(i.Facts) > 0 {
		if err := json.Unmarshal(i.Facts, &facts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal facts: %w", err)
		}
	}

	var scores domain.ScoreSet
	if len(i.Scores) > 0 {
		if err := json.Unmarshal(i.Scores, &scores); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
		}
	}

	return &domain.IdentityResult{
		Address:    i.Address,
		Name:       i.Name,
		Tier:       domain.Tier(i.Tier),
		Verdict:    i.Verdict,
		Facts:      facts,
		Scores:     scores,
		Minted:     i.Minted,
		MintTxHash: i.MintTxHash,
		MintedAt:   i.MintedAt,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}, nil
}
