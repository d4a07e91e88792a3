package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	// ChainBaseMainnet represents Base mainnet (chain ID: 8453)
	ChainBaseMainnet Chain = "eip155:8453"
	// ChainBaseSepolia represents Base Sepolia testnet (chain ID: 84532)
	ChainBaseSepolia Chain = "eip155:84532"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainBaseMainnet || chain == ChainBaseSepolia
}

// Tier is the ordinal classification label derived from the final weighted score
type Tier string

const (
	TierCommon    Tier = "COMMON"
	TierRare      Tier = "RARE"
	TierLegendary Tier = "LEGENDARY"
	TierGodly     Tier = "GODLY"
)

// Rank returns the ordinal position of the tier, lowest first.
// Unknown tiers rank below COMMON.
func (t Tier) Rank() int {
	switch t {
	case TierCommon:
		return 1
	case TierRare:
		return 2
	case TierLegendary:
		return 3
	case TierGodly:
		return 4
	default:
		return 0
	}
}

// WalletFacts holds the raw on-chain facts for a wallet, produced per analysis run.
// Balances are expressed in whole units (smallest-unit integer divided by 10^18).
type WalletFacts struct {
	// Address is the checksummed wallet address
	Address string `json:"address"`
	// NativeBalance is the native currency balance in whole units
	NativeBalance float64 `json:"native_balance"`
	// TxCount is the outgoing transaction count of the address
	TxCount uint64 `json:"tx_count"`
	// Holdings maps token symbol to balance; tokens with zero or unreadable
	// balance are absent, never zero-valued entries
	Holdings map[string]float64 `json:"holdings"`
}

// HeldSymbols returns the symbols of all tokens with a positive balance
func (f *WalletFacts) HeldSymbols() []string {
	symbols := make([]string, 0, len(f.Holdings))
	for symbol, balance := range f.Holdings {
		if balance > 0 {
			symbols = append(symbols, symbol)
		}
	}
	return symbols
}

// ScoreSet is the deterministic scoring derived from WalletFacts.
// All sub-scores and the final score are in [0, 100].
type ScoreSet struct {
	Wealth    float64 `json:"wealth_score"`
	Vitality  float64 `json:"vitality_score"`
	Community float64 `json:"community_score"`
	Final     float64 `json:"final_score"`
	Tier      Tier    `json:"tier"`
}

// NamingResult is the output of the naming oracle: a short title and a
// one-sentence verdict for the wallet
type NamingResult struct {
	Name    string `json:"name"`
	Verdict string `json:"verdict"`
}

// IdentityResult is the caller-facing result shape consumed by UI and CLI
// collaborators
type IdentityResult struct {
	Address    string      `json:"address"`
	Name       string      `json:"name"`
	Tier       Tier        `json:"tier"`
	Verdict    string      `json:"verdict"`
	Facts      WalletFacts `json:"facts"`
	Scores     ScoreSet    `json:"scores"`
	Minted     bool        `json:"minted"`
	MintTxHash *string     `json:"mint_tx_hash,omitempty"`
	MintedAt   *time.Time  `json:"minted_at,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// IsValidAddress checks whether the string is a well-formed hex address
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// ChecksumAddress normalizes a hex address to its EIP-55 checksummed form.
// The address must already be well-formed.
func ChecksumAddress(address string) string {
	return common.HexToAddress(address).Hex()
}
