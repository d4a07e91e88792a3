package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/base-identity/identity-indexer/internal/domain"
)

// Token is a configured ERC-20 contract whose balance contributes to the
// community score
type Token struct {
	Symbol          string
	ContractAddress string
}

// TokenRegistry defines the interface for the configured token set
//
//go:generate mockgen -source=tokens.go -destination=../mocks/token_registry.go -package=mocks -mock_names=TokenRegistry=MockTokenRegistry
type TokenRegistry interface {
	// Tokens returns the configured tokens ordered by symbol
	Tokens() []Token

	// Len returns the number of configured tokens
	Len() int
}

// TokenData represents the structure of the tokens.json file.
// Key format: token symbol -> contract address.
type TokenData map[string]string

// tokenRegistry is the internal implementation of TokenRegistry
type tokenRegistry struct {
	tokens []Token
}

// LoadTokens loads the token registry from a JSON file
func LoadTokens(filePath string) (TokenRegistry, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec,G304 // This should be a trusted file
	if err != nil {
		return nil, fmt.Errorf("failed to read tokens file: %w", err)
	}

	var tokenData TokenData
	if err := json.Unmarshal(data, &tokenData); err != nil {
		return nil, fmt.Errorf("failed to parse tokens JSON: %w", err)
	}

	return NewTokenRegistry(tokenData)
}

// NewTokenRegistry builds a registry from a symbol -> contract address map,
// validating and checksumming every address
func NewTokenRegistry(data TokenData) (TokenRegistry, error) {
	tokens := make([]Token, 0, len(data))
	for symbol, address := range data {
		if symbol == "" {
			return nil, fmt.Errorf("token with empty symbol: %s", address)
		}
		if !domain.IsValidAddress(address) {
			return nil, fmt.Errorf("invalid contract address for token %s: %s", symbol, address)
		}
		tokens = append(tokens, Token{
			Symbol:          symbol,
			ContractAddress: domain.ChecksumAddress(address),
		})
	}

	// Deterministic order keeps fetch scheduling and logs stable
	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].Symbol < tokens[j].Symbol
	})

	return &tokenRegistry{tokens: tokens}, nil
}

// Tokens returns the configured tokens ordered by symbol
func (r *tokenRegistry) Tokens() []Token {
	out := make([]Token, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// Len returns the number of configured tokens
func (r *tokenRegistry) Len() int {
	return len(r.tokens)
}
