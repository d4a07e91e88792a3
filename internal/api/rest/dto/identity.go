package dto

import (
	"errors"
	"regexp"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// MintRequest is the body of the mint endpoint. The transaction hash is
// recorded as supplied; on-chain verification is out of scope.
type MintRequest struct {
	TxHash string `json:"tx_hash"`
}

// Validate checks the mint request fields
func (r *MintRequest) Validate() error {
	if r.TxHash == "" {
		return errors.New("tx_hash is required")
	}
	if !txHashPattern.MatchString(r.TxHash) {
		return errors.New("tx_hash must be a 0x-prefixed 32-byte hex string")
	}
	return nil
}
