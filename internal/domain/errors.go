package domain

import "errors"

var (
	// ErrInvalidAddress is returned when an address fails format validation,
	// before any network call is made
	ErrInvalidAddress = errors.New("invalid wallet address")

	// ErrProviderUnavailable is returned when the chain data provider cannot
	// be reached
	ErrProviderUnavailable = errors.New("chain data provider unavailable")

	// ErrDataFetch is returned when a balance or transaction count fetch
	// fails after provider connectivity was confirmed. Partial results are
	// never zero-filled.
	ErrDataFetch = errors.New("failed to fetch wallet data")

	// ErrIdentityNotFound is returned when no identity record exists for an
	// address
	ErrIdentityNotFound = errors.New("identity not found")
)
