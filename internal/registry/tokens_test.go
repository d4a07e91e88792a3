package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/base-identity/identity-indexer/internal/registry"
)

func TestLoadTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	contents := `{
		"DEGEN": "0x4ed4e862860bed51a9570b96d89af5e1b0efefed",
		"BRETT": "0x532f27101965dd16442E59d40670FaF5eBB142E4"
	}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	reg, err := registry.LoadTokens(path)
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())

	tokens := reg.Tokens()
	// Ordered by symbol, addresses checksummed
	assert.Equal(t, "BRETT", tokens[0].Symbol)
	assert.Equal(t, "0x532f27101965dd16442E59d40670FaF5eBB142E4", tokens[0].ContractAddress)
	assert.Equal(t, "DEGEN", tokens[1].Symbol)
	assert.Equal(t, "0x4ed4E862860beD51a9570b96d89aF5E1B0Efefed", tokens[1].ContractAddress)
}

func TestLoadTokens_FileNotFound(t *testing.T) {
	_, err := registry.LoadTokens(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadTokens_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"BRETT": `), 0o600))

	_, err := registry.LoadTokens(path)
	assert.Error(t, err)
}

func TestNewTokenRegistry_InvalidAddress(t *testing.T) {
	_, err := registry.NewTokenRegistry(registry.TokenData{
		"BRETT": "not-an-address",
	})
	assert.ErrorContains(t, err, "invalid contract address")
}

func TestNewTokenRegistry_EmptySymbol(t *testing.T) {
	_, err := registry.NewTokenRegistry(registry.TokenData{
		"": "0x532f27101965dd16442E59d40670FaF5eBB142E4",
	})
	assert.ErrorContains(t, err, "empty symbol")
}

func TestTokenRegistry_TokensReturnsCopy(t *testing.T) {
	reg, err := registry.NewTokenRegistry(registry.TokenData{
		"AERO": "0x940181a94A35A4569E4529A3CDfB74e38FD98631",
	})
	require.NoError(t, err)

	tokens := reg.Tokens()
	tokens[0].Symbol = "MUTATED"

	assert.Equal(t, "AERO", reg.Tokens()[0].Symbol)
}
