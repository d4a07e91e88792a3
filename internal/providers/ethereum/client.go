package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/base-identity/identity-indexer/internal/adapter"
	"github.com/base-identity/identity-indexer/internal/domain"
	"github.com/base-identity/identity-indexer/internal/logger"
	"github.com/base-identity/identity-indexer/internal/registry"
)

// erc20BalanceOfABI is the minimal ERC-20 fragment needed to query balances
const erc20BalanceOfABI = `[{"constant":true,"inputs":[{"name":"_owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"balance","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"}]`

// ChainDataClient fetches raw wallet facts from the chain data provider
//
//go:generate mockgen -source=client.go -destination=../../mocks/chain_data_client.go -package=mocks -mock_names=ChainDataClient=MockChainDataClient
type ChainDataClient interface {
	// FetchWalletFacts fetches native balance, transaction count and token
	// holdings for an address. Individual token lookups are isolated: a
	// single failing token contract never aborts the fetch.
	FetchWalletFacts(ctx context.Context, address string) (*domain.WalletFacts, error)

	// Close closes the underlying connection
	Close()
}

type chainDataClient struct {
	client  adapter.EthClient
	tokens  registry.TokenRegistry
	timeout time.Duration
}

// NewClient creates a new chain data client. timeout bounds every call to the
// provider.
func NewClient(client adapter.EthClient, tokens registry.TokenRegistry, timeout time.Duration) ChainDataClient {
	return &chainDataClient{client: client, tokens: tokens, timeout: timeout}
}

// FetchWalletFacts fetches native balance, transaction count and token holdings
func (c *chainDataClient) FetchWalletFacts(ctx context.Context, address string) (*domain.WalletFacts, error) {
	// Validate before any network call
	if !domain.IsValidAddress(address) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, address)
	}
	account := common.HexToAddress(address)

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// Connectivity probe; everything after a successful probe is a data
	// fetch failure, not a connectivity one
	if _, err := c.client.ChainID(timeoutCtx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	balanceWei, txCount, err := c.fetchAccountState(timeoutCtx, account)
	if err != nil {
		// Balance and tx count are never zero-filled on failure
		return nil, fmt.Errorf("%w: %v", domain.ErrDataFetch, err)
	}

	facts := &domain.WalletFacts{
		Address:       account.Hex(),
		NativeBalance: weiToUnits(balanceWei),
		TxCount:       txCount,
		Holdings:      c.fetchHoldings(timeoutCtx, account),
	}

	return facts, nil
}

// fetchAccountState fetches the native balance and transaction count
// concurrently, failing if either read fails
func (c *chainDataClient) fetchAccountState(ctx context.Context, account common.Address) (*big.Int, uint64, error) {
	type balanceResult struct {
		wei *big.Int
		err error
	}
	type nonceResult struct {
		count uint64
		err   error
	}

	balanceCh := make(chan balanceResult, 1)
	nonceCh := make(chan nonceResult, 1)

	go func() {
		wei, err := c.client.BalanceAt(ctx, account, nil)
		balanceCh <- balanceResult{wei: wei, err: err}
	}()
	go func() {
		count, err := c.client.NonceAt(ctx, account, nil)
		nonceCh <- nonceResult{count: count, err: err}
	}()

	balance := <-balanceCh
	if balance.err != nil {
		return nil, 0, fmt.Errorf("failed to get native balance: %w", balance.err)
	}

	nonce := <-nonceCh
	if nonce.err != nil {
		return nil, 0, fmt.Errorf("failed to get transaction count: %w", nonce.err)
	}

	return balance.wei, nonce.count, nil
}

// fetchHoldings queries the balance of every configured token concurrently
// through a bounded worker pool. Failing lookups degrade to "absent"; tokens
// with zero balance are omitted.
func (c *chainDataClient) fetchHoldings(ctx context.Context, account common.Address) map[string]float64 {
	tokens := c.tokens.Tokens()
	holdings := make(map[string]float64, len(tokens))
	if len(tokens) == 0 {
		return holdings
	}

	type tokenResult struct {
		symbol  string
		balance float64
	}

	resultsCh := make(chan tokenResult, len(tokens))
	pool := pond.NewPool(len(tokens))

	for _, token := range tokens {
		pool.Submit(func() {
			balanceWei, err := c.erc20BalanceOf(ctx, token.ContractAddress, account)
			if err != nil {
				// Isolated per-token failure: a paused or malformed token
				// contract must not block wallet analysis
				logger.Debug("token balance lookup failed",
					zap.String("symbol", token.Symbol),
					zap.String("contract", token.ContractAddress),
					zap.Error(err))
				return
			}
			resultsCh <- tokenResult{symbol: token.Symbol, balance: weiToUnits(balanceWei)}
		})
	}

	pool.StopAndWait()
	close(resultsCh)

	for result := range resultsCh {
		if result.balance > 0 {
			holdings[result.symbol] = result.balance
		}
	}

	return holdings
}

// erc20BalanceOf calls balanceOf(owner) on an ERC-20 contract
func (c *chainDataClient) erc20BalanceOf(ctx context.Context, contractAddress string, owner common.Address) (*big.Int, error) {
	balanceOfABI, err := abi.JSON(strings.NewReader(erc20BalanceOfABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	data, err := balanceOfABI.Pack("balanceOf", owner)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	contractAddr := common.HexToAddress(contractAddress)
	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %w", err)
	}

	var balance *big.Int
	if err := balanceOfABI.UnpackIntoInterface(&balance, "balanceOf", result); err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}

	return balance, nil
}

// weiToUnits divides a smallest-unit integer by 10^18. The divisor is applied
// uniformly regardless of the token's actual decimal precision.
func weiToUnits(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	units, _ := new(big.Float).Quo(
		new(big.Float).SetInt(wei),
		big.NewFloat(domain.WeiPerEther),
	).Float64()
	return units
}

// Close closes the connection
func (c *chainDataClient) Close() {
	c.client.Close()
}
