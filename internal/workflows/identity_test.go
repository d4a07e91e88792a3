package workflows_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/base-identity/identity-indexer/internal/domain"
	"github.com/base-identity/identity-indexer/internal/mocks"
	"github.com/base-identity/identity-indexer/internal/store"
	"github.com/base-identity/identity-indexer/internal/store/schema"
	"github.com/base-identity/identity-indexer/internal/workflows"
)

const walletAddress = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"

func testFacts() *domain.WalletFacts {
	return &domain.WalletFacts{
		Address:       walletAddress,
		NativeBalance: 12.5,
		TxCount:       1200,
		Holdings:      map[string]float64{"BRETT": 1523.8},
	}
}

func storedIdentity(t *testing.T) *schema.Identity {
	t.Helper()

	factsJSON, err := json.Marshal(testFacts())
	require.NoError(t, err)
	scoresJSON, err := json.Marshal(domain.ScoreSet{
		Wealth:    100,
		Vitality:  100,
		Community: 20,
		Final:     76,
		Tier:      domain.TierLegendary,
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	return &schema.Identity{
		Address:   walletAddress,
		Chain:     "eip155:8453",
		Name:      "Based Degen Champion",
		Tier:      "LEGENDARY",
		Verdict:   "A relentless trader woven into the fabric of Base.",
		Facts:     factsJSON,
		Scores:    scoresJSON,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newWorkflow(
	chainData *mocks.MockChainDataClient,
	oracle *mocks.MockGeminiClient,
	s *mocks.MockStore,
) workflows.IdentityWorkflow {
	return workflows.NewIdentityWorkflow(chainData, oracle, s, domain.ChainBaseMainnet)
}

func TestRun_InvalidAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wf := newWorkflow(
		mocks.NewMockChainDataClient(ctrl),
		mocks.NewMockGeminiClient(ctrl),
		mocks.NewMockStore(ctrl),
	)

	result, err := wf.Run(context.Background(), "not-an-address", false)
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	assert.Nil(t, result)
}

func TestRun_CacheHitSkipsPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		GetIdentity(gomock.Any(), walletAddress).
		Return(storedIdentity(t), nil)

	// Chain client and oracle must not be touched on a cache hit
	wf := newWorkflow(
		mocks.NewMockChainDataClient(ctrl),
		mocks.NewMockGeminiClient(ctrl),
		mockStore,
	)

	result, err := wf.Run(context.Background(), walletAddress, false)
	require.NoError(t, err)
	assert.Equal(t, "Based Degen Champion", result.Name)
	assert.Equal(t, domain.TierLegendary, result.Tier)
	assert.Equal(t, 12.5, result.Facts.NativeBalance)
	assert.Equal(t, uint64(1200), result.Facts.TxCount)
}

func TestRun_ForceBypassesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		GetIdentity(gomock.Any(), walletAddress).
		Return(storedIdentity(t), nil)

	mockChainData := mocks.NewMockChainDataClient(ctrl)
	mockChainData.EXPECT().
		FetchWalletFacts(gomock.Any(), walletAddress).
		Return(testFacts(), nil)

	mockOracle := mocks.NewMockGeminiClient(ctrl)
	mockOracle.EXPECT().
		GenerateIdentity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.NamingResult{
			Name:    "Reborn Degen",
			Verdict: "Back for another round.",
		}, nil)

	mockStore.EXPECT().
		UpsertIdentity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.UpsertIdentityInput) (*schema.Identity, error) {
			assert.Equal(t, "Reborn Degen", input.Name)
			updated := storedIdentity(t)
			updated.Name = input.Name
			updated.Verdict = input.Verdict
			return updated, nil
		})

	wf := newWorkflow(mockChainData, mockOracle, mockStore)

	result, err := wf.Run(context.Background(), walletAddress, true)
	require.NoError(t, err)
	assert.Equal(t, "Reborn Degen", result.Name)
}

func TestRun_FullPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		GetIdentity(gomock.Any(), walletAddress).
		Return(nil, nil)

	mockChainData := mocks.NewMockChainDataClient(ctrl)
	mockChainData.EXPECT().
		FetchWalletFacts(gomock.Any(), walletAddress).
		Return(testFacts(), nil)

	mockOracle := mocks.NewMockGeminiClient(ctrl)
	mockOracle.EXPECT().
		GenerateIdentity(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, facts domain.WalletFacts, scores domain.ScoreSet) (*domain.NamingResult, error) {
			// 12.5 ETH, 1200 txs, one token: 0.3*100 + 0.4*100 + 0.3*20 = 76
			assert.Equal(t, float64(76), scores.Final)
			assert.Equal(t, domain.TierLegendary, scores.Tier)
			return &domain.NamingResult{
				Name:    "Based Degen Champion",
				Verdict: "A relentless trader woven into the fabric of Base.",
			}, nil
		})

	mockStore.EXPECT().
		UpsertIdentity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.UpsertIdentityInput) (*schema.Identity, error) {
			assert.Equal(t, walletAddress, input.Address)
			assert.Equal(t, domain.ChainBaseMainnet, input.Chain)
			assert.Equal(t, "Based Degen Champion", input.Name)
			assert.Equal(t, domain.TierLegendary, input.Scores.Tier)
			return storedIdentity(t), nil
		})

	wf := newWorkflow(mockChainData, mockOracle, mockStore)

	result, err := wf.Run(context.Background(), walletAddress, false)
	require.NoError(t, err)
	assert.Equal(t, walletAddress, result.Address)
	assert.Equal(t, "Based Degen Champion", result.Name)
	assert.False(t, result.Minted)
}

func TestRun_ChecksumsAddressBeforeCacheLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		GetIdentity(gomock.Any(), walletAddress).
		Return(storedIdentity(t), nil)

	wf := newWorkflow(
		mocks.NewMockChainDataClient(ctrl),
		mocks.NewMockGeminiClient(ctrl),
		mockStore,
	)

	_, err := wf.Run(context.Background(), "0xd8da6bf26964af9d7eed9e03e53415d37aa96045", false)
	require.NoError(t, err)
}

func TestRun_AnalyzeFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		GetIdentity(gomock.Any(), walletAddress).
		Return(nil, nil)

	mockChainData := mocks.NewMockChainDataClient(ctrl)
	mockChainData.EXPECT().
		FetchWalletFacts(gomock.Any(), walletAddress).
		Return(nil, domain.ErrProviderUnavailable)

	wf := newWorkflow(mockChainData, mocks.NewMockGeminiClient(ctrl), mockStore)

	result, err := wf.Run(context.Background(), walletAddress, false)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)

	var stageErr *workflows.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, workflows.StageAnalyze, stageErr.Stage)
}

func TestRun_OracleFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		GetIdentity(gomock.Any(), walletAddress).
		Return(nil, nil)

	mockChainData := mocks.NewMockChainDataClient(ctrl)
	mockChainData.EXPECT().
		FetchWalletFacts(gomock.Any(), walletAddress).
		Return(testFacts(), nil)

	mockOracle := mocks.NewMockGeminiClient(ctrl)
	mockOracle.EXPECT().
		GenerateIdentity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("oracle timeout"))

	mockStore.EXPECT().
		UpsertIdentity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.UpsertIdentityInput) (*schema.Identity, error) {
			assert.Equal(t, "Base LEGENDARY Wallet", input.Name)
			assert.Equal(t, "A legendary tier wallet on Base with 1200 transactions.", input.Verdict)
			updated := storedIdentity(t)
			updated.Name = input.Name
			updated.Verdict = input.Verdict
			return updated, nil
		})

	wf := newWorkflow(mockChainData, mockOracle, mockStore)

	// The run still completes: naming degradation is a soft failure
	result, err := wf.Run(context.Background(), walletAddress, false)
	require.NoError(t, err)
	assert.Equal(t, "Base LEGENDARY Wallet", result.Name)
}

func TestRun_PersistFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		GetIdentity(gomock.Any(), walletAddress).
		Return(nil, nil)
	mockStore.EXPECT().
		UpsertIdentity(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	mockChainData := mocks.NewMockChainDataClient(ctrl)
	mockChainData.EXPECT().
		FetchWalletFacts(gomock.Any(), walletAddress).
		Return(testFacts(), nil)

	mockOracle := mocks.NewMockGeminiClient(ctrl)
	mockOracle.EXPECT().
		GenerateIdentity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.NamingResult{Name: "n", Verdict: "v"}, nil)

	wf := newWorkflow(mockChainData, mockOracle, mockStore)

	result, err := wf.Run(context.Background(), walletAddress, false)
	assert.Nil(t, result)

	var stageErr *workflows.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, workflows.StagePersist, stageErr.Stage)
}

func TestRun_CacheLookupFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		GetIdentity(gomock.Any(), walletAddress).
		Return(nil, errors.New("connection refused"))

	wf := newWorkflow(
		mocks.NewMockChainDataClient(ctrl),
		mocks.NewMockGeminiClient(ctrl),
		mockStore,
	)

	result, err := wf.Run(context.Background(), walletAddress, false)
	assert.Nil(t, result)

	var stageErr *workflows.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, workflows.StageCache, stageErr.Stage)
}
