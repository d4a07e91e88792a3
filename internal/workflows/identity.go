// Package workflows orchestrates the wallet analysis pipeline: on-chain facts
// are fetched and scored, the naming oracle produces a name and verdict, and
// the combined record is persisted. Each run is an independent sequential
// pipeline with a cache short-circuit in front of it.
package workflows

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/base-identity/identity-indexer/internal/domain"
	"github.com/base-identity/identity-indexer/internal/logger"
	"github.com/base-identity/identity-indexer/internal/providers/ethereum"
	"github.com/base-identity/identity-indexer/internal/providers/gemini"
	"github.com/base-identity/identity-indexer/internal/scoring"
	"github.com/base-identity/identity-indexer/internal/store"
)

// State tracks the progress of a pipeline run
type State string

const (
	StatePending   State = "PENDING"
	StateAnalyzed  State = "ANALYZED"
	StateNamed     State = "NAMED"
	StatePersisted State = "PERSISTED"
)

// Stage identifies the pipeline stage an error originated from
type Stage string

const (
	StageCache   Stage = "cache"
	StageAnalyze Stage = "analyze"
	StageName    Stage = "name"
	StagePersist Stage = "persist"
)

// StageError wraps a pipeline failure with the stage that produced it
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// IdentityWorkflow runs the full analysis pipeline for a wallet address
//
//go:generate mockgen -source=identity.go -destination=../mocks/identity_workflow.go -package=mocks -mock_names=IdentityWorkflow=MockIdentityWorkflow
type IdentityWorkflow interface {
	// Run analyzes an address and returns the persisted identity. A stored
	// record short-circuits the pipeline unless force is set.
	Run(ctx context.Context, address string, force bool) (*domain.IdentityResult, error)
}

type identityWorkflow struct {
	chainData ethereum.ChainDataClient
	oracle    gemini.Client
	store     store.Store
	chain     domain.Chain
}

// NewIdentityWorkflow creates a new identity analysis workflow
func NewIdentityWorkflow(
	chainData ethereum.ChainDataClient,
	oracle gemini.Client,
	s store.Store,
	chain domain.Chain,
) IdentityWorkflow {
	return &identityWorkflow{
		chainData: chainData,
		oracle:    oracle,
		store:     s,
		chain:     chain,
	}
}

// Run drives the pipeline PENDING -> ANALYZED -> NAMED -> PERSISTED.
// No retries between stages: a stage either advances the run or aborts it
// with the originating stage attached.
func (w *identityWorkflow) Run(ctx context.Context, address string, force bool) (*domain.IdentityResult, error) {
	if !domain.IsValidAddress(address) {
		return nil, domain.ErrInvalidAddress
	}
	checksummed := domain.ChecksumAddress(address)

	// Cache check: an existing record means the expensive naming call has
	// already happened for this address
	cached, err := w.store.GetIdentity(ctx, checksummed)
	if err != nil {
		return nil, &StageError{Stage: StageCache, Err: err}
	}
	if cached != nil && !force {
		logger.Debug("identity cache hit", zap.String("address", checksummed))
		return cached.ToResult()
	}

	logger.Info("starting wallet analysis",
		zap.String("address", checksummed),
		zap.Bool("force", force),
		zap.String("state", string(StatePending)))

	// Analyze
	facts, err := w.chainData.FetchWalletFacts(ctx, checksummed)
	if err != nil {
		return nil, &StageError{Stage: StageAnalyze, Err: err}
	}
	scores := scoring.Score(*facts)
	logger.Debug("wallet analyzed",
		zap.String("address", checksummed),
		zap.Float64("final_score", scores.Final),
		zap.String("tier", string(scores.Tier)),
		zap.String("state", string(StateAnalyzed)))

	// Name: oracle failure degrades to a templated name, never aborts the run
	naming, err := w.oracle.GenerateIdentity(ctx, *facts, scores)
	if err != nil {
		logger.Warn("naming oracle degraded, using fallback",
			zap.String("address", checksummed),
			zap.Error(err))
		naming = fallbackNaming(scores.Tier, facts.TxCount)
	}
	logger.Debug("wallet named",
		zap.String("address", checksummed),
		zap.String("state", string(StateNamed)))

	// Persist
	identity, err := w.store.UpsertIdentity(ctx, store.UpsertIdentityInput{
		Address: checksummed,
		Chain:   w.chain,
		Name:    naming.Name,
		Verdict: naming.Verdict,
		Facts:   *facts,
		Scores:  scores,
	})
	if err != nil {
		return nil, &StageError{Stage: StagePersist, Err: err}
	}

	logger.Info("wallet analysis complete",
		zap.String("address", checksummed),
		zap.String("name", identity.Name),
		zap.String("state", string(StatePersisted)))

	return identity.ToResult()
}

// fallbackNaming builds the deterministic naming used when the oracle is
// unavailable or returns a malformed reply
func fallbackNaming(tier domain.Tier, txCount uint64) *domain.NamingResult {
	return &domain.NamingResult{
		Name:    fmt.Sprintf("Base %s Wallet", tier),
		Verdict: fmt.Sprintf("A %s tier wallet on Base with %d transactions.", strings.ToLower(string(tier)), txCount),
	}
}
