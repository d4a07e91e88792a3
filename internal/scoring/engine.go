// Package scoring implements the deterministic wallet scoring rules: three
// step-function sub-scores combined into a weighted final score and a tier.
// It is pure and performs no I/O.
package scoring

import (
	"github.com/base-identity/identity-indexer/internal/domain"
)

// Weighting of the three sub-scores. Vitality is weighted highest: on-chain
// activity matters more than raw balance or token diversity.
const (
	wealthWeight    = 0.3
	vitalityWeight  = 0.4
	communityWeight = 0.3
)

// Tier thresholds on the final score. Boundaries are inclusive on the lower
// bound of each band; the four bands partition [0, 100].
const (
	godlyThreshold     = 85
	legendaryThreshold = 65
	rareThreshold      = 40
)

// pointsPerToken is the community score contribution of each distinct token
// held with a positive balance
const pointsPerToken = 20

// Score derives the full ScoreSet from wallet facts
func Score(facts domain.WalletFacts) domain.ScoreSet {
	wealth := WealthScore(facts.NativeBalance)
	vitality := VitalityScore(facts.TxCount)
	community := CommunityScore(facts.Holdings)

	final := wealthWeight*wealth + vitalityWeight*vitality + communityWeight*community

	return domain.ScoreSet{
		Wealth:    wealth,
		Vitality:  vitality,
		Community: community,
		Final:     final,
		Tier:      TierFor(final),
	}
}

// WealthScore maps the native balance (in whole units) to a step score
func WealthScore(nativeBalance float64) float64 {
	switch {
	case nativeBalance >= 10:
		return 100
	case nativeBalance >= 1:
		return 80
	case nativeBalance >= 0.1:
		return 50
	default:
		return 20
	}
}

// VitalityScore maps the transaction count to a step score
func VitalityScore(txCount uint64) float64 {
	switch {
	case txCount >= 1000:
		return 100
	case txCount >= 500:
		return 85
	case txCount >= 100:
		return 60
	case txCount >= 20:
		return 40
	default:
		return 10
	}
}

// CommunityScore awards pointsPerToken per distinct token held with a
// positive balance, capped at 100
func CommunityScore(holdings map[string]float64) float64 {
	score := 0.0
	for _, balance := range holdings {
		if balance > 0 {
			score += pointsPerToken
		}
	}

	if score > 100 {
		return 100
	}
	return score
}

// TierFor maps a final score to its tier band
func TierFor(finalScore float64) domain.Tier {
	switch {
	case finalScore >= godlyThreshold:
		return domain.TierGodly
	case finalScore >= legendaryThreshold:
		return domain.TierLegendary
	case finalScore >= rareThreshold:
		return domain.TierRare
	default:
		return domain.TierCommon
	}
}
