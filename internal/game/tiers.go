package game

import "math"

// Unlimited is returned by ResolveSafeLimit when no reveal count forces a loss.
const Unlimited = math.MaxInt

// TierResolver maps a balance onto the guaranteed-safe and loss-chance tables.
// Lookups are pure for a fixed balance; the only state consulted is whether
// the session has been normalized.
type TierResolver struct {
	forceWinThreshold int
	safeTiers         []SafeTier // descending thresholds
	lossTiers         []LossTier // descending thresholds
	defaultLossChance float64
	normalization     *NormalizationController
}

func NewTierResolver(cfg Config, normalization *NormalizationController) *TierResolver {
	return &TierResolver{
		forceWinThreshold: cfg.ForceWinThreshold,
		safeTiers:         cfg.SafeTiers,
		lossTiers:         cfg.LossTiers,
		defaultLossChance: cfg.DefaultLossChance,
		normalization:     normalization,
	}
}

// Assisted reports whether balance is in the low-balance regime.
func (t *TierResolver) Assisted(balance int) bool {
	return balance < t.forceWinThreshold
}

// ResolveSafeLimit returns how many safe reveals are guaranteed before a loss
// is forced. Below the lowest tier the lowest tier's value applies.
func (t *TierResolver) ResolveSafeLimit(balance int) int {
	if !t.Assisted(balance) || len(t.safeTiers) == 0 {
		return Unlimited
	}
	for _, tier := range t.safeTiers {
		if balance >= tier.Threshold {
			return tier.MaxSpaces
		}
	}
	return t.safeTiers[len(t.safeTiers)-1].MaxSpaces
}

// ResolveLossChance returns the per-reveal forced loss probability. It is zero
// in the low-balance regime and once the session is normalized.
func (t *TierResolver) ResolveLossChance(balance int) float64 {
	if t.Assisted(balance) {
		return 0
	}
	if t.normalization != nil && t.normalization.Normalized() {
		return 0
	}
	for _, tier := range t.lossTiers {
		if balance >= tier.Threshold {
			return tier.Chance
		}
	}
	return t.defaultLossChance
}
