package game

import "math"

// PayoutCalculator derives the multiplier and settled winnings of a round.
type PayoutCalculator struct {
	baseGrowth  float64
	riskFactors map[int]float64
	maxBalance  int
}

func NewPayoutCalculator(cfg Config) *PayoutCalculator {
	return &PayoutCalculator{
		baseGrowth:  cfg.BaseGrowth,
		riskFactors: cfg.RiskFactors,
		maxBalance:  cfg.MaxBalance,
	}
}

// Multiplier is baseGrowth^found * riskFactor(hazards), rounded to 2 decimals.
func (p *PayoutCalculator) Multiplier(found, hazards int) float64 {
	risk, ok := p.riskFactors[hazards]
	if !ok {
		risk = 1
	}
	m := math.Pow(p.baseGrowth, float64(found)) * risk
	return math.Round(m*100) / 100
}

// Winnings is floor(bet * multiplier), cut so balance plus winnings never
// passes the maximum balance. The excess is discarded.
func (p *PayoutCalculator) Winnings(bet int, multiplier float64, balance int) int {
	winnings := int(math.Floor(float64(bet) * multiplier))
	if balance+winnings > p.maxBalance {
		winnings = p.maxBalance - balance
	}
	if winnings < 0 {
		winnings = 0
	}
	return winnings
}
