package game

// NormalizationController counts rounds and, past the threshold, switches the
// probabilistic loss mechanism off for the rest of the session.
type NormalizationController struct {
	threshold   int
	enabled     bool
	totalRounds int
	normalized  bool
}

func NewNormalizationController(threshold int, enabled bool) *NormalizationController {
	return &NormalizationController{threshold: threshold, enabled: enabled}
}

func (n *NormalizationController) OnRoundStart() {
	n.totalRounds++
	if n.enabled && !n.normalized && n.totalRounds >= n.threshold {
		n.normalized = true
	}
}

func (n *NormalizationController) Normalized() bool { return n.normalized }

func (n *NormalizationController) TotalRounds() int { return n.totalRounds }

// Reset is only called on a full session reset.
func (n *NormalizationController) Reset() {
	n.totalRounds = 0
	n.normalized = false
}
