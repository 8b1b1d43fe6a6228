package game

// PlayerAccount is the session-wide view of the player.
type PlayerAccount struct {
	Balance             int  `json:"balance"`
	ConsecutiveWins     int  `json:"consecutive_wins"`
	ConsecutiveCashouts int  `json:"-"`
	ForceNextLoss       bool `json:"-"`
	TotalRoundsPlayed   int  `json:"total_rounds_played"`
	Normalized          bool `json:"-"`
}

// Round is the state of the round being played.
type Round struct {
	Bet              int     `json:"bet"`
	SafeRevealsFound int     `json:"safe_reveals_found"`
	TotalSafeCells   int     `json:"total_safe_cells"`
	Multiplier       float64 `json:"multiplier"`
	HazardCount      int     `json:"hazard_count"`
}

// RevealContext is what a strategy sees for a single reveal.
type RevealContext struct {
	Index   int
	Board   *Board
	Account PlayerAccount
	Round   *Round
}

// Strategy is one outcome mechanism. Apply returns true when it decided the
// outcome of the reveal, which stops lower priority strategies from running.
type Strategy interface {
	Name() string
	Apply(rc RevealContext) bool
}

// OutcomeEngine runs its strategies in priority order on every reveal,
// stopping at the first one that applies.
type OutcomeEngine struct {
	strategies []Strategy
}

func NewOutcomeEngine(strategies ...Strategy) *OutcomeEngine {
	return &OutcomeEngine{strategies: strategies}
}

// NewOutcomeEngineFromConfig composes the enabled strategies in fixed order:
// streak loss, probabilistic loss, then low-balance assistance.
func NewOutcomeEngineFromConfig(cfg Config, tiers *TierResolver, streak *StreakController, normalization *NormalizationController, rng RandomSource) *OutcomeEngine {
	var strategies []Strategy
	if cfg.Strategies.StreakControl {
		strategies = append(strategies, &StreakLoss{tiers: tiers, streak: streak, rng: rng})
	}
	if cfg.Strategies.ProbabilisticLoss {
		strategies = append(strategies, &ProbabilisticLoss{tiers: tiers, normalization: normalization, rng: rng})
	}
	if cfg.Strategies.GuaranteedSafe {
		strategies = append(strategies, &LowBalanceAssist{tiers: tiers, rng: rng})
	}
	return NewOutcomeEngine(strategies...)
}

// OnReveal must be called before the cell's hazard flag is read.
func (e *OutcomeEngine) OnReveal(index int, board *Board, account PlayerAccount, round *Round) bool {
	rc := RevealContext{Index: index, Board: board, Account: account, Round: round}
	for _, s := range e.strategies {
		if s.Apply(rc) {
			return true
		}
	}
	return false
}

// Strategies lists the composed strategy names in priority order.
func (e *OutcomeEngine) Strategies() []string {
	names := make([]string, 0, len(e.strategies))
	for _, s := range e.strategies {
		names = append(names, s.Name())
	}
	return names
}

// forceLoss ensures the clicked cell holds a hazard. A cell that already has
// one counts as applied.
func forceLoss(rc RevealContext, rng RandomSource) bool {
	if rc.Board.HasHazard(rc.Index) {
		return true
	}
	return rc.Board.ForceHazard(rc.Index, rng)
}

type StreakLoss struct {
	tiers  *TierResolver
	streak *StreakController
	rng    RandomSource
}

func (s *StreakLoss) Name() string { return "streak_loss" }

func (s *StreakLoss) Apply(rc RevealContext) bool {
	if s.tiers.Assisted(rc.Account.Balance) || rc.Round.SafeRevealsFound != 0 {
		return false
	}
	if !s.streak.ConsumeForceNextLoss() {
		return false
	}
	return forceLoss(rc, s.rng)
}

type ProbabilisticLoss struct {
	tiers         *TierResolver
	normalization *NormalizationController
	rng           RandomSource
}

func (p *ProbabilisticLoss) Name() string { return "probabilistic_loss" }

func (p *ProbabilisticLoss) Apply(rc RevealContext) bool {
	if p.tiers.Assisted(rc.Account.Balance) {
		return false
	}
	if p.normalization != nil && p.normalization.Normalized() {
		return false
	}
	chance := p.tiers.ResolveLossChance(rc.Account.Balance)
	if chance <= 0 {
		return false
	}
	if p.rng.Float64() >= chance {
		return false
	}
	return forceLoss(rc, p.rng)
}

type LowBalanceAssist struct {
	tiers *TierResolver
	rng   RandomSource
}

func (l *LowBalanceAssist) Name() string { return "low_balance_assist" }

func (l *LowBalanceAssist) Apply(rc RevealContext) bool {
	if !l.tiers.Assisted(rc.Account.Balance) {
		return false
	}

	allowed := l.tiers.ResolveSafeLimit(rc.Account.Balance)
	if rc.Round.SafeRevealsFound < allowed {
		if !rc.Board.HasHazard(rc.Index) {
			return false
		}
		return rc.Board.RelocateHazard(rc.Index, l.rng)
	}

	if rc.Board.HasHazard(rc.Index) {
		return false
	}
	return rc.Board.ForceHazard(rc.Index, l.rng)
}
