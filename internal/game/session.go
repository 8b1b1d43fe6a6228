package game

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Session evaluates one player's rounds, one at a time. All round and
// account state is owned here and every call is serialized.
type Session struct {
	mu sync.Mutex

	cfg    Config
	rng    RandomSource
	logger *log.Logger
	now    func() time.Time

	tiers         *TierResolver
	streak        *StreakController
	normalization *NormalizationController
	engine        *OutcomeEngine
	payout        *PayoutCalculator

	board           *Board
	round           *Round
	state           GameState
	balance         int
	consecutiveWins int
	limitReached    bool
	resetAt         time.Time
}

type Option func(*Session)

// WithRNG sets the random source shared by placement and the outcome engine.
func WithRNG(rng RandomSource) Option {
	return func(s *Session) { s.rng = rng }
}

// WithLogger enables lifecycle logging.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		rng:     DefaultRNG(),
		now:     time.Now,
		board:   NewBoard(cfg.BoardSize),
		state:   StateReady,
		balance: cfg.InitialBalance,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.normalization = NewNormalizationController(cfg.NormalizationThreshold, cfg.Strategies.Normalization)
	s.tiers = NewTierResolver(cfg, s.normalization)
	s.streak = NewStreakController(cfg.ForceWinThreshold, cfg.MaxConsecutiveCashouts)
	s.engine = NewOutcomeEngineFromConfig(cfg, s.tiers, s.streak, s.normalization, s.rng)
	s.payout = NewPayoutCalculator(cfg)
	return s, nil
}

// StartRound deducts the bet, places hazardCount hazards and opens a round.
// A round that just ended keeps its board until the reset delay elapses.
func (s *Session) StartRound(bet, hazardCount int) (RoundStarted, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limitReached {
		return RoundStarted{}, ErrLimitReached
	}
	if s.state == StatePlaying {
		return RoundStarted{}, ErrRoundInProgress
	}
	if s.state.Ended() {
		if s.now().Before(s.resetAt) {
			return RoundStarted{}, ErrResetPending
		}
		s.resetBoard()
	}
	if s.balance <= s.cfg.MinBalance {
		return RoundStarted{}, ErrBalanceFloor
	}
	if !s.cfg.validHazardCount(hazardCount) {
		return RoundStarted{}, fmt.Errorf("%w: %d", ErrInvalidHazardCount, hazardCount)
	}
	if bet > s.balance {
		return RoundStarted{}, ErrInsufficientBalance
	}
	bet = s.clampBet(bet)
	if bet > s.balance {
		return RoundStarted{}, fmt.Errorf("%w: balance %d below minimum bet %d", ErrInvalidBetAmount, s.balance, s.cfg.MinBet)
	}

	s.balance = s.clampBalance(s.balance - bet)
	s.normalization.OnRoundStart()
	s.board.PlaceHazards(hazardCount, s.rng)
	s.round = &Round{
		Bet:            bet,
		TotalSafeCells: s.board.Size() - hazardCount,
		Multiplier:     1.0,
		HazardCount:    hazardCount,
	}
	s.state = StatePlaying

	s.logf("[MINES] Round %d started: bet %d, %d hazards, balance %d",
		s.normalization.TotalRounds(), bet, hazardCount, s.balance)

	return RoundStarted{
		Bet:         bet,
		HazardCount: hazardCount,
		Balance:     s.balance,
		Multiplier:  s.round.Multiplier,
		LowBalance:  s.balance <= s.cfg.LowBalanceWarning,
	}, nil
}

// Reveal turns over a cell. The outcome engine runs first and may move
// hazards on unrevealed cells.
func (s *Session) Reveal(index int) (RevealResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying {
		return RevealResult{}, ErrRoundNotActive
	}
	if !s.board.InRange(index) {
		return RevealResult{}, fmt.Errorf("%w: %d", ErrCellOutOfRange, index)
	}
	if s.board.IsRevealed(index) {
		return RevealResult{}, fmt.Errorf("%w: %d", ErrCellRevealed, index)
	}

	s.engine.OnReveal(index, s.board, s.account(), s.round)

	result := RevealResult{Index: index}
	if s.board.Reveal(index) {
		settlement := s.endRound(false)
		result.Hazard = true
		result.Multiplier = s.round.Multiplier
		result.SafeRevealsFound = s.round.SafeRevealsFound
		result.Balance = settlement.Balance
		result.State = settlement.State
		return result, nil
	}

	s.round.SafeRevealsFound++
	s.round.Multiplier = s.payout.Multiplier(s.round.SafeRevealsFound, s.round.HazardCount)

	result.SafeRevealsFound = s.round.SafeRevealsFound
	result.Multiplier = s.round.Multiplier
	result.State = StatePlaying
	result.Balance = s.balance

	if s.round.SafeRevealsFound == s.round.TotalSafeCells {
		settlement := s.endRound(true)
		result.Winnings = settlement.Winnings
		result.Balance = settlement.Balance
		result.State = settlement.State
		result.LimitReached = settlement.LimitReached
	}
	return result, nil
}

// CashOut settles the round at the current multiplier.
func (s *Session) CashOut() (Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying {
		return Settlement{}, ErrRoundNotActive
	}
	if s.round.SafeRevealsFound == 0 {
		return Settlement{}, ErrCashOutNotAllowed
	}

	winnings := s.payout.Winnings(s.round.Bet, s.round.Multiplier, s.balance)
	s.balance = s.clampBalance(s.balance + winnings)
	s.consecutiveWins++
	s.streak.RecordRoundOutcome(s.balance, true)
	s.finish(StateCashedOut)

	s.logf("[MINES] Cashed out %d at %.2fx, balance %d", winnings, s.round.Multiplier, s.balance)

	return s.settlement(true, winnings), nil
}

// EndRound closes the active round as a win or a genuine loss.
func (s *Session) EndRound(won bool) (Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying {
		return Settlement{}, ErrRoundNotActive
	}
	return s.endRound(won), nil
}

func (s *Session) endRound(won bool) Settlement {
	if !won {
		s.consecutiveWins = 0
		s.streak.RecordRoundOutcome(s.balance, false)
		s.finish(StateLost)
		s.logf("[MINES] Round lost, balance %d", s.balance)
		return s.settlement(false, 0)
	}

	winnings := s.payout.Winnings(s.round.Bet, s.round.Multiplier, s.balance)
	s.balance = s.clampBalance(s.balance + winnings)
	s.consecutiveWins++
	s.streak.RecordRoundOutcome(s.balance, true)
	s.finish(StateWon)
	s.logf("[MINES] Round won %d at %.2fx, balance %d", winnings, s.round.Multiplier, s.balance)
	return s.settlement(true, winnings)
}

// finish moves to the end state and schedules the board reset. Reaching the
// maximum balance locks the session instead.
func (s *Session) finish(state GameState) {
	s.state = state
	s.resetAt = s.now().Add(s.cfg.ResetDelay)
	if s.balance >= s.cfg.MaxBalance {
		s.balance = s.cfg.MaxBalance
		s.limitReached = true
		s.state = StateLocked
		s.logf("[MINES] Maximum balance %d reached, session locked", s.cfg.MaxBalance)
	}
}

func (s *Session) settlement(won bool, winnings int) Settlement {
	return Settlement{
		Won:          won,
		Winnings:     winnings,
		Multiplier:   s.round.Multiplier,
		Balance:      s.balance,
		State:        s.state,
		LimitReached: s.limitReached,
		FloorReached: s.balance <= s.cfg.MinBalance,
	}
}

func (s *Session) resetBoard() {
	s.board = NewBoard(s.cfg.BoardSize)
	s.round = nil
	s.state = StateReady
	s.resetAt = time.Time{}
}

// ResetToInitialState restores the starting balance and clears every
// session counter, including normalization.
func (s *Session) ResetToInitialState() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balance = s.cfg.InitialBalance
	s.consecutiveWins = 0
	s.limitReached = false
	s.streak.Reset()
	s.normalization.Reset()
	s.resetBoard()
	s.logf("[MINES] Session reset, balance %d", s.balance)
}

// ReadyAt is when the finished round's board may be cleared.
func (s *Session) ReadyAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetAt
}

func (s *Session) Account() PlayerAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account()
}

func (s *Session) account() PlayerAccount {
	return PlayerAccount{
		Balance:             s.balance,
		ConsecutiveWins:     s.consecutiveWins,
		ConsecutiveCashouts: s.streak.ConsecutiveCashouts(),
		ForceNextLoss:       s.streak.ForceNextLoss(),
		TotalRoundsPlayed:   s.normalization.TotalRounds(),
		Normalized:          s.normalization.Normalized(),
	}
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		State:        s.state,
		Balance:      s.balance,
		Multiplier:   1.0,
		LimitReached: s.limitReached,
		FloorReached: s.balance <= s.cfg.MinBalance,
		LowBalance:   s.balance <= s.cfg.LowBalanceWarning,
		BoardSize:    s.board.Size(),
		ReadyAt:      s.resetAt,
	}
	if s.round != nil {
		st.Bet = s.round.Bet
		st.Multiplier = s.round.Multiplier
		st.HazardCount = s.round.HazardCount
		st.SafeRevealsFound = s.round.SafeRevealsFound
	}
	for i := 0; i < s.board.Size(); i++ {
		if s.board.IsRevealed(i) {
			st.RevealedCells = append(st.RevealedCells, i)
		}
	}
	return st
}

// ClampBet bounds a requested bet to [minBet, min(maxBet, balance)].
func (s *Session) ClampBet(bet int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clampBet(bet)
}

func (s *Session) HalveBet(bet int) int {
	return s.ClampBet(max(bet/2, s.cfg.MinBet))
}

func (s *Session) DoubleBet(bet int) int {
	return s.ClampBet(bet * 2)
}

func (s *Session) clampBet(bet int) int {
	return max(s.cfg.MinBet, min(bet, s.cfg.MaxBet, s.balance))
}

func (s *Session) clampBalance(balance int) int {
	return max(s.cfg.MinBalance, min(balance, s.cfg.MaxBalance))
}

func (s *Session) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
