package game

// StreakController counts consecutive win or cashout rounds in the
// unconstrained regime and arms a one-shot forced loss past the limit.
type StreakController struct {
	forceWinThreshold   int
	maxConsecutive      int
	consecutiveCashouts int
	forceNextLoss       bool
}

func NewStreakController(forceWinThreshold, maxConsecutive int) *StreakController {
	return &StreakController{
		forceWinThreshold: forceWinThreshold,
		maxConsecutive:    maxConsecutive,
	}
}

// RecordRoundOutcome is called once per finished round with the settled balance.
func (s *StreakController) RecordRoundOutcome(balance int, cashoutOrWin bool) {
	if balance < s.forceWinThreshold || !cashoutOrWin {
		s.Reset()
		return
	}

	s.consecutiveCashouts++
	if s.consecutiveCashouts > s.maxConsecutive {
		s.forceNextLoss = true
		s.consecutiveCashouts = 0
	}
}

// ConsumeForceNextLoss returns the armed flag and clears it.
func (s *StreakController) ConsumeForceNextLoss() bool {
	armed := s.forceNextLoss
	s.forceNextLoss = false
	return armed
}

func (s *StreakController) ConsecutiveCashouts() int { return s.consecutiveCashouts }

func (s *StreakController) ForceNextLoss() bool { return s.forceNextLoss }

func (s *StreakController) Reset() {
	s.consecutiveCashouts = 0
	s.forceNextLoss = false
}
