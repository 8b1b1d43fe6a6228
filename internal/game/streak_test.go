package game

import "testing"

func TestStreakController_ArmsAfterLimit(t *testing.T) {
	s := NewStreakController(40000, 2)

	s.RecordRoundOutcome(50000, true)
	s.RecordRoundOutcome(51000, true)
	if s.ForceNextLoss() {
		t.Fatal("two cashouts should not arm the forced loss")
	}

	s.RecordRoundOutcome(52000, true)
	if !s.ForceNextLoss() {
		t.Fatal("third consecutive cashout should arm the forced loss")
	}
	if s.ConsecutiveCashouts() != 0 {
		t.Errorf("counter = %d after arming, want 0", s.ConsecutiveCashouts())
	}
}

func TestStreakController_ConsumeOnce(t *testing.T) {
	s := NewStreakController(40000, 0)
	s.RecordRoundOutcome(50000, true)

	if !s.ConsumeForceNextLoss() {
		t.Fatal("first consume should fire")
	}
	if s.ConsumeForceNextLoss() {
		t.Fatal("second consume must not fire")
	}
}

func TestStreakController_Resets(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		win     bool
	}{
		{name: "Genuine loss", balance: 50000, win: false},
		{name: "Assisted regime win", balance: 39000, win: true},
		{name: "Assisted regime loss", balance: 10000, win: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStreakController(40000, 2)
			s.RecordRoundOutcome(50000, true)
			s.RecordRoundOutcome(50000, true)
			s.RecordRoundOutcome(50000, true)
			s.RecordRoundOutcome(50000, true)

			s.RecordRoundOutcome(tt.balance, tt.win)
			if s.ConsecutiveCashouts() != 0 || s.ForceNextLoss() {
				t.Errorf("state not reset: cashouts=%d armed=%v", s.ConsecutiveCashouts(), s.ForceNextLoss())
			}
		})
	}
}
