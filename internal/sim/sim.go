package sim

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Rchrdx2/minesweeper/internal/game"
)

// Player describes the scripted player: a fixed bet and hazard count, cashing
// out after CashoutAfter safe reveals.
type Player struct {
	Bet          int
	Hazards      int
	CashoutAfter int
}

type Report struct {
	Rounds       int `json:"rounds"`
	Wins         int `json:"wins"`
	Losses       int `json:"losses"`
	Cashouts     int `json:"cashouts"`
	Resets       int `json:"resets"`
	PeakBalance  int `json:"peak_balance"`
	FinalBalance int `json:"final_balance"`
}

// Run plays rounds against the session. A locked or floored session is reset
// to its initial state and play continues.
func Run(s *game.Session, p Player, rounds int, rng game.RandomSource, logger *log.Logger) (Report, error) {
	report := Report{PeakBalance: s.Status().Balance}

	for report.Rounds < rounds {
		if _, err := s.StartRound(p.Bet, p.Hazards); err != nil {
			if errors.Is(err, game.ErrResetPending) {
				time.Sleep(time.Until(s.ReadyAt()))
				continue
			}
			if errors.Is(err, game.ErrLimitReached) || errors.Is(err, game.ErrBalanceFloor) {
				if logger != nil {
					logger.Printf("[SIM] %v, resetting session", err)
				}
				s.ResetToInitialState()
				report.Resets++
				continue
			}
			return report, fmt.Errorf("round %d: %w", report.Rounds+1, err)
		}
		report.Rounds++

		if err := playRound(s, p, rng, &report); err != nil {
			return report, fmt.Errorf("round %d: %w", report.Rounds, err)
		}

		balance := s.Status().Balance
		if balance > report.PeakBalance {
			report.PeakBalance = balance
		}
	}

	report.FinalBalance = s.Status().Balance
	return report, nil
}

func playRound(s *game.Session, p Player, rng game.RandomSource, report *Report) error {
	for {
		st := s.Status()
		if st.SafeRevealsFound >= p.CashoutAfter {
			if _, err := s.CashOut(); err != nil {
				return err
			}
			report.Cashouts++
			return nil
		}

		res, err := s.Reveal(pickCell(st.RevealedCells, st.BoardSize, rng))
		if err != nil {
			return err
		}
		switch {
		case res.Hazard:
			report.Losses++
			return nil
		case res.State != game.StatePlaying:
			report.Wins++
			return nil
		}
	}
}

// pickCell chooses uniformly among unrevealed cells.
func pickCell(revealed []int, size int, rng game.RandomSource) int {
	taken := make(map[int]bool, len(revealed))
	for _, i := range revealed {
		taken[i] = true
	}
	free := make([]int, 0, size)
	for i := 0; i < size; i++ {
		if !taken[i] {
			free = append(free, i)
		}
	}
	return free[rng.IntN(len(free))]
}
