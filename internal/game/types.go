package game

import "time"

type GameState string

const (
	StateReady     GameState = "READY"
	StatePlaying   GameState = "PLAYING"
	StateWon       GameState = "WON"
	StateLost      GameState = "LOST"
	StateCashedOut GameState = "CASHED_OUT"
	StateLocked    GameState = "LOCKED" // maximum balance reached, waiting for a full reset
)

// Ended reports whether the round is over and the board awaits its reset.
func (s GameState) Ended() bool {
	return s == StateWon || s == StateLost || s == StateCashedOut
}

type RoundStarted struct {
	Bet         int     `json:"bet"`
	HazardCount int     `json:"hazard_count"`
	Balance     int     `json:"balance"`
	Multiplier  float64 `json:"multiplier"`
	LowBalance  bool    `json:"low_balance"`
}

type RevealResult struct {
	Index            int       `json:"index"`
	Hazard           bool      `json:"hazard"`
	SafeRevealsFound int       `json:"safe_reveals_found"`
	Multiplier       float64   `json:"multiplier"`
	Balance          int       `json:"balance"`
	State            GameState `json:"state"`
	Winnings         int       `json:"winnings,omitempty"`
	LimitReached     bool      `json:"limit_reached"`
}

// Settlement is the result of a finished round.
type Settlement struct {
	Won          bool      `json:"won"`
	Winnings     int       `json:"winnings"`
	Multiplier   float64   `json:"multiplier"`
	Balance      int       `json:"balance"`
	State        GameState `json:"state"`
	LimitReached bool      `json:"limit_reached"`
	FloorReached bool      `json:"floor_reached"`
}

// Status is everything the presentation layer reads between calls.
type Status struct {
	State            GameState `json:"state"`
	Balance          int       `json:"balance"`
	Bet              int       `json:"bet"`
	Multiplier       float64   `json:"multiplier"`
	HazardCount      int       `json:"hazard_count"`
	SafeRevealsFound int       `json:"safe_reveals_found"`
	BoardSize        int       `json:"board_size"`
	RevealedCells    []int     `json:"revealed_cells"`
	LimitReached     bool      `json:"limit_reached"`
	FloorReached     bool      `json:"floor_reached"`
	LowBalance       bool      `json:"low_balance"`
	ReadyAt          time.Time `json:"ready_at,omitempty"`
}
