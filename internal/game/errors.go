package game

import "errors"

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidBetAmount    = errors.New("invalid bet amount")
	ErrInvalidHazardCount  = errors.New("invalid hazard count")
	ErrRoundInProgress     = errors.New("round already in progress")
	ErrRoundNotActive      = errors.New("round is not active")
	ErrResetPending        = errors.New("board reset pending")
	ErrCellOutOfRange      = errors.New("cell index out of range")
	ErrCellRevealed        = errors.New("cell already revealed")
	ErrCashOutNotAllowed   = errors.New("must reveal at least one cell before cashing out")
	ErrLimitReached        = errors.New("maximum balance reached")
	ErrBalanceFloor        = errors.New("minimum balance reached")
	ErrInvalidConfig       = errors.New("invalid config")
	ErrUnknownVariant      = errors.New("unknown variant")
)
