package game

import (
	"fmt"
	"slices"
	"time"
)

// SafeTier grants MaxSpaces guaranteed safe reveals at or above Threshold.
type SafeTier struct {
	Threshold int `yaml:"threshold"`
	MaxSpaces int `yaml:"max_spaces"`
}

// LossTier applies Chance of a forced loss per reveal at or above Threshold.
type LossTier struct {
	Threshold int     `yaml:"threshold"`
	Chance    float64 `yaml:"chance"`
}

// Strategies toggles the independent outcome mechanisms.
type Strategies struct {
	GuaranteedSafe    bool `yaml:"guaranteed_safe"`
	ProbabilisticLoss bool `yaml:"probabilistic_loss"`
	StreakControl     bool `yaml:"streak_control"`
	Normalization     bool `yaml:"normalization"`
}

type Config struct {
	InitialBalance    int   `yaml:"initial_balance"`
	MinBalance        int   `yaml:"min_balance"`
	MaxBalance        int   `yaml:"max_balance"`
	LowBalanceWarning int   `yaml:"low_balance_warning"`
	MinBet            int   `yaml:"min_bet"`
	MaxBet            int   `yaml:"max_bet"`
	BoardSize         int   `yaml:"board_size"`
	HazardCounts      []int `yaml:"hazard_counts"`

	ForceWinThreshold      int        `yaml:"force_win_threshold"`
	SafeTiers              []SafeTier `yaml:"safe_tiers"`
	LossTiers              []LossTier `yaml:"loss_tiers"`
	DefaultLossChance      float64    `yaml:"default_loss_chance"`
	MaxConsecutiveCashouts int        `yaml:"max_consecutive_cashouts"`
	NormalizationThreshold int        `yaml:"normalization_threshold"`

	BaseGrowth  float64         `yaml:"base_growth"`
	RiskFactors map[int]float64 `yaml:"risk_factors"`

	ResetDelay time.Duration `yaml:"reset_delay"`
	Strategies Strategies    `yaml:"strategies"`
}

// DefaultConfig returns the stock game with every mechanism enabled.
func DefaultConfig() Config {
	return Config{
		InitialBalance:    50000,
		MinBalance:        5000,
		MaxBalance:        100000,
		LowBalanceWarning: 10000,
		MinBet:            1000,
		MaxBet:            5000,
		BoardSize:         MINES_GRID_SIZE,
		HazardCounts:      []int{3, 4, 5},

		ForceWinThreshold: 40000,
		SafeTiers: []SafeTier{
			{Threshold: 35000, MaxSpaces: 3},
			{Threshold: 30000, MaxSpaces: 4},
			{Threshold: 25000, MaxSpaces: 5},
			{Threshold: 20000, MaxSpaces: 6},
			{Threshold: 15000, MaxSpaces: 7},
			{Threshold: 10000, MaxSpaces: 8},
			{Threshold: 5000, MaxSpaces: 10},
		},
		LossTiers: []LossTier{
			{Threshold: 90000, Chance: 0.75},
			{Threshold: 75000, Chance: 0.6},
			{Threshold: 60000, Chance: 0.45},
			{Threshold: 50000, Chance: 0.3},
		},
		DefaultLossChance:      0.15,
		MaxConsecutiveCashouts: 2,
		NormalizationThreshold: 20,

		BaseGrowth:  1.1,
		RiskFactors: map[int]float64{3: 1.3, 4: 1.8, 5: 2.3},

		ResetDelay: 3 * time.Second,
		Strategies: Strategies{
			GuaranteedSafe:    true,
			ProbabilisticLoss: true,
			StreakControl:     true,
			Normalization:     true,
		},
	}
}

// Validate checks the config is playable and sorts both tier tables by
// descending threshold.
func (c *Config) Validate() error {
	if c.MinBalance < 0 || c.MaxBalance <= c.MinBalance {
		return fmt.Errorf("%w: balance bounds [%d, %d]", ErrInvalidConfig, c.MinBalance, c.MaxBalance)
	}
	if c.InitialBalance < c.MinBalance || c.InitialBalance > c.MaxBalance {
		return fmt.Errorf("%w: initial balance %d outside bounds", ErrInvalidConfig, c.InitialBalance)
	}
	if c.MinBet <= 0 || c.MaxBet < c.MinBet {
		return fmt.Errorf("%w: bet bounds [%d, %d]", ErrInvalidConfig, c.MinBet, c.MaxBet)
	}
	if c.BoardSize <= 0 {
		return fmt.Errorf("%w: board size %d", ErrInvalidConfig, c.BoardSize)
	}
	if len(c.HazardCounts) == 0 {
		return fmt.Errorf("%w: no hazard counts", ErrInvalidConfig)
	}
	for _, n := range c.HazardCounts {
		if n <= 0 || n >= c.BoardSize {
			return fmt.Errorf("%w: hazard count %d", ErrInvalidConfig, n)
		}
		if _, ok := c.RiskFactors[n]; !ok {
			return fmt.Errorf("%w: no risk factor for %d hazards", ErrInvalidConfig, n)
		}
	}
	if c.BaseGrowth <= 1 {
		return fmt.Errorf("%w: base growth %.2f must exceed 1", ErrInvalidConfig, c.BaseGrowth)
	}
	if c.Strategies.GuaranteedSafe && len(c.SafeTiers) == 0 {
		return fmt.Errorf("%w: guaranteed safe tiers enabled with empty table", ErrInvalidConfig)
	}
	for _, t := range c.LossTiers {
		if t.Chance < 0 || t.Chance > 1 {
			return fmt.Errorf("%w: loss chance %.2f at %d", ErrInvalidConfig, t.Chance, t.Threshold)
		}
	}
	if c.DefaultLossChance < 0 || c.DefaultLossChance > 1 {
		return fmt.Errorf("%w: default loss chance %.2f", ErrInvalidConfig, c.DefaultLossChance)
	}
	if c.Strategies.StreakControl && c.MaxConsecutiveCashouts < 0 {
		return fmt.Errorf("%w: streak limit %d", ErrInvalidConfig, c.MaxConsecutiveCashouts)
	}
	if c.Strategies.Normalization && c.NormalizationThreshold <= 0 {
		return fmt.Errorf("%w: normalization threshold %d", ErrInvalidConfig, c.NormalizationThreshold)
	}
	if c.ResetDelay < 0 {
		return fmt.Errorf("%w: negative reset delay", ErrInvalidConfig)
	}

	slices.SortFunc(c.SafeTiers, func(a, b SafeTier) int { return b.Threshold - a.Threshold })
	slices.SortFunc(c.LossTiers, func(a, b LossTier) int { return b.Threshold - a.Threshold })
	return nil
}

func (c *Config) validHazardCount(n int) bool {
	return slices.Contains(c.HazardCounts, n)
}
