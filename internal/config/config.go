package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

// App is the process configuration for the simulator.
type App struct {
	VariantsPath string        `env:"MINES_VARIANTS_PATH" envDefault:"configs/variants.yaml"`
	Variant      string        `env:"MINES_VARIANT" envDefault:"full"`
	Seed         uint64        `env:"MINES_SEED" envDefault:"0"`
	Rounds       int           `env:"MINES_SIM_ROUNDS" envDefault:"100"`
	CashoutAfter int           `env:"MINES_SIM_CASHOUT_AFTER" envDefault:"2"`
	Bet          int           `env:"MINES_SIM_BET" envDefault:"1000"`
	Hazards      int           `env:"MINES_SIM_HAZARDS" envDefault:"3"`
	ResetDelay   time.Duration `env:"MINES_RESET_DELAY" envDefault:"0s"`
	Verbose      bool          `env:"MINES_VERBOSE" envDefault:"false"`
}

// Load parses App from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (App, error) {
	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Rounds < 0 {
		return App{}, fmt.Errorf("MINES_SIM_ROUNDS must not be negative, got %d", cfg.Rounds)
	}
	if cfg.CashoutAfter < 1 {
		return App{}, fmt.Errorf("MINES_SIM_CASHOUT_AFTER must be at least 1, got %d", cfg.CashoutAfter)
	}
	return cfg, nil
}
