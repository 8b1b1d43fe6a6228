package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Rchrdx2/minesweeper/internal/config"
	"github.com/Rchrdx2/minesweeper/internal/game"
	"github.com/Rchrdx2/minesweeper/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	app, err := config.Load()
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	variants, err := game.LoadVariants(app.VariantsPath)
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	switch os.Args[1] {
	case "run":
		run(app, variants)

	case "variants":
		for _, name := range variants.Names() {
			cfg, _ := variants.Config(name)
			fmt.Printf("%-14s %+v\n", name, cfg.Strategies)
		}

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run(app config.App, variants *game.VariantSet) {
	cfg, err := variants.Config(app.Variant)
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}
	cfg.ResetDelay = app.ResetDelay

	rng := game.DefaultRNG()
	if app.Seed != 0 {
		rng = game.NewSeededRNG(app.Seed)
	}

	var logger *log.Logger
	if app.Verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	session, err := game.NewSession(cfg, game.WithRNG(rng), game.WithLogger(logger))
	if err != nil {
		log.Fatalf("[SIM] %v", err)
	}

	player := sim.Player{Bet: app.Bet, Hazards: app.Hazards, CashoutAfter: app.CashoutAfter}
	log.Printf("[SIM] Playing %d rounds of %q: bet %d, %d hazards, cash out after %d",
		app.Rounds, app.Variant, player.Bet, player.Hazards, player.CashoutAfter)

	report, err := sim.Run(session, player, app.Rounds, rng, logger)
	if err != nil {
		log.Fatalf("[SIM] Simulation failed: %v", err)
	}

	out, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(out))
}

func printUsage() {
	fmt.Println("Usage: simulate <command>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  run       Play MINES_SIM_ROUNDS rounds with MINES_VARIANT and print a report")
	fmt.Println("  variants  List the variants in MINES_VARIANTS_PATH")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  MINES_VARIANTS_PATH      (default: configs/variants.yaml)")
	fmt.Println("  MINES_VARIANT            (default: full)")
	fmt.Println("  MINES_SEED               (default: 0, unseeded)")
	fmt.Println("  MINES_SIM_ROUNDS         (default: 100)")
	fmt.Println("  MINES_SIM_BET            (default: 1000)")
	fmt.Println("  MINES_SIM_HAZARDS        (default: 3)")
	fmt.Println("  MINES_SIM_CASHOUT_AFTER  (default: 2)")
	fmt.Println("  MINES_RESET_DELAY        (default: 0s)")
	fmt.Println("  MINES_VERBOSE            (default: false)")
}
