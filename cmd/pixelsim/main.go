// Command pixelsim runs the PixelSociety demo simulation and prints the
// per-tick feedback and final reports.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/amaz421326/PixelSociety/internal/persistence"
	"github.com/amaz421326/PixelSociety/internal/reports"
	"github.com/amaz421326/PixelSociety/internal/scenario"
)

func main() {
	seed := flag.Int64("seed", 42, "simulation seed (0 = random)")
	ticks := flag.Int("ticks", 6, "number of ticks to run")
	frontier := flag.Int("frontier", 0, "procedurally generate this many frontier regions")
	dbPath := flag.String("db", "", "optional SQLite path to record run history")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	sim := scenario.DemoSimulation(*seed)
	if *frontier > 0 {
		scenario.GenerateFrontier(sim, *frontier, sim.Seed())
	}

	var store *persistence.Store
	var runID string
	if *dbPath != "" {
		var err error
		store, err = persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open history database", "error", err, "path", *dbPath)
			os.Exit(1)
		}
		defer store.Close()

		runID, err = store.BeginRun(sim)
		if err != nil {
			slog.Error("failed to begin run recording", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("simulation starting",
		"world", sim.World.Name,
		"seed", sim.Seed(),
		"agents", len(sim.AgentNames()),
		"ticks", *ticks,
	)

	results := sim.Run(*ticks)

	for _, result := range results {
		if len(result.Events) > 0 {
			fmt.Printf("Events triggered on tick %d: %s\n", result.Tick, strings.Join(result.Events, ", "))
		}
		for _, name := range sim.AgentNames() {
			for _, line := range result.Feedback[name] {
				fmt.Printf("[%d] %s: %s\n", result.Tick, name, line)
			}
		}
	}

	if store != nil {
		if err := store.RecordResults(runID, results); err != nil {
			slog.Error("failed to record run history", "error", err)
		}
	}

	fmt.Println("\nFinal Agent Reports:")
	fmt.Println()
	for _, agent := range sim.Agents() {
		fmt.Println(reports.AgentReport(agent))
		fmt.Println(strings.Repeat("-", 40))
	}
	fmt.Println("World Report:")
	fmt.Println()
	fmt.Println(reports.WorldReport(sim.World, sim.Agents()))
}
