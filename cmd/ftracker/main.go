package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fitglue/ftracker/pkg/bootstrap"
	"github.com/fitglue/ftracker/pkg/sensor"
	"github.com/fitglue/ftracker/pkg/workout"
)

func main() {
	cfg := bootstrap.LoadConfig()

	inputPath := flag.String("input", cfg.InputPath, "Path to JSON file with sensor packages (default: builtin samples)")
	flag.Parse()

	logger := bootstrap.NewLogger("ftracker", cfg.LogLevel).With("run_id", uuid.NewString())

	var pkgs []sensor.Package
	if *inputPath != "" {
		var err error
		pkgs, err = sensor.LoadFile(*inputPath)
		if err != nil {
			logger.Error("Failed to load sensor packages", "error", err)
			os.Exit(1)
		}
		logger.Info("Loaded sensor packages", "path", *inputPath, "count", len(pkgs))
	} else {
		pkgs = sensor.Samples()
		logger.Info("No input file, using builtin sample packages", "count", len(pkgs))
	}

	var (
		failed        int
		totalDistance float64
		totalCalories float64
	)
	for i, pkg := range pkgs {
		w, err := workout.ReadPackage(pkg.WorkoutType, pkg.Data)
		if err != nil {
			// A bad package only fails itself; the rest of the batch goes on.
			logger.Error("Skipping sensor package",
				"index", i,
				"workout_type", pkg.WorkoutType,
				"error", err,
			)
			failed++
			continue
		}

		summary := workout.NewSummary(w)
		fmt.Println(summary.Message())

		totalDistance += summary.Distance
		totalCalories += summary.Calories
	}

	p := message.NewPrinter(language.English)
	logger.Info("Batch complete",
		"processed", len(pkgs)-failed,
		"failed", failed,
		"total_distance_km", p.Sprintf("%.2f", totalDistance),
		"total_calories_kcal", p.Sprintf("%.0f", totalCalories),
	)

	if failed > 0 {
		os.Exit(1)
	}
}
