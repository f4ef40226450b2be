package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/slime/config"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxTicks := flag.Int("max-ticks", 1800, "Ticks per evaluation run")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 200, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	// Load base config
	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	params := NewParamVector()

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	evaluator := NewFitnessEvaluator(
		cfg.SimParams(),
		cfg.Derived.Width32, cfg.Derived.Height32,
		cfg.Slime.ParticleCount,
		*maxTicks,
		cfg.Derived.DT32,
		evalSeeds,
	)

	dim := params.Dim()
	initX := params.Normalize(params.DefaultVector())

	// Open log file
	logPath := filepath.Join(*outputDir, "tune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	logWriter := csv.NewWriter(logFile)
	defer logWriter.Flush()

	header := []string{"eval", "fitness"}
	for _, spec := range params.Specs {
		header = append(header, spec.Name)
	}
	logWriter.Write(header)

	evalCount := 0
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Denormalize(x)
			fitness := evaluator.Evaluate(raw)

			evalCount++
			row := []string{strconv.Itoa(evalCount), fmt.Sprintf("%.6f", fitness)}
			for _, v := range raw {
				row = append(row, fmt.Sprintf("%.6f", v))
			}
			logWriter.Write(row)
			logWriter.Flush()

			return fitness
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation
	}

	popSize := *population
	if popSize == 0 {
		// Auto-size: 4 + floor(3*dim/2)
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}

	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization stopped: %v", err)
	}
	if result == nil {
		log.Fatal("no result produced")
	}

	best := params.Denormalize(result.X)
	log.Printf("best fitness %.6f after %d evals", result.F, evalCount)
	for i, spec := range params.Specs {
		log.Printf("  %-20s %.6f", spec.Name, best[i])
	}

	// Write the winning parameters back out as a config snapshot.
	cfg.Slime.Damping = best[0]
	cfg.Slime.Cohesion = best[1]
	cfg.Slime.Repulsion = best[2]
	cfg.Slime.InteractionRadius = best[3]
	bestPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := cfg.WriteYAML(bestPath); err != nil {
		log.Fatalf("failed to write best config: %v", err)
	}
	log.Printf("wrote %s", bestPath)
}
