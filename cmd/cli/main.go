package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"portfolio-dispatch/internal/config"
	"portfolio-dispatch/internal/dispatch"
	"portfolio-dispatch/internal/export"
	"portfolio-dispatch/internal/solver"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "optimize":
		cmdOptimize(os.Args[2:])
	case "validate":
		cmdValidate(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli optimize --config system.yaml --out results/schedule.csv [--dump-lp model.lp] [--time-limit 60]")
	fmt.Println("  cli validate --config system.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - optimize writes the dispatch schedule as long-format CSV")
	fmt.Println("  - --dump-lp writes the assembled model in CPLEX LP format for inspection")
}

func cmdOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML system description")
	outPath := fs.String("out", "results/schedule.csv", "Output CSV path")
	lpPath := fs.String("dump-lp", "", "Optional: write the model in LP format to this path")
	timeLimit := fs.Float64("time-limit", 0, "Optional: solver wall-clock limit in seconds (0=none)")
	verbose := fs.Bool("verbose", false, "Enable solver log output")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	sys, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}

	if *lpPath != "" {
		dm, err := dispatch.Build(sys)
		if err != nil {
			fatal(err)
		}
		f, err := os.Create(*lpPath)
		if err != nil {
			fatal(err)
		}
		if err := dm.Problem.WriteLP(f); err != nil {
			f.Close()
			fatal(err)
		}
		f.Close()
		fmt.Printf("wrote LP model to %s\n", *lpPath)
	}

	opt := dispatch.New(solver.NewHiGHS(solver.Options{
		TimeLimitSeconds: *timeLimit,
		Verbose:          *verbose,
	}))
	sched, err := opt.Optimize(sys)
	if err != nil {
		fatal(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fatal(err)
	}
	if err := export.WriteScheduleCSV(*outPath, sched); err != nil {
		fatal(err)
	}

	fmt.Printf("status: %s (%s)\n", sched.SolverStatus, sched.TerminationCondition)
	fmt.Printf("objective: %.2f\n", sched.Objective)
	if len(sched.ScenarioCost) > 1 {
		names := make([]string, 0, len(sched.ScenarioCost))
		for name := range sched.ScenarioCost {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  scenario %s: %.2f\n", name, sched.ScenarioCost[name])
		}
	}
	fmt.Printf("schedule written to %s\n", *outPath)
}

func cmdValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML system description")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	sys, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	// Cross-reference checks (profile names, lengths) only run during model
	// building, so build without solving.
	if _, err := dispatch.Build(sys); err != nil {
		fatal(err)
	}

	fmt.Println("ok")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
