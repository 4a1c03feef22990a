// Command thittam solves job-shop scheduling problems from the command
// line.
//
// Usage:
//
//	thittam solve --benchmark ft06 --rule SPT
//	thittam solve --file ./my-instance.txt --rule HH --max-time 30s
//	thittam bench --rules SPT,LPT,HH,IHH --workers 4
//	thittam random --jobs 10 --machines 5 --seed 42 --rule IHH
//
// Global flags:
//
//	--log-level string
//	    Log level: debug, info, warn, error (default "info")
//	--log-pretty
//	    Human-readable log output instead of JSON
//	--metrics-addr string
//	    Serve Prometheus metrics on this address (e.g. ":9090")
//
// Flag defaults come from config.Default(); flags override them and the
// resulting configuration is validated before anything runs.
//
// Exit codes:
//
//	0 - success
//	1 - usage error (bad flags, unknown rule, unreadable instance)
//	2 - benchmark not found
//	3 - solver failure
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yesoreyeram/thittam/pkg/benchmark"
	"github.com/yesoreyeram/thittam/pkg/config"
	"github.com/yesoreyeram/thittam/pkg/logging"
	"github.com/yesoreyeram/thittam/pkg/observer"
	"github.com/yesoreyeram/thittam/pkg/problem"
	"github.com/yesoreyeram/thittam/pkg/rules"
	"github.com/yesoreyeram/thittam/pkg/runner"
	"github.com/yesoreyeram/thittam/pkg/schedule"
	"github.com/yesoreyeram/thittam/pkg/solver"
	"github.com/yesoreyeram/thittam/pkg/telemetry"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitNoBench = 2
	exitSolver  = 3
)

var errUsage = errors.New("usage error")

// cfg carries the runtime configuration: defaults from config.Default(),
// overridden by flags in each command's RunE.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:           "thittam",
	Short:         "A job-shop scheduling framework: dispatching-rule heuristics over disjunctive graphs.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// .env is optional; environment variables win over it
		_ = godotenv.Load()
		if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
			return err
		}
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		cfg.LogLevel = viper.GetString("log-level")
		cfg.LogPretty = viper.GetBool("log-pretty")
		cfg.MetricsAddr = viper.GetString("metrics-addr")
		return nil
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	rootCmd.PersistentFlags().String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-pretty", cfg.LogPretty, "human-readable log output")
	rootCmd.PersistentFlags().String("metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address")

	solveCmd.Flags().String("benchmark", "", "benchmark instance name (e.g. ft06)")
	solveCmd.Flags().String("file", "", "instance file path")
	solveCmd.Flags().String("rule", "SPT", "dispatching rule tag")
	solveCmd.Flags().Duration("max-time", cfg.MaxSolveTime, "solve time budget (0 = unlimited)")

	benchCmd.Flags().String("benchmarks", "", "comma-separated benchmark names (default: all shipped)")
	benchCmd.Flags().String("rules", "SPT,LPT,HH,IHH", "comma-separated rule tags")
	benchCmd.Flags().Int("workers", cfg.Workers, "worker pool size")
	benchCmd.Flags().Duration("max-time", cfg.MaxSolveTime, "per-case time budget (0 = unlimited)")

	randomCmd.Flags().Int("jobs", 10, "number of jobs")
	randomCmd.Flags().Int("machines", 5, "number of machines")
	randomCmd.Flags().Int64("seed", cfg.RandomSeed, "random seed")
	randomCmd.Flags().String("rule", "SPT", "dispatching rule tag")

	rootCmd.AddCommand(solveCmd, benchCmd, randomCmd)
}

// validateConfig rejects inconsistent flag combinations as usage errors.
func validateConfig() error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one instance with a dispatching rule",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.MaxSolveTime = viper.GetDuration("max-time")
		if err := validateConfig(); err != nil {
			return err
		}
		p, err := loadInstance(viper.GetString("benchmark"), viper.GetString("file"))
		if err != nil {
			return err
		}
		return solveOne(cmd.Context(), p, viper.GetString("rule"))
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate and solve a random instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.MaxSolveTime = 0
		cfg.RandomSeed = viper.GetInt64("seed")
		if err := validateConfig(); err != nil {
			return err
		}
		p, err := problem.Random(viper.GetInt("jobs"), viper.GetInt("machines"),
			cfg.RandomSeed, cfg.DurationMin, cfg.DurationMax)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return solveOne(cmd.Context(), p, viper.GetString("rule"))
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the benchmark matrix: every instance with every rule",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Workers = viper.GetInt("workers")
		cfg.MaxSolveTime = viper.GetDuration("max-time")
		if err := validateConfig(); err != nil {
			return err
		}

		registry, err := benchmark.Default()
		if err != nil {
			return err
		}

		names := splitList(viper.GetString("benchmarks"))
		if len(names) == 0 {
			for _, in := range registry.Instances() {
				names = append(names, in.Name)
			}
		}
		problems := make([]*problem.Problem, 0, len(names))
		for _, name := range names {
			p, err := registry.Load(name)
			if err != nil {
				return err
			}
			problems = append(problems, p)
		}

		var algorithms []solver.Algorithm
		for _, tag := range splitList(viper.GetString("rules")) {
			algo, err := solver.NewPriorityDispatch(tag)
			if err != nil {
				return fmt.Errorf("%w: %v", errUsage, err)
			}
			algorithms = append(algorithms, algo)
		}
		if len(algorithms) == 0 {
			return fmt.Errorf("%w: no rules given", errUsage)
		}

		logger, observers, shutdown, err := setupObservability(cmd.Context())
		if err != nil {
			return err
		}
		defer shutdown()

		solverOpts := []solver.Option{
			solver.WithLogger(logger),
			solver.WithObservers(observers),
		}
		if cfg.MaxSolveTime > 0 {
			solverOpts = append(solverOpts, solver.WithMaxTime(cfg.MaxSolveTime))
		}

		r, err := runner.New(problems, algorithms,
			runner.WithWorkers(cfg.Workers),
			runner.WithLogger(logger),
			runner.WithSolverOptions(solverOpts...),
		)
		if err != nil {
			return err
		}

		results := r.Run(cmd.Context())
		fmt.Print(runner.Summary(results))

		if unsolved := countUnsolved(results); unsolved > 0 {
			return fmt.Errorf("%d of %d cases unsolved", unsolved, len(results))
		}
		return nil
	},
}

func countUnsolved(results []runner.Result) int {
	n := 0
	for _, r := range results {
		if !r.Solved {
			n++
		}
	}
	return n
}

func splitList(csv string) []string {
	var items []string
	for _, item := range strings.Split(csv, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// loadInstance resolves the instance from either source flag; exactly one
// must be given.
func loadInstance(benchName, file string) (*problem.Problem, error) {
	switch {
	case benchName != "" && file != "":
		return nil, fmt.Errorf("%w: --benchmark and --file are mutually exclusive", errUsage)
	case benchName != "":
		return benchmark.Load(benchName)
	case file != "":
		p, err := problem.FromFile(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: one of --benchmark or --file is required", errUsage)
	}
}

func solveOne(ctx context.Context, p *problem.Problem, tag string) error {
	algo, err := solver.NewPriorityDispatch(tag)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	logger, observers, shutdown, err := setupObservability(ctx)
	if err != nil {
		return err
	}
	defer shutdown()

	opts := []solver.Option{
		solver.WithLogger(logger),
		solver.WithObservers(observers),
	}
	if cfg.MaxSolveTime > 0 {
		opts = append(opts, solver.WithMaxTime(cfg.MaxSolveTime))
	}

	var best *schedule.Solution
	opts = append(opts, solver.WithCallback(func(sol *schedule.Solution) {
		best = sol.Clone()
	}))

	drv := solver.New(algo, opts...)
	if err := drv.Solve(ctx, p); err != nil {
		return err
	}

	jobs, machines := p.Scale()
	fmt.Printf("problem:  %s (%d x %d)\n", p.Name(), jobs, machines)
	fmt.Printf("solver:   %s\n", drv.Name())
	if p.Optimum().Known() {
		fmt.Printf("optimum:  %s\n", p.Optimum())
	}
	fmt.Printf("makespan: %g\n", best.Makespan())
	fmt.Printf("time:     %.1fs\n", drv.UserTime().Seconds())
	return nil
}

// setupObservability wires the structured logger, the observer manager
// and, when metrics are requested, the telemetry pipeline plus the
// Prometheus endpoint, all driven by cfg.
func setupObservability(ctx context.Context) (*logging.Logger, *observer.Manager, func(), error) {
	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})
	observers := observer.NewManager()
	shutdown := func() {}

	if cfg.MetricsAddr == "" {
		return logger, observers, shutdown, nil
	}

	telemetryCfg := telemetry.DefaultConfig()
	telemetryCfg.EnableMetrics = cfg.EnableMetrics
	telemetryCfg.EnableTracing = cfg.EnableTracing
	provider, err := telemetry.NewProvider(ctx, telemetryCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	observers.Register(telemetry.NewObserver(provider))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	shutdown = func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		_ = provider.Shutdown(shutdownCtx)
	}
	return logger, observers, shutdown, nil
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, benchmark.ErrBenchmarkNotFound):
		return exitNoBench
	case errors.Is(err, errUsage),
		errors.Is(err, rules.ErrInvalidRule),
		errors.Is(err, problem.ErrFileNotFound),
		errors.Is(err, problem.ErrMalformedInput):
		return exitUsage
	default:
		return exitSolver
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}
