package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lbsim/lbsim/sim"
	"github.com/lbsim/lbsim/sim/telemetry"
	"github.com/lbsim/lbsim/sim/trace"
	"github.com/lbsim/lbsim/sim/workload"
)

var (
	// CLI flags for the run command
	placementPolicy string // Placement policy name
	bootstrapMode   string // First-batch admission mode
	runConfigPath   string // Optional YAML run config
	traceLevel      string // Decision trace verbosity
	summarizeTrace  bool   // Print trace summary after the run
	printMetrics    bool   // Print metrics block after the run
	metricsTextfile string // Prometheus textfile output path
)

// runOptions holds everything needed for one simulation run.
type runOptions struct {
	InputPath       string
	OutputPath      string
	BaseCost        int64
	Policy          string
	Bootstrap       sim.BootstrapMode
	TraceLevel      string
	SummarizeTrace  bool
	PrintMetrics    bool
	MetricsTextfile string
}

// runCmd executes the simulation using positional arguments and CLI flags
var runCmd = &cobra.Command{
	Use:   "run <input path> <output path> <base cost per tick>",
	Short: "Run the simulation on an input file and write the occupancy table",
	Args:  exactArgs(3, "<input path> <output path> <base cost per tick>"),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildRunOptions(cmd, args)
		if err != nil {
			return err
		}
		_, err = runSimulation(opts, cmd.OutOrStdout())
		return err
	},
}

// buildRunOptions merges positional args, the optional YAML config and flags.
// Flags set explicitly win over the config file.
func buildRunOptions(cmd *cobra.Command, args []string) (runOptions, error) {
	baseCost, err := strconv.ParseInt(strings.TrimSpace(args[2]), 10, 64)
	if err != nil {
		return runOptions{}, fmt.Errorf("base cost %q is not an integer", args[2])
	}
	opts := runOptions{
		InputPath:       args[0],
		OutputPath:      args[1],
		BaseCost:        baseCost,
		Policy:          placementPolicy,
		Bootstrap:       sim.BootstrapMode(bootstrapMode),
		TraceLevel:      traceLevel,
		SummarizeTrace:  summarizeTrace,
		PrintMetrics:    printMetrics,
		MetricsTextfile: metricsTextfile,
	}
	if runConfigPath == "" {
		return opts, nil
	}

	cfg, err := loadRunConfig(runConfigPath)
	if err != nil {
		return runOptions{}, err
	}
	flags := cmd.Flags()
	if cfg.Policy != "" && !flags.Changed("policy") {
		opts.Policy = cfg.Policy
	}
	if cfg.Bootstrap != "" && !flags.Changed("bootstrap") {
		opts.Bootstrap = sim.BootstrapMode(cfg.Bootstrap)
	}
	if cfg.TraceLevel != "" && !flags.Changed("trace-level") {
		opts.TraceLevel = cfg.TraceLevel
	}
	if cfg.LogLevel != "" && !cmd.Root().PersistentFlags().Changed("log") {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return runOptions{}, fmt.Errorf("run config log_level: %w", err)
		}
		logrus.SetLevel(level)
	}
	return opts, nil
}

// runSimulation loads the input, runs the simulation to completion and only
// then writes the result file and optional reports.
func runSimulation(opts runOptions, stdout io.Writer) (*sim.Simulator, error) {
	if !trace.IsValidTraceLevel(opts.TraceLevel) {
		return nil, fmt.Errorf("unknown trace level %q; valid: none, decisions", opts.TraceLevel)
	}
	in, err := workload.LoadInputFile(opts.InputPath)
	if err != nil {
		return nil, err
	}

	cfg := sim.NewSimConfig(in.TaskDuration, in.ServerCapacity, opts.BaseCost, opts.Policy, opts.Bootstrap)
	s, err := sim.NewSimulator(cfg, in.Arrivals)
	if err != nil {
		return nil, err
	}
	if trace.TraceLevel(opts.TraceLevel) == trace.TraceLevelDecisions {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
	}

	s.Run()
	result := s.Result()

	if err := workload.SaveResultFile(opts.OutputPath, result.Snapshots, result.TotalCost); err != nil {
		return nil, err
	}
	logrus.Infof("Wrote %d ticks to %s (total cost %d)", len(result.Snapshots), opts.OutputPath, result.TotalCost)

	if opts.PrintMetrics {
		s.Metrics.Print(stdout)
	}
	if opts.SummarizeTrace && s.Trace != nil {
		printTraceSummary(stdout, trace.Summarize(s.Trace))
	}
	if opts.MetricsTextfile != "" {
		policy := opts.Policy
		if policy == "" {
			policy = "longest-remaining"
		}
		reg, err := telemetry.NewRegistry(policy, s.Metrics)
		if err != nil {
			return nil, err
		}
		if err := telemetry.WriteTextfile(opts.MetricsTextfile, reg); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func printTraceSummary(w io.Writer, summary *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Trace Summary ===")
	fmt.Fprintf(w, "Placements           : %d\n", summary.TotalPlacements)
	fmt.Fprintf(w, "Bootstrap Placements : %d\n", summary.BootstrapCount)
	fmt.Fprintf(w, "Provisions           : %d\n", summary.ProvisionCount)
	fmt.Fprintf(w, "Retirements          : %d\n", summary.RetirementCount)
	fmt.Fprintf(w, "Unique Targets       : %d\n", summary.UniqueTargets)
	if summary.RetirementCount > 0 {
		fmt.Fprintf(w, "Mean Server Lifetime : %.2f ticks\n", summary.MeanLifetime)
		fmt.Fprintf(w, "Max Server Lifetime  : %d ticks\n", summary.MaxLifetime)
	}
}

func init() {
	runCmd.Flags().StringVar(&placementPolicy, "policy", "longest-remaining",
		fmt.Sprintf("Placement policy (%s)", strings.Join(sim.ValidPlacementPolicyNames(), ", ")))
	runCmd.Flags().StringVar(&bootstrapMode, "bootstrap", string(sim.BootstrapUnbounded), "First-batch admission (unbounded, capped)")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "YAML run config (flags set explicitly take precedence)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelNone), "Decision trace level (none, decisions)")
	runCmd.Flags().BoolVar(&summarizeTrace, "summarize-trace", false, "Print a decision trace summary (requires --trace-level decisions)")
	runCmd.Flags().BoolVar(&printMetrics, "metrics", false, "Print simulation metrics to stdout")
	runCmd.Flags().StringVar(&metricsTextfile, "metrics-textfile", "", "Write metrics in Prometheus text format to this path")
}
