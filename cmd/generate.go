package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lbsim/lbsim/sim/workload"
)

var (
	// CLI flags for the generate command
	genSpecPath string  // Optional YAML generator spec
	genSeed     int64   // Seed for arrival generation
	genTicks    int     // Number of arrival batches
	genRate     float64 // Mean arrivals per tick
	genProcess  string  // Arrival process
	genCV       float64 // Burstiness of the bursty process
	genTTask    int     // Task duration written to the input file
	genUMax     int     // Server capacity written to the input file
	genIdleTail int     // Zero batches appended at the end
)

// generateCmd writes a synthetic input file
var generateCmd = &cobra.Command{
	Use:   "generate <output path>",
	Short: "Generate a synthetic input file with a seeded arrival process",
	Args:  exactArgs(1, "<output path>"),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := buildGeneratorSpec(cmd)
		if err != nil {
			return err
		}
		in, err := workload.GenerateInput(spec)
		if err != nil {
			return err
		}
		if err := workload.SaveInputFile(args[0], in); err != nil {
			return err
		}
		logrus.Infof("Wrote input file %s", args[0])
		return nil
	},
}

// buildGeneratorSpec starts from the --spec file when given and lets every
// explicitly set flag override it.
func buildGeneratorSpec(cmd *cobra.Command) (*workload.GeneratorSpec, error) {
	spec := &workload.GeneratorSpec{
		Seed:           genSeed,
		Ticks:          genTicks,
		Rate:           genRate,
		Process:        genProcess,
		TaskDuration:   genTTask,
		ServerCapacity: genUMax,
		IdleTail:       genIdleTail,
	}
	if genSpecPath != "" {
		loaded, err := workload.LoadGeneratorSpec(genSpecPath)
		if err != nil {
			return nil, err
		}
		flags := cmd.Flags()
		if flags.Changed("seed") {
			loaded.Seed = genSeed
		}
		if flags.Changed("ticks") {
			loaded.Ticks = genTicks
		}
		if flags.Changed("rate") {
			loaded.Rate = genRate
		}
		if flags.Changed("process") {
			loaded.Process = genProcess
		}
		if flags.Changed("ttask") {
			loaded.TaskDuration = genTTask
		}
		if flags.Changed("umax") {
			loaded.ServerCapacity = genUMax
		}
		if flags.Changed("idle-tail") {
			loaded.IdleTail = genIdleTail
		}
		spec = loaded
	}
	if cmd.Flags().Changed("cv") || (spec.CV == nil && spec.Process == "bursty") {
		cv := genCV
		spec.CV = &cv
	}
	return spec, nil
}

func init() {
	generateCmd.Flags().StringVar(&genSpecPath, "spec", "", "YAML generator spec (flags set explicitly take precedence)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for arrival generation")
	generateCmd.Flags().IntVar(&genTicks, "ticks", 20, "Number of arrival batches")
	generateCmd.Flags().Float64Var(&genRate, "rate", 2.0, "Mean arrivals per tick")
	generateCmd.Flags().StringVar(&genProcess, "process", "poisson", "Arrival process (poisson, bursty)")
	generateCmd.Flags().Float64Var(&genCV, "cv", 2.0, "Coefficient of variation of the bursty arrival rate")
	generateCmd.Flags().IntVar(&genTTask, "ttask", 4, "Task duration in ticks")
	generateCmd.Flags().IntVar(&genUMax, "umax", 2, "Tasks per server")
	generateCmd.Flags().IntVar(&genIdleTail, "idle-tail", 0, "Zero batches appended after the generated ones")
}
