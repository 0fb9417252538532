package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lbsim/lbsim/sim"
	"github.com/lbsim/lbsim/sim/workload"
)

var (
	// CLI flags for the validate command
	validatePolicy    string // Placement policy to validate against
	validateBootstrap string // Bootstrap mode to validate against
)

// validateCmd checks an input file without running the simulation
var validateCmd = &cobra.Command{
	Use:   "validate <input path>",
	Short: "Check an input file and placement settings without simulating",
	Args:  exactArgs(1, "<input path>"),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := validateInput(args[0], validatePolicy, sim.BootstrapMode(validateBootstrap))
		if err != nil {
			return err
		}
		total := 0
		for _, n := range in.Arrivals {
			total += n
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (ttask=%d, umax=%d, %d batches, %d tasks)\n",
			args[0], in.TaskDuration, in.ServerCapacity, len(in.Arrivals), total)
		return nil
	},
}

// validateInput parses the input file and checks it against a zero-cost config.
func validateInput(path, policy string, bootstrap sim.BootstrapMode) (*workload.Input, error) {
	in, err := workload.LoadInputFile(path)
	if err != nil {
		return nil, err
	}
	cfg := sim.NewSimConfig(in.TaskDuration, in.ServerCapacity, 0, policy, bootstrap)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

func init() {
	validateCmd.Flags().StringVar(&validatePolicy, "policy", "longest-remaining", "Placement policy to validate against")
	validateCmd.Flags().StringVar(&validateBootstrap, "bootstrap", string(sim.BootstrapUnbounded), "Bootstrap mode to validate against")
}
