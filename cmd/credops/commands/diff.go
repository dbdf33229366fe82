package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systmms/credops/internal/config"
	"github.com/systmms/credops/pkg/lifecycle"
)

// NewDiffCommand reports whether the desired state differs from the last
// snapshot. Pure pre-check: no hashing, no randomness.
func NewDiffCommand(rt *Runtime) *cobra.Command {
	var (
		inputsPath string
		statePath  string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Check whether the desired state requires an update",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := config.Load(inputsPath)
			if err != nil {
				return err
			}

			sf, err := loadState(statePath)
			if err != nil {
				return err
			}

			provider := lifecycle.New(rt.Logger)
			result, err := provider.Diff(context.Background(), sf.ID, &sf.Outputs, spec)
			if err != nil {
				return err
			}

			if outputJSON {
				return printJSON(map[string]bool{"changes": result.Changes})
			}
			if result.Changes {
				fmt.Println("changes: true")
			} else {
				fmt.Println("changes: false")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputsPath, "inputs", "credops.yaml", "Desired-state file path")
	cmd.Flags().StringVar(&statePath, "state", "credops.state.json", "State snapshot path")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")

	return cmd
}
