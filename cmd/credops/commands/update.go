package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systmms/credops/internal/config"
	"github.com/systmms/credops/pkg/lifecycle"
)

// NewUpdateCommand reconciles the desired state against the last snapshot.
// Unchanged entries keep their hashes; only new or changed entries are
// recomputed.
func NewUpdateCommand(rt *Runtime) *cobra.Command {
	var (
		inputsPath string
		statePath  string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Reconcile entries against the last state snapshot",
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

			diff, err := provider.Diff(context.Background(), sf.ID, &sf.Outputs, spec)
			if err != nil {
				return err
			}
			if !diff.Changes {
				rt.Logger.Info("no changes for %s; snapshot left untouched", sf.ID)
				if outputJSON {
					return printJSON(sf)
				}
				fmt.Println(sf.Outputs.Result)
				return nil
			}

			result, err := provider.Update(context.Background(), sf.ID, sf.Outputs, spec)
			if err != nil {
				return fmt.Errorf("update failed: %w", err)
			}

			sf.Outputs = result.Outputs
			if err := saveState(statePath, sf); err != nil {
				return err
			}
			rt.Logger.Debug("state snapshot rewritten at %s", statePath)

			if outputJSON {
				return printJSON(sf)
			}
			fmt.Println(result.Outputs.Result)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputsPath, "inputs", "credops.yaml", "Desired-state file path")
	cmd.Flags().StringVar(&statePath, "state", "credops.state.json", "State snapshot path")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Print full outputs as JSON (includes plaintext passwords)")

	return cmd
}
