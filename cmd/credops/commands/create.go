package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systmms/credops/internal/config"
	"github.com/systmms/credops/pkg/lifecycle"
)

// NewCreateCommand creates the credential resource from the desired-state
// file: full resolution, fresh identifier, new state snapshot.
func NewCreateCommand(rt *Runtime) *cobra.Command {
	var (
		inputsPath string
		statePath  string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Resolve all entries and write the first state snapshot",
		Long: `Create resolves every declared entry: explicit passwords are hashed,
missing ones are generated first. The credential document is printed to
stdout and the state snapshot (including plaintext passwords) is written
to the state file with owner-only permissions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := config.Load(inputsPath)
			if err != nil {
				return err
			}

			provider := lifecycle.New(rt.Logger)
			result, err := provider.Create(context.Background(), spec)
			if err != nil {
				return fmt.Errorf("create failed: %w", err)
			}

			sf := StateFile{ID: result.ID, Outputs: result.Outputs}
			if err := saveState(statePath, sf); err != nil {
				return err
			}
			rt.Logger.Debug("state snapshot written to %s", statePath)

			if outputJSON {
				// The JSON form includes plaintext passwords; stdout only.
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
