package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/systmms/credops/pkg/lifecycle"
)

// NewDeleteCommand tears down the resource. The resource itself owns
// nothing external, so deletion amounts to discarding the local snapshot.
func NewDeleteCommand(rt *Runtime) *cobra.Command {
	var statePath string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Discard the state snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := loadState(statePath)
			if err != nil {
				return err
			}

			provider := lifecycle.New(rt.Logger)
			if err := provider.Delete(context.Background(), sf.ID); err != nil {
				return err
			}

			if err := os.Remove(statePath); err != nil {
				return err
			}
			rt.Logger.Info("deleted %s and removed snapshot %s", sf.ID, statePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&statePath, "state", "credops.state.json", "State snapshot path")

	return cmd
}
