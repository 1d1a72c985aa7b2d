package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recipe",
		Long:  "Delete a recipe by id. Deleting an id that does not exist succeeds.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := a.open()
			if err != nil {
				return err
			}
			defer s.Close()

			if _, ok := s.store.Get(id); !ok {
				a.logger.Debug("deleting unknown recipe", "id", id)
			}
			s.ctl.Delete(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %d\n", id)
			return nil
		},
	}
}
