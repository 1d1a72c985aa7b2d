package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebook/internal/controller"
	"github.com/mesh-intelligence/recipebook/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	var fields controller.Fields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe",
		Long: `Add a recipe from flags, or from an interactive form when no flag is
given and stdin is a terminal.

Example:
  recipebook add --name Tea --ingredients "water, tea leaves" --instructions "Steep 3 minutes"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyChanged(cmd, "name", "ingredients", "instructions") && a.interactive() {
				ok, err := a.prompt(cmd, "New recipe", &fields)
				if err != nil || !ok {
					return err
				}
			}

			s, err := a.open()
			if err != nil {
				return err
			}
			defer s.Close()

			s.ctl.SetFields(fields)
			recipe, ok := s.ctl.Add()
			if !ok {
				return userErrorf("add: %w", types.ErrInvalidRecipe)
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), recipe)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added recipe %d: %s\n", recipe.ID, recipe.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Name, "name", "", "recipe name")
	cmd.Flags().StringVar(&fields.Ingredients, "ingredients", "", "comma-separated ingredients")
	cmd.Flags().StringVar(&fields.Instructions, "instructions", "", "preparation instructions")
	return cmd
}
