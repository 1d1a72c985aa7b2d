package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebook/pkg/types"
)

func newEditCmd(a *app) *cobra.Command {
	var name, ingredients, instructions string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a recipe",
		Long: `Edit a recipe. Flags override single fields; with no flag and a terminal
on stdin the form opens prefilled with the current values.

Unless preserve_ids_on_edit is set, the edited recipe moves to the end of
the list under a new id, which is printed.`,
		Args: cobra.ExactArgs(1),
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

			recipe, err := s.lookup(id)
			if err != nil {
				return err
			}
			s.ctl.BeginEdit(recipe)
			fields := s.ctl.Fields()

			switch {
			case anyChanged(cmd, "name", "ingredients", "instructions"):
				if cmd.Flags().Changed("name") {
					fields.Name = name
				}
				if cmd.Flags().Changed("ingredients") {
					fields.Ingredients = ingredients
				}
				if cmd.Flags().Changed("instructions") {
					fields.Instructions = instructions
				}
			case a.interactive():
				ok, err := a.prompt(cmd, "Edit recipe", &fields)
				if err != nil || !ok {
					s.ctl.CancelEdit()
					return err
				}
			}

			s.ctl.SetFields(fields)
			updated, ok := s.ctl.Update()
			if !ok {
				return userErrorf("edit: %w", types.ErrInvalidRecipe)
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), updated)
			}
			if updated.ID != recipe.ID {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated recipe %d: %s (was %d)\n", updated.ID, updated.Name, recipe.ID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated recipe %d: %s\n", updated.ID, updated.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new recipe name")
	cmd.Flags().StringVar(&ingredients, "ingredients", "", "new comma-separated ingredients")
	cmd.Flags().StringVar(&instructions, "instructions", "", "new preparation instructions")
	return cmd
}
