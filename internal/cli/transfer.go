// Export and import of recipes as JSON Lines.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebook/internal/controller"
	"github.com/mesh-intelligence/recipebook/internal/idgen"
	"github.com/mesh-intelligence/recipebook/internal/persist"
	"github.com/mesh-intelligence/recipebook/pkg/types"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write all recipes as JSON Lines to a file or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			defer s.Close()

			recipes := s.store.Recipes()
			if len(args) == 0 {
				if err := persist.EncodeJSONL(cmd.OutOrStdout(), recipes); err != nil {
					return sysError(fmt.Errorf("export: %w", err))
				}
				return nil
			}
			if err := persist.WriteJSONL(args[0], recipes); err != nil {
				return sysError(fmt.Errorf("export: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d recipes to %s\n", len(recipes), args[0])
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Append recipes from a JSON Lines file",
		Long: `Append recipes from a JSON Lines file written by export.

Records without an id, or whose id is already taken, get a new id.
Incomplete records and malformed lines are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := persist.ReadJSONL(args[0])
			if err != nil {
				return userErrorf("import: %w", err)
			}

			s, err := a.open()
			if err != nil {
				return err
			}
			defer s.Close()

			imported, skipped := a.importRecipes(s, records)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d recipes (%d skipped)\n", imported, skipped)
			return nil
		},
	}
}

// importRecipes appends every complete record to the store in the form the
// controller would have stored it. Records whose id is not positive, not
// representable as a JavaScript number, or already taken get a fresh id.
func (a *app) importRecipes(s *session, records []types.Recipe) (imported, skipped int) {
	taken := make(map[int64]bool)
	for _, r := range s.store.Recipes() {
		taken[r.ID] = true
	}
	observer, _ := s.ids.(idgen.Observer)

	for _, r := range records {
		fields := controller.FieldsOf(r)
		if !fields.Valid() {
			a.logger.Warn("skipping incomplete recipe", "id", r.ID, "name", r.Name)
			skipped++
			continue
		}
		id := r.ID
		if id <= 0 || id > idgen.MaxID || taken[id] {
			id = s.ids.Next()
		} else if observer != nil {
			observer.Observe(id)
		}
		taken[id] = true
		s.store.AddRecipe(fields.Recipe(id))
		imported++
	}
	return imported, skipped
}
