package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mesh-intelligence/recipebook/internal/controller"
)

// runRecipeForm shows the recipe form in the terminal. Fields arrive
// prefilled when editing.
func runRecipeForm(title string, fields *controller.Fields) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("e.g., Tea").
				Value(&fields.Name).
				Validate(required("name")),

			huh.NewInput().
				Title("Ingredients").
				Description("Comma-separated").
				Placeholder("e.g., water, tea leaves").
				Value(&fields.Ingredients).
				Validate(func(s string) error {
					if len(controller.ParseIngredients(s)) == 0 {
						return errors.New("at least one ingredient is required")
					}
					return nil
				}),

			huh.NewText().
				Title("Instructions").
				Placeholder("Boil the water...").
				CharLimit(5000).
				Value(&fields.Instructions).
				Validate(required("instructions")),
		).Title(title),
	).WithTheme(huh.ThemeDracula())

	return form.Run()
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}
