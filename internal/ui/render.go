package ui

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// RenderList renders the recipe list, one card per recipe in store order.
func RenderList(recipes []types.Recipe) string {
	var b strings.Builder
	b.WriteString(HeadingStyle.Render("Recipe List"))
	b.WriteString("\n")

	if len(recipes) == 0 {
		b.WriteString(MutedStyle.Render("No recipes yet."))
		b.WriteString("\n")
		return b.String()
	}

	for i, r := range recipes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RenderRecipe(r))
	}
	return b.String()
}

// RenderRecipe renders one recipe: name, id, ingredients and instructions.
func RenderRecipe(r types.Recipe) string {
	var body strings.Builder
	fmt.Fprintf(&body, "%s %s\n", NameStyle.Render(r.Name), MutedStyle.Render(fmt.Sprintf("#%d", r.ID)))
	fmt.Fprintf(&body, "%s %s\n", LabelStyle.Render("Ingredients:"), strings.Join(r.Ingredients, ", "))
	fmt.Fprintf(&body, "%s %s", LabelStyle.Render("Instructions:"), r.Instructions)
	return CardStyle.Render(body.String()) + "\n"
}
