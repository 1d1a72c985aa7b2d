package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/recipebook/pkg/types"
)

func TestRenderListEmpty(t *testing.T) {
	out := RenderList(nil)
	assert.Contains(t, out, "Recipe List")
	assert.Contains(t, out, "No recipes yet.")
}

func TestRenderListKeepsOrder(t *testing.T) {
	out := RenderList([]types.Recipe{
		{ID: 1, Name: "Tea", Ingredients: []string{"water", "tea leaves"}, Instructions: "Boil and steep"},
		{ID: 2, Name: "Toast", Ingredients: []string{"bread"}, Instructions: "Toast it"},
	})

	assert.Contains(t, out, "water, tea leaves")
	assert.Contains(t, out, "#2")
	assert.Less(t, strings.Index(out, "Tea"), strings.Index(out, "Toast"))
}

func TestRenderRecipe(t *testing.T) {
	out := RenderRecipe(types.Recipe{ID: 42, Name: "Soup", Ingredients: []string{"stock", "leeks"}, Instructions: "Simmer"})

	assert.Contains(t, out, "Soup")
	assert.Contains(t, out, "#42")
	assert.Contains(t, out, "Ingredients:")
	assert.Contains(t, out, "stock, leeks")
	assert.Contains(t, out, "Simmer")
}
