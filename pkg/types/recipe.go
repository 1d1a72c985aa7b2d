package types

import "slices"

// Recipe is the sole entity of the recipe book.
type Recipe struct {
	ID           int64    `json:"id"`           // Assigned by the caller at creation; non-zero.
	Name         string   `json:"name"`         // Non-empty after trimming.
	Ingredients  []string `json:"ingredients"`  // Ordered, non-empty trimmed tokens.
	Instructions string   `json:"instructions"` // Non-empty after trimming.
}

// Clone returns a copy of r that shares no memory with it.
func (r Recipe) Clone() Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	return r
}

// State is the persisted form of the recipe collection.
type State struct {
	Recipes []Recipe `json:"recipes"`
}

// CloneRecipes deep-copies a recipe slice. A nil input yields an empty,
// non-nil slice so callers can range and marshal it uniformly.
func CloneRecipes(recipes []Recipe) []Recipe {
	out := make([]Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.Clone()
	}
	return out
}
