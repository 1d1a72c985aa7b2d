// Package controller holds the recipe form: it validates and transforms form
// input, turns it into store mutations, and tracks whether the form is
// editing an existing recipe.
package controller

import (
	"strings"

	"github.com/mesh-intelligence/recipebook/internal/idgen"
	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// ingredientSep separates ingredients in form input.
const ingredientSep = ","

// Fields is the raw form input. Ingredients is comma-delimited text.
type Fields struct {
	Name         string
	Ingredients  string
	Instructions string
}

// Valid reports whether every field is non-empty after trimming.
func (f Fields) Valid() bool {
	return strings.TrimSpace(f.Name) != "" &&
		len(ParseIngredients(f.Ingredients)) > 0 &&
		strings.TrimSpace(f.Instructions) != ""
}

// FieldsOf loads recipe into form input, joining its ingredients.
func FieldsOf(recipe types.Recipe) Fields {
	return Fields{
		Name:         recipe.Name,
		Ingredients:  JoinIngredients(recipe.Ingredients),
		Instructions: recipe.Instructions,
	}
}

// Recipe builds the stored form of f under id: trimmed name and
// instructions, parsed ingredients. Callers check Valid first.
func (f Fields) Recipe(id int64) types.Recipe {
	return types.Recipe{
		ID:           id,
		Name:         strings.TrimSpace(f.Name),
		Ingredients:  ParseIngredients(f.Ingredients),
		Instructions: strings.TrimSpace(f.Instructions),
	}
}

// Controller drives a types.RecipeStore from form input.
type Controller struct {
	store       types.RecipeStore
	ids         idgen.Generator
	preserveIDs bool

	fields  Fields
	editing *types.Recipe
}

// Option configures a Controller.
type Option func(*Controller)

// WithPreserveIDs makes Update keep the edited recipe's id and position
// instead of removing it and appending a copy under a new id.
func WithPreserveIDs(preserve bool) Option {
	return func(c *Controller) {
		c.preserveIDs = preserve
	}
}

// New creates a controller over store. When ids can observe existing ids it
// is fed every id already in the store.
func New(store types.RecipeStore, ids idgen.Generator, opts ...Option) *Controller {
	c := &Controller{store: store, ids: ids}
	for _, opt := range opts {
		opt(c)
	}
	if obs, ok := ids.(idgen.Observer); ok {
		for _, r := range store.Recipes() {
			obs.Observe(r.ID)
		}
	}
	return c
}

// Fields returns the current form input.
func (c *Controller) Fields() Fields {
	return c.fields
}

// SetFields replaces the form input.
func (c *Controller) SetFields(f Fields) {
	c.fields = f
}

// Editing returns the recipe being edited, if any.
func (c *Controller) Editing() (types.Recipe, bool) {
	if c.editing == nil {
		return types.Recipe{}, false
	}
	return c.editing.Clone(), true
}

// Add creates a recipe from the form. Invalid input is ignored: Add returns
// false and leaves the form as it was.
func (c *Controller) Add() (types.Recipe, bool) {
	if !c.fields.Valid() {
		return types.Recipe{}, false
	}
	r := c.build(c.ids.Next())
	c.store.AddRecipe(r)
	c.reset()
	return r, true
}

// BeginEdit loads recipe into the form and enters edit mode.
func (c *Controller) BeginEdit(recipe types.Recipe) {
	r := recipe.Clone()
	c.editing = &r
	c.fields = FieldsOf(r)
}

// Update saves the form over the recipe being edited. It does nothing and
// returns false outside edit mode or when the input is invalid.
//
// By default the old recipe is removed and the edit is appended under a new
// id, so the recipe moves to the end and its old id stops resolving. With
// WithPreserveIDs the recipe is replaced in place.
func (c *Controller) Update() (types.Recipe, bool) {
	if c.editing == nil || !c.fields.Valid() {
		return types.Recipe{}, false
	}

	var r types.Recipe
	if c.preserveIDs {
		r = c.build(c.editing.ID)
		if !c.store.ReplaceRecipe(r) {
			c.store.AddRecipe(r)
		}
	} else {
		c.store.RemoveRecipe(c.editing.ID)
		r = c.build(c.ids.Next())
		c.store.AddRecipe(r)
	}
	c.reset()
	return r, true
}

// CancelEdit leaves edit mode and clears the form.
func (c *Controller) CancelEdit() {
	c.reset()
}

// Submit updates when editing and adds otherwise.
func (c *Controller) Submit() (types.Recipe, bool) {
	if c.editing != nil {
		return c.Update()
	}
	return c.Add()
}

// Delete removes the recipe with id. Deleting the recipe under edit also
// cancels the edit.
func (c *Controller) Delete(id int64) {
	c.store.RemoveRecipe(id)
	if c.editing != nil && c.editing.ID == id {
		c.reset()
	}
}

func (c *Controller) build(id int64) types.Recipe {
	return c.fields.Recipe(id)
}

func (c *Controller) reset() {
	c.editing = nil
	c.fields = Fields{}
}

// ParseIngredients splits comma-delimited input into trimmed, non-empty tokens.
func ParseIngredients(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ingredientSep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinIngredients renders ingredients back into form input.
func JoinIngredients(ingredients []string) string {
	return strings.Join(ingredients, ingredientSep+" ")
}
