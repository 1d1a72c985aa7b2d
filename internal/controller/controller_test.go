package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/recipebook/internal/store"
	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// seqIDs hands out 1, 2, 3, ... and records observed ids.
type seqIDs struct {
	next     int64
	observed []int64
}

func (s *seqIDs) Next() int64 {
	s.next++
	return s.next
}

func (s *seqIDs) Observe(id int64) {
	s.observed = append(s.observed, id)
	if id > s.next {
		s.next = id
	}
}

func newController(t *testing.T, opts ...Option) (*Controller, *store.Store) {
	t.Helper()
	st := store.New(nil)
	return New(st, &seqIDs{}, opts...), st
}

var teaFields = Fields{Name: "Tea", Ingredients: "water, tea leaves", Instructions: "Boil and steep"}

func TestParseIngredients(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "water, tea leaves", want: []string{"water", "tea leaves"}},
		{in: "  flour ,sugar,  eggs  ", want: []string{"flour", "sugar", "eggs"}},
		{in: "salt", want: []string{"salt"}},
		{in: "a,,b, ,", want: []string{"a", "b"}},
		{in: "", want: nil},
		{in: " , , ", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIngredients(tt.in))
		})
	}
}

func TestJoinIngredients(t *testing.T) {
	assert.Equal(t, "water, tea leaves", JoinIngredients([]string{"water", "tea leaves"}))
	assert.Equal(t, "", JoinIngredients(nil))
}

func TestFieldsValid(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   bool
	}{
		{name: "complete", fields: teaFields, want: true},
		{name: "blank name", fields: Fields{Name: "   ", Ingredients: "x", Instructions: "y"}},
		{name: "blank ingredients", fields: Fields{Name: "n", Ingredients: " ", Instructions: "y"}},
		{name: "only separators", fields: Fields{Name: "n", Ingredients: ",,", Instructions: "y"}},
		{name: "blank instructions", fields: Fields{Name: "n", Ingredients: "x", Instructions: "\n\t"}},
		{name: "empty", fields: Fields{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fields.Valid())
		})
	}
}

func TestFieldsOfRecipeNormalizes(t *testing.T) {
	raw := types.Recipe{
		ID:           5,
		Name:         "  Tea  ",
		Ingredients:  []string{"", " water ", "salt, pepper"},
		Instructions: "  Boil  ",
	}

	f := FieldsOf(raw)
	require.True(t, f.Valid())
	assert.Equal(t, types.Recipe{
		ID:           9,
		Name:         "Tea",
		Ingredients:  []string{"water", "salt", "pepper"},
		Instructions: "Boil",
	}, f.Recipe(9))
}

func TestAdd(t *testing.T) {
	c, st := newController(t)
	c.SetFields(Fields{Name: "  Tea ", Ingredients: "water, tea leaves", Instructions: " Boil and steep\n"})

	r, ok := c.Add()
	require.True(t, ok)
	assert.Equal(t, types.Recipe{ID: 1, Name: "Tea", Ingredients: []string{"water", "tea leaves"}, Instructions: "Boil and steep"}, r)
	assert.Equal(t, []types.Recipe{r}, st.Recipes())
	assert.Equal(t, Fields{}, c.Fields(), "form is cleared after add")
}

func TestAddRejectsInvalidSilently(t *testing.T) {
	c, st := newController(t)
	input := Fields{Name: "Tea", Ingredients: "", Instructions: "Boil"}
	c.SetFields(input)

	_, ok := c.Add()
	assert.False(t, ok)
	assert.Empty(t, st.Recipes())
	assert.Equal(t, input, c.Fields(), "form is kept after rejection")
}

func TestBeginEditLoadsForm(t *testing.T) {
	c, _ := newController(t)
	r := types.Recipe{ID: 5, Name: "Tea", Ingredients: []string{"water", "tea leaves"}, Instructions: "Boil"}

	c.BeginEdit(r)

	got, editing := c.Editing()
	require.True(t, editing)
	assert.Equal(t, r, got)
	assert.Equal(t, Fields{Name: "Tea", Ingredients: "water, tea leaves", Instructions: "Boil"}, c.Fields())
}

func TestUpdateReplacesIdentityByDefault(t *testing.T) {
	c, st := newController(t)
	c.SetFields(teaFields)
	tea, _ := c.Add()
	c.SetFields(Fields{Name: "Toast", Ingredients: "bread", Instructions: "Toast"})
	toast, _ := c.Add()

	c.BeginEdit(tea)
	c.SetFields(Fields{Name: "Green Tea", Ingredients: "water, green tea", Instructions: "Steep"})
	updated, ok := c.Update()
	require.True(t, ok)

	assert.NotEqual(t, tea.ID, updated.ID, "edit assigns a new id")
	assert.Equal(t, []types.Recipe{toast, updated}, st.Recipes(), "edited recipe moves to the end")
	_, found := st.Get(tea.ID)
	assert.False(t, found, "old id no longer resolves")

	_, editing := c.Editing()
	assert.False(t, editing)
	assert.Equal(t, Fields{}, c.Fields())
}

func TestUpdatePreservingIDs(t *testing.T) {
	c, st := newController(t, WithPreserveIDs(true))
	c.SetFields(teaFields)
	tea, _ := c.Add()
	c.SetFields(Fields{Name: "Toast", Ingredients: "bread", Instructions: "Toast"})
	toast, _ := c.Add()

	c.BeginEdit(tea)
	c.SetFields(Fields{Name: "Green Tea", Ingredients: "water, green tea", Instructions: "Steep"})
	updated, ok := c.Update()
	require.True(t, ok)

	assert.Equal(t, tea.ID, updated.ID)
	assert.Equal(t, []types.Recipe{updated, toast}, st.Recipes(), "position is kept")
}

func TestUpdatePreservingIDsAfterConcurrentDelete(t *testing.T) {
	c, st := newController(t, WithPreserveIDs(true))
	c.SetFields(teaFields)
	tea, _ := c.Add()

	c.BeginEdit(tea)
	st.RemoveRecipe(tea.ID)
	updated, ok := c.Update()
	require.True(t, ok)

	assert.Equal(t, []types.Recipe{updated}, st.Recipes())
	assert.Equal(t, tea.ID, updated.ID)
}

func TestUpdateOutsideEditModeDoesNothing(t *testing.T) {
	c, st := newController(t)
	c.SetFields(teaFields)

	_, ok := c.Update()
	assert.False(t, ok)
	assert.Empty(t, st.Recipes())
}

func TestUpdateRejectsInvalidAndStaysInEditMode(t *testing.T) {
	c, st := newController(t)
	c.SetFields(teaFields)
	tea, _ := c.Add()

	c.BeginEdit(tea)
	c.SetFields(Fields{Name: "", Ingredients: "x", Instructions: "y"})
	_, ok := c.Update()
	assert.False(t, ok)

	_, editing := c.Editing()
	assert.True(t, editing)
	assert.Equal(t, []types.Recipe{tea}, st.Recipes())
}

func TestCancelEdit(t *testing.T) {
	c, st := newController(t)
	c.SetFields(teaFields)
	tea, _ := c.Add()

	c.BeginEdit(tea)
	c.SetFields(Fields{Name: "changed", Ingredients: "x", Instructions: "y"})
	c.CancelEdit()

	_, editing := c.Editing()
	assert.False(t, editing)
	assert.Equal(t, Fields{}, c.Fields())
	assert.Equal(t, []types.Recipe{tea}, st.Recipes())
}

func TestSubmit(t *testing.T) {
	c, st := newController(t)

	c.SetFields(teaFields)
	tea, ok := c.Submit()
	require.True(t, ok)

	c.BeginEdit(tea)
	c.SetFields(Fields{Name: "Chai", Ingredients: "tea, milk", Instructions: "Simmer"})
	chai, ok := c.Submit()
	require.True(t, ok)

	assert.Equal(t, []types.Recipe{chai}, st.Recipes())
}

func TestDelete(t *testing.T) {
	c, st := newController(t)
	c.SetFields(teaFields)
	tea, _ := c.Add()

	c.BeginEdit(tea)
	c.Delete(tea.ID)

	assert.Empty(t, st.Recipes())
	_, editing := c.Editing()
	assert.False(t, editing, "deleting the edited recipe cancels the edit")

	c.Delete(12345)
	assert.Empty(t, st.Recipes())
}

func TestNewObservesExistingIDs(t *testing.T) {
	st := store.New(nil)
	st.AddRecipe(types.Recipe{ID: 40, Name: "A", Ingredients: []string{"a"}, Instructions: "a"})
	st.AddRecipe(types.Recipe{ID: 7, Name: "B", Ingredients: []string{"b"}, Instructions: "b"})
	ids := &seqIDs{}

	c := New(st, ids)
	assert.Equal(t, []int64{40, 7}, ids.observed)

	c.SetFields(teaFields)
	r, ok := c.Add()
	require.True(t, ok)
	assert.Equal(t, int64(41), r.ID)
}
