// Shared helpers for recipebook commands.
package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebook/internal/controller"
	"github.com/mesh-intelligence/recipebook/internal/idgen"
	"github.com/mesh-intelligence/recipebook/pkg/recipebook"
	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// session is an opened recipe book plus the controller driving it.
type session struct {
	book  *recipebook.Book
	store types.RecipeStore
	ids   idgen.Generator
	ctl   *controller.Controller
}

// open attaches the configured backend and rehydrates the store. The caller
// must defer Close.
func (a *app) open() (*session, error) {
	book, err := recipebook.Open(a.config, a.logger)
	if err != nil {
		return nil, sysError(fmt.Errorf("open recipe book: %w", err))
	}

	ids, err := idgen.New(a.config.IDSource)
	if err != nil {
		book.Close()
		return nil, userErrorf("config: %w", err)
	}

	store := book.Store()
	store.Subscribe(func(recipes []types.Recipe) {
		a.logger.Debug("recipes changed", "count", len(recipes))
	})

	return &session{
		book:  book,
		store: store,
		ids:   ids,
		ctl:   controller.New(store, ids, controller.WithPreserveIDs(a.config.PreserveIDsOnEdit)),
	}, nil
}

func (s *session) Close() error {
	return s.book.Close()
}

// lookup returns the recipe with id or a user error naming it.
func (s *session) lookup(id int64) (types.Recipe, error) {
	recipe, ok := s.store.Get(id)
	if !ok {
		return types.Recipe{}, userErrorf("%w: %d", types.ErrRecipeNotFound, id)
	}
	return recipe, nil
}

// parseID parses a recipe id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, userErrorf("invalid recipe id %q", arg)
	}
	return id, nil
}

// prompt runs the interactive form over fields. It reports false when the
// user aborted the form.
func (a *app) prompt(cmd *cobra.Command, title string, fields *controller.Fields) (bool, error) {
	err := a.runForm(title, fields)
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
		return false, nil
	}
	if err != nil {
		return false, sysError(fmt.Errorf("form: %w", err))
	}
	return true, nil
}

// anyChanged reports whether any of the named flags was set on cmd.
func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
