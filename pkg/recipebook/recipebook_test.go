package recipebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/recipebook/pkg/types"
)

func TestOpenRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  types.Config
		wantErr error
	}{
		{name: "empty backend", config: types.Config{}, wantErr: types.ErrBackendEmpty},
		{name: "unknown backend", config: types.Config{Backend: "postgres"}, wantErr: types.ErrBackendUnknown},
		{name: "unknown id source", config: types.Config{Backend: types.BackendMemory, IDSource: "dice"}, wantErr: types.ErrIDSourceUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := Open(tt.config, nil)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, book)
		})
	}
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	for _, backend := range []string{types.BackendFile, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := types.Config{Backend: backend, DataDir: t.TempDir()}
			tea := types.Recipe{ID: 1, Name: "Tea", Ingredients: []string{"water"}, Instructions: "Boil"}

			book, err := Open(cfg, nil)
			require.NoError(t, err)
			assert.Empty(t, book.Store().Recipes())
			book.Store().AddRecipe(tea)
			require.NoError(t, book.Close())

			reopened, err := Open(cfg, nil)
			require.NoError(t, err)
			defer reopened.Close()
			assert.Equal(t, []types.Recipe{tea}, reopened.Store().Recipes())
		})
	}
}

func TestOpenUsesStorageKey(t *testing.T) {
	dir := t.TempDir()
	tea := types.Recipe{ID: 1, Name: "Tea", Ingredients: []string{"water"}, Instructions: "Boil"}

	first, err := Open(types.Config{Backend: types.BackendFile, DataDir: dir, StorageKey: "weekday"}, nil)
	require.NoError(t, err)
	first.Store().AddRecipe(tea)
	require.NoError(t, first.Close())

	other, err := Open(types.Config{Backend: types.BackendFile, DataDir: dir}, nil)
	require.NoError(t, err)
	defer other.Close()
	assert.Empty(t, other.Store().Recipes())
	assert.Equal(t, types.DefaultStorageKey, other.Config().Key())
}

func TestCloseIsIdempotent(t *testing.T) {
	book, err := Open(types.Config{Backend: types.BackendMemory}, nil)
	require.NoError(t, err)
	assert.NoError(t, book.Close())
	assert.NoError(t, book.Close())
}
