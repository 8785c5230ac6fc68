package backend

import (
	"context"
	"testing"

	"github.com/junaidrashid-git/armory-api/config"
	"github.com/junaidrashid-git/armory-api/store"
	"github.com/junaidrashid-git/armory-api/store/gormstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, &config.Config{StoreDriver: config.DriverSQLite})
	require.NoError(t, err)
	defer st.Close()

	assert.IsType(t, &gormstore.Store{}, st)
	require.NoError(t, st.Migrate(ctx))
	_, total, err := st.Categories().List(ctx, store.CategoryFilter{}, store.Window{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestOpenUnknownDriver(t *testing.T) {
	st, err := Open(context.Background(), &config.Config{StoreDriver: "oracle"})
	assert.Nil(t, st)
	assert.ErrorContains(t, err, `unknown store driver "oracle"`)
}
