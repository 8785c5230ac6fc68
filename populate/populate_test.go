package populate

import (
	"context"
	"testing"

	"github.com/junaidrashid-git/armory-api/media"
	"github.com/junaidrashid-git/armory-api/models"
	"github.com/junaidrashid-git/armory-api/notify"
	"github.com/junaidrashid-git/armory-api/pagination"
	"github.com/junaidrashid-git/armory-api/services"
	"github.com/junaidrashid-git/armory-api/store/gormstore"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopNotifier struct{}

func (nopNotifier) Changed(notify.Channel) {}
func (nopNotifier) Failure(string, error)  {}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st, err := gormstore.OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, st.Migrate(ctx))
	defer st.Close()
	svc := services.New(st, nopNotifier{}, media.New(afero.NewMemMapFs(), "/images"))

	res, err := Run(ctx, svc, "123456789Abc!")
	require.NoError(t, err)
	assert.Equal(t, &Result{Users: 2, Categories: 5}, res)

	res, err = Run(ctx, svc, "other")
	require.NoError(t, err)
	assert.Equal(t, &Result{}, res)

	root := svc.Users.Find(ctx, models.SuperAdminUserName)
	require.NotNil(t, root)
	assert.Equal(t, models.RoleSuperAdmin, root.Role)
	_, err = svc.Users.Authenticate(ctx, "admin", "123456789Abc!")
	assert.NoError(t, err, "the second run keeps the first password")

	p, err := svc.Categories.List(ctx, services.CategoryQuery{}, pagination.Request{})
	require.NoError(t, err)
	assert.EqualValues(t, 5, p.TotalItems)
}

func TestRunNeedsPassword(t *testing.T) {
	ctx := context.Background()
	st, err := gormstore.OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, st.Migrate(ctx))
	defer st.Close()
	svc := services.New(st, nopNotifier{}, nil)

	_, err = Run(ctx, svc, "")
	assert.ErrorIs(t, err, services.ErrInvalid)
}
