package services

import (
	"context"
	"errors"
	"testing"

	"github.com/junaidrashid-git/armory-api/models"
	"github.com/junaidrashid-git/armory-api/notify"
	"github.com/junaidrashid-git/armory-api/pagination"
	"github.com/junaidrashid-git/armory-api/store"
	"github.com/junaidrashid-git/armory-api/store/gormstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	f.user(t, "admin", models.RoleAdmin)
	f.user(t, models.SuperAdminUserName, models.RoleSuperAdmin)
	f.category(t, "Rifles")
	f.product(t, "p-1", "Rifles", 10)
	f.product(t, "p-2", "Rifles", 20)
	f.notifier.reset()
	return f
}

func cartInput(user string, codes []string, amounts []int) CartInput {
	in := CartInput{
		User:           UserRef{UserName: user},
		Amounts:        amounts,
		TotalItems:     0,
		TotalPrice:     decimal.RequireFromString("50"),
		TotalPriceTaxs: decimal.RequireFromString("60.5"),
	}
	for _, code := range codes {
		in.Products = append(in.Products, ProductRef{Code: code})
	}
	for _, a := range amounts {
		in.TotalItems += a
	}
	return in
}

func TestCartCreateResolvesUserAndLines(t *testing.T) {
	f := cartFixture(t)

	c, err := f.svc.Carts.Create(f.ctx, cartInput("admin", []string{"p-2", "p-1"}, []int{1, 3}))
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	require.NotNil(t, c.User)
	assert.Equal(t, "admin", c.User.UserName)

	got := f.svc.Carts.Find(f.ctx, c.ID)
	require.NotNil(t, got)
	assert.Equal(t, "admin", got.User.UserName)
	require.Len(t, got.Products, 2)
	assert.Equal(t, "p-2", got.Products[0].Code)
	assert.Equal(t, "p-1", got.Products[1].Code)
	assert.Equal(t, []int{1, 3}, got.Amounts)
	assert.Equal(t, 4, got.TotalItems)
	assert.True(t, got.TotalPriceTaxs.Equal(decimal.RequireFromString("60.5")))

	assert.Equal(t, []notify.Channel{notify.Carts}, f.notifier.events())
}

func TestCartCreateUnknownUserWritesNothing(t *testing.T) {
	f := cartFixture(t)

	_, err := f.svc.Carts.Create(f.ctx, cartInput("ghost", []string{"p-1"}, []int{1}))
	e := requireKind(t, err, ErrNotFound)
	assert.Equal(t, "User ghost not exist", e.Error())

	p, err := f.svc.Carts.List(f.ctx, CartQuery{}, pagination.Request{})
	require.NoError(t, err)
	assert.Empty(t, p.Items)
	assert.Empty(t, f.notifier.events())
}

func TestCartCreateValidatesLines(t *testing.T) {
	f := cartFixture(t)

	_, err := f.svc.Carts.Create(f.ctx, cartInput("admin", []string{"p-1", "p-2"}, []int{1}))
	requireKind(t, err, ErrInvalid)

	_, err = f.svc.Carts.Create(f.ctx, cartInput("admin", []string{"p-1", "nope"}, []int{1, 1}))
	e := requireKind(t, err, ErrNotFound)
	assert.Equal(t, "Product", e.Entity)
	assert.Equal(t, "nope", e.Key)

	_, err = f.svc.Carts.Create(f.ctx, cartInput("admin", []string{"P-1"}, []int{1}))
	requireKind(t, err, ErrNotFound)

	p, err := f.svc.Carts.List(f.ctx, CartQuery{}, pagination.Request{})
	require.NoError(t, err)
	assert.Empty(t, p.Items)
}

func TestCartCreateWithTakenIDConflicts(t *testing.T) {
	f := cartFixture(t)
	in := cartInput("admin", []string{"p-1"}, []int{1})
	in.ID = "cart-42"

	c, err := f.svc.Carts.Create(f.ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "cart-42", c.ID)

	_, err = f.svc.Carts.Create(f.ctx, in)
	e := requireKind(t, err, ErrConflict)
	assert.Equal(t, "Cart cart-42 already exist", e.Error())
}

func TestCartListHidesSuperadmin(t *testing.T) {
	f := cartFixture(t)
	f.user(t, "buyer", models.RoleUser)

	admin, err := f.svc.Carts.Create(f.ctx, cartInput("admin", []string{"p-1"}, []int{1}))
	require.NoError(t, err)
	_, err = f.svc.Carts.Create(f.ctx, cartInput("buyer", []string{"p-2"}, []int{2}))
	require.NoError(t, err)
	_, err = f.svc.Carts.Create(f.ctx, cartInput(models.SuperAdminUserName, []string{"p-1"}, []int{1}))
	require.NoError(t, err)

	for _, q := range []CartQuery{{}, {User: "nobody"}} {
		p, err := f.svc.Carts.List(f.ctx, q, pagination.Request{})
		require.NoError(t, err)
		assert.Len(t, p.Items, 2, "query %+v", q)
		for _, c := range p.Items {
			assert.NotEqual(t, models.SuperAdminUserName, c.User.UserName)
		}
	}

	p, err := f.svc.Carts.List(f.ctx, CartQuery{User: "admin"}, pagination.Request{})
	require.NoError(t, err)
	require.Len(t, p.Items, 1)
	assert.Equal(t, admin.ID, p.Items[0].ID)

	p, err = f.svc.Carts.List(f.ctx, CartQuery{User: models.SuperAdminUserName}, pagination.Request{})
	require.NoError(t, err)
	assert.Empty(t, p.Items)

	p, err = f.svc.Carts.List(f.ctx, CartQuery{ID: admin.ID}, pagination.Request{})
	require.NoError(t, err)
	assert.Len(t, p.Items, 1)
}

// brokenUsers fails every user lookup.
type brokenUsers struct {
	store.Users
	err error
}

func (u brokenUsers) FindByUserName(context.Context, string) (*models.User, error) {
	return nil, u.err
}

type usersDown struct {
	*gormstore.Store
	err error
}

func (s usersDown) Users() store.Users { return brokenUsers{Users: s.Store.Users(), err: s.err} }

func TestCartListFailsWhenSuperadminLookupFails(t *testing.T) {
	f := cartFixture(t)
	_, err := f.svc.Carts.Create(f.ctx, cartInput(models.SuperAdminUserName, []string{"p-1"}, []int{1}))
	require.NoError(t, err)

	svc := New(usersDown{Store: f.store, err: errors.New("connection reset")}, f.notifier, nil)
	p, err := svc.Carts.List(f.ctx, CartQuery{}, pagination.Request{})
	assert.Nil(t, p)
	requireKind(t, err, ErrPersistence)
	assert.Contains(t, f.notifier.failures, "fetchCarts")
}

func TestCartListWithoutSuperadmin(t *testing.T) {
	f := newFixture(t)
	f.user(t, "admin", models.RoleAdmin)
	f.category(t, "Rifles")
	f.product(t, "p-1", "Rifles", 10)

	_, err := f.svc.Carts.Create(f.ctx, cartInput("admin", []string{"p-1"}, []int{1}))
	require.NoError(t, err)

	p, err := f.svc.Carts.List(f.ctx, CartQuery{}, pagination.Request{})
	require.NoError(t, err)
	assert.Len(t, p.Items, 1)
}

func TestCartUpdateRoundTrip(t *testing.T) {
	f := cartFixture(t)
	f.user(t, "buyer", models.RoleUser)
	c, err := f.svc.Carts.Create(f.ctx, cartInput("admin", []string{"p-1"}, []int{1}))
	require.NoError(t, err)

	in := cartInput("buyer", []string{"p-1", "p-2"}, []int{4, 5})
	_, err = f.svc.Carts.Update(f.ctx, c.ID, in)
	require.NoError(t, err)

	got := f.svc.Carts.Find(f.ctx, c.ID)
	require.NotNil(t, got)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, "buyer", got.User.UserName)
	assert.Equal(t, []int{4, 5}, got.Amounts)
	assert.Equal(t, 9, got.TotalItems)
	require.Len(t, got.Products, 2)

	_, err = f.svc.Carts.Update(f.ctx, "missing", in)
	requireKind(t, err, ErrNotFound)
	_, err = f.svc.Carts.Update(f.ctx, c.ID, cartInput("ghost", nil, nil))
	requireKind(t, err, ErrNotFound)
}

func TestCartsSeeLivePrices(t *testing.T) {
	f := cartFixture(t)
	c, err := f.svc.Carts.Create(f.ctx, cartInput("admin", []string{"p-1"}, []int{1}))
	require.NoError(t, err)

	_, err = f.svc.Products.Update(f.ctx, "p-1", ProductInput{
		Category: CategoryRef{Name: "Rifles"},
		Name:     "p-1",
		Price:    decimal.NewFromInt(999),
	})
	require.NoError(t, err)

	got := f.svc.Carts.Find(f.ctx, c.ID)
	require.Len(t, got.Products, 1)
	assert.True(t, got.Products[0].Price.Equal(decimal.NewFromInt(999)))
}

func TestCartDelete(t *testing.T) {
	f := cartFixture(t)
	c, err := f.svc.Carts.Create(f.ctx, cartInput("admin", []string{"p-1"}, []int{1}))
	require.NoError(t, err)

	ok, err := f.svc.Carts.Delete(f.ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, f.svc.Carts.Find(f.ctx, c.ID))

	_, err = f.svc.Carts.Delete(f.ctx, c.ID)
	e := requireKind(t, err, ErrNotFound)
	assert.Equal(t, "Cart "+c.ID+" not exist", e.Error())

	assert.Equal(t, []notify.Channel{notify.Carts, notify.Carts}, f.notifier.events())
}
