package services

import (
	"context"
	"sync"
	"testing"

	"github.com/junaidrashid-git/armory-api/media"
	"github.com/junaidrashid-git/armory-api/models"
	"github.com/junaidrashid-git/armory-api/notify"
	"github.com/junaidrashid-git/armory-api/store/gormstore"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	mu       sync.Mutex
	changed  []notify.Channel
	failures []string
}

func (n *fakeNotifier) Changed(ch notify.Channel) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changed = append(n.changed, ch)
}

func (n *fakeNotifier) Failure(op string, _ error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, op)
}

func (n *fakeNotifier) events() []notify.Channel {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Channel(nil), n.changed...)
}

func (n *fakeNotifier) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changed, n.failures = nil, nil
}

type fixture struct {
	svc      *Services
	store    *gormstore.Store
	notifier *fakeNotifier
	fs       afero.Fs
	ctx      context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st, err := gormstore.OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { _ = st.Close() })

	fs := afero.NewMemMapFs()
	n := &fakeNotifier{}
	return &fixture{
		svc:      New(st, n, media.New(fs, "/images")),
		store:    st,
		notifier: n,
		fs:       fs,
		ctx:      context.Background(),
	}
}

func (f *fixture) user(t *testing.T, name string, role models.Role) *models.User {
	t.Helper()
	_, err := f.svc.Users.EnsureUser(f.ctx, name, name+"@example.com", "123456789Abc!", role)
	require.NoError(t, err)
	u := f.svc.Users.Find(f.ctx, name)
	require.NotNil(t, u)
	return u
}

func (f *fixture) category(t *testing.T, name string) *models.Category {
	t.Helper()
	c, err := f.svc.Categories.Create(f.ctx, CategoryInput{Name: name})
	require.NoError(t, err)
	return c
}

func (f *fixture) product(t *testing.T, code, category string, price int64) *models.Product {
	t.Helper()
	p, err := f.svc.Products.Create(f.ctx, ProductInput{
		Code:            code,
		Category:        CategoryRef{Name: category},
		Name:            "Product " + code,
		Price:           decimal.NewFromInt(price),
		Tax:             decimal.NewFromInt(21),
		PublicSellPrice: decimal.NewFromInt(price).Mul(decimal.RequireFromString("1.21")),
		Stock:           5,
	})
	require.NoError(t, err)
	return p
}

func requireKind(t *testing.T, err error, kind error) *Error {
	t.Helper()
	require.ErrorIs(t, err, kind)
	var e *Error
	require.ErrorAs(t, err, &e)
	return e
}
