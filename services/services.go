// Package services holds the catalog, cart and order workflows: reference
// resolution, existence and conflict checks, the write, and the change
// notification that follows it.
package services

import (
	"context"
	"errors"
	"io"

	"github.com/junaidrashid-git/armory-api/notify"
	"github.com/junaidrashid-git/armory-api/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Notifier receives change events and failures. Both calls return at once.
type Notifier interface {
	Changed(ch notify.Channel)
	Failure(op string, err error)
}

// ImageStore keeps one image per product code.
type ImageStore interface {
	Save(code string, r io.Reader) (string, error)
	Remove(code string) error
}

// Services bundles every workflow over one store.
type Services struct {
	Categories *Categories
	Products   *Products
	Users      *Users
	Carts      *Carts
	Orders     *Orders
}

func New(st store.Store, n Notifier, images ImageStore) *Services {
	b := base{store: st, notifier: n, log: log.Logger}
	categories := &Categories{base: b}
	products := &Products{base: b, categories: categories, images: images}
	users := &Users{base: b}
	carts := &Carts{base: b, users: users, products: products}
	return &Services{
		Categories: categories,
		Products:   products,
		Users:      users,
		Carts:      carts,
		Orders:     &Orders{base: b, carts: carts},
	}
}

type base struct {
	store    store.Store
	notifier Notifier
	log      zerolog.Logger
}

// writeFailed turns a store error on a write into the error returned to the
// caller. Duplicates become Conflict and vanished rows NotFound; anything
// else is alerted and reported as a persistence failure.
func (b base) writeFailed(op, entity, key string, err error) error {
	switch {
	case errors.Is(err, store.ErrDuplicate):
		b.log.Warn().Err(err).Str("op", op).Str("key", key).Msg("uniqueness violation")
		return conflict(entity, key)
	case errors.Is(err, store.ErrNotFound):
		return notFound(entity, key)
	default:
		b.notifier.Failure(op, err)
		return persistence(entity, key, err)
	}
}

// readFailed alerts a failed listing.
func (b base) readFailed(op, entity string, err error) error {
	b.notifier.Failure(op, err)
	return persistence(entity, "", err)
}

// lookup runs a single-record read. A missing record is (nil, nil); any other
// failure is alerted and also treated as absent.
func lookup[T any](ctx context.Context, b base, op string, find func(context.Context) (*T, error)) *T {
	v, err := find(ctx)
	if err == nil {
		return v
	}
	if !errors.Is(err, store.ErrNotFound) {
		b.notifier.Failure(op, err)
	}
	return nil
}
