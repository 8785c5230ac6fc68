// Package store defines the persistence contract shared by the SQL and
// document backends.
package store

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/armory-api/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned by single-record lookups and deletes that match nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate key")
)

// Window selects a slice of a listing. A zero Limit means no limit.
type Window struct {
	Offset int
	Limit  int
}

type CategoryFilter struct {
	Name string
}

type ProductFilter struct {
	Code       string
	Name       string
	CategoryID string
	Tax        *decimal.Decimal
}

type CartFilter struct {
	ID             string
	UserID         string
	ExcludeUserIDs []string
}

// OrderFilter fields are exact matches; empty fields are ignored.
type OrderFilter struct {
	ID         string
	Name       string
	SecondName string
	Email      string
	Country    string
	Address    string
	ZipCode    string
}

type Categories interface {
	List(ctx context.Context, f CategoryFilter, w Window) ([]models.Category, int64, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	FindByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id string) error
}

type Products interface {
	List(ctx context.Context, f ProductFilter, w Window) ([]models.Product, int64, error)
	FindByCode(ctx context.Context, code string) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id string) error
}

type Users interface {
	FindByUserName(ctx context.Context, userName string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)
	Create(ctx context.Context, u *models.User) error
}

type Carts interface {
	List(ctx context.Context, f CartFilter, w Window) ([]models.Cart, int64, error)
	FindByID(ctx context.Context, id string) (*models.Cart, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Cart, error)
	Create(ctx context.Context, c *models.Cart) error
	Update(ctx context.Context, c *models.Cart) error
	Delete(ctx context.Context, id string) error
}

type Orders interface {
	List(ctx context.Context, f OrderFilter, w Window) ([]models.Order, int64, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindByCartID(ctx context.Context, cartID string) (*models.Order, error)
	Create(ctx context.Context, o *models.Order) error
	Update(ctx context.Context, o *models.Order) error
	Delete(ctx context.Context, id string) error
}

// Store groups the repositories of one backend.
type Store interface {
	Categories() Categories
	Products() Products
	Users() Users
	Carts() Carts
	Orders() Orders

	// Migrate creates tables, collections and unique indexes.
	Migrate(ctx context.Context) error
	Close() error
}
