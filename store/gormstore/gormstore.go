// Package gormstore implements store.Store on top of gorm.
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/armory-api/models"
	"github.com/junaidrashid-git/armory-api/store"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// Open connects to postgres, mysql or sqlite. An empty sqlite dsn opens a
// private in-memory database.
func Open(driver, dsn string) (*Store, error) {
	var (
		dialector gorm.Dialector
		memory    bool
	)
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		if dsn == "" {
			dsn = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
			memory = true
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("gormstore: unsupported driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if memory {
		// One connection keeps the database alive and serializes writers.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return New(db), nil
}

// OpenInMemory is Open("sqlite", "").
func OpenInMemory() (*Store, error) {
	return Open("sqlite", "")
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) Categories() store.Categories { return categories{db: s.db} }
func (s *Store) Products() store.Products     { return products{db: s.db} }
func (s *Store) Users() store.Users           { return users{db: s.db} }
func (s *Store) Carts() store.Carts           { return carts{db: s.db} }
func (s *Store) Orders() store.Orders         { return orders{db: s.db} }

func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.User{},
		&models.Cart{},
		&models.Order{},
	)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// translate maps gorm errors onto the store sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	default:
		return err
	}
}

// page applies the window and returns the page plus the unwindowed count.
func page[T any](q *gorm.DB, w store.Window, order string) ([]T, int64, error) {
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	paged := q.Order(order)
	if w.Offset > 0 {
		paged = paged.Offset(w.Offset)
	}
	if w.Limit > 0 {
		paged = paged.Limit(w.Limit)
	}

	var items []T
	if err := paged.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// deleteByID removes one row and reports store.ErrNotFound when none matched.
func deleteByID(ctx context.Context, db *gorm.DB, model any, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// updateByID overwrites every column of an existing row. It never inserts and
// reports store.ErrNotFound when the row is gone.
func updateByID(ctx context.Context, db *gorm.DB, model any, id string) error {
	db = db.WithContext(ctx)
	res := db.Model(model).Select("*").Where("id = ?", id).Updates(model)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// mysql counts changed rows only, so an unchanged row also lands here.
	var n int64
	if err := db.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return translate(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func first[T any](q *gorm.DB) (*T, error) {
	var out T
	if err := q.First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}
