package gormstore

import (
	"context"

	"github.com/junaidrashid-git/armory-api/models"
	"github.com/junaidrashid-git/armory-api/store"
	"gorm.io/gorm"
)

type users struct {
	db *gorm.DB
}

func (r users) FindByUserName(ctx context.Context, userName string) (*models.User, error) {
	return first[models.User](r.db.WithContext(ctx).Where("user_name = ?", userName))
}

func (r users) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r users) Create(ctx context.Context, u *models.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

type carts struct {
	db *gorm.DB
}

func (r carts) List(ctx context.Context, f store.CartFilter, w store.Window) ([]models.Cart, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Cart{})
	if f.ID != "" {
		q = q.Where("id = ?", f.ID)
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if len(f.ExcludeUserIDs) > 0 {
		q = q.Where("user_id NOT IN ?", f.ExcludeUserIDs)
	}
	return page[models.Cart](q, w, "created_at, id")
}

func (r carts) FindByID(ctx context.Context, id string) (*models.Cart, error) {
	return first[models.Cart](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r carts) FindByIDs(ctx context.Context, ids []string) ([]models.Cart, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []models.Cart
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r carts) Create(ctx context.Context, c *models.Cart) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r carts) Update(ctx context.Context, c *models.Cart) error {
	return updateByID(ctx, r.db, c, c.ID)
}

func (r carts) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &models.Cart{}, id)
}

type orders struct {
	db *gorm.DB
}

func (r orders) List(ctx context.Context, f store.OrderFilter, w store.Window) ([]models.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{})
	for column, value := range map[string]string{
		"id":          f.ID,
		"name":        f.Name,
		"second_name": f.SecondName,
		"email":       f.Email,
		"country":     f.Country,
		"address":     f.Address,
		"zip_code":    f.ZipCode,
	} {
		if value != "" {
			q = q.Where(column+" = ?", value)
		}
	}
	return page[models.Order](q, w, "created_at, id")
}

func (r orders) FindByID(ctx context.Context, id string) (*models.Order, error) {
	return first[models.Order](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r orders) FindByCartID(ctx context.Context, cartID string) (*models.Order, error) {
	return first[models.Order](r.db.WithContext(ctx).Where("cart_id = ?", cartID))
}

func (r orders) Create(ctx context.Context, o *models.Order) error {
	return translate(r.db.WithContext(ctx).Create(o).Error)
}

func (r orders) Update(ctx context.Context, o *models.Order) error {
	return updateByID(ctx, r.db, o, o.ID)
}

func (r orders) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &models.Order{}, id)
}
