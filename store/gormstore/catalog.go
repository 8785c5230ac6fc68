package gormstore

import (
	"context"

	"github.com/junaidrashid-git/armory-api/models"
	"github.com/junaidrashid-git/armory-api/store"
	"gorm.io/gorm"
)

type categories struct {
	db *gorm.DB
}

func (r categories) List(ctx context.Context, f store.CategoryFilter, w store.Window) ([]models.Category, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Category{})
	if f.Name != "" {
		q = q.Where("name = ?", f.Name)
	}
	return page[models.Category](q, w, "created_at, id")
}

func (r categories) FindByName(ctx context.Context, name string) (*models.Category, error) {
	return first[models.Category](r.db.WithContext(ctx).Where("name = ?", name))
}

func (r categories) FindByID(ctx context.Context, id string) (*models.Category, error) {
	return first[models.Category](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r categories) Create(ctx context.Context, c *models.Category) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r categories) Update(ctx context.Context, c *models.Category) error {
	return updateByID(ctx, r.db, c, c.ID)
}

func (r categories) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &models.Category{}, id)
}

type products struct {
	db *gorm.DB
}

func (r products) List(ctx context.Context, f store.ProductFilter, w store.Window) ([]models.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})
	if f.Code != "" {
		q = q.Where("code = ?", f.Code)
	}
	if f.Name != "" {
		q = q.Where("name = ?", f.Name)
	}
	if f.CategoryID != "" {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Tax != nil {
		q = q.Where("tax = ?", *f.Tax)
	}
	return page[models.Product](q, w, "created_at, id")
}

func (r products) FindByCode(ctx context.Context, code string) (*models.Product, error) {
	return first[models.Product](r.db.WithContext(ctx).Where("code = ?", code))
}

func (r products) FindByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r products) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&n).Error
	return n, translate(err)
}

func (r products) Create(ctx context.Context, p *models.Product) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r products) Update(ctx context.Context, p *models.Product) error {
	return updateByID(ctx, r.db, p, p.ID)
}

func (r products) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &models.Product{}, id)
}
