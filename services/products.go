package services

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/armory-api/models"
	"github.com/junaidrashid-git/armory-api/notify"
	"github.com/junaidrashid-git/armory-api/pagination"
	"github.com/junaidrashid-git/armory-api/store"
	"github.com/shopspring/decimal"
)

const entityProduct = "Product"

type ProductInput struct {
	Code            string          `json:"code" binding:"required"`
	Category        CategoryRef     `json:"category"`
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Tax             decimal.Decimal `json:"tax"`
	PublicSellPrice decimal.Decimal `json:"publicSellPrice"`
	Stock           int             `json:"stock" binding:"gte=0"`
}

type ProductRef struct {
	Code string `json:"code" binding:"required"`
}

type ProductQuery struct {
	Code     string `form:"code"`
	Name     string `form:"name"`
	Category string `form:"category"`
	Tax      string `form:"tax"`
}

type Products struct {
	base
	categories *Categories
	images     ImageStore
}

// List filters are exact matches. A category name that does not resolve is
// ignored.
func (s *Products) List(ctx context.Context, q ProductQuery, page pagination.Request) (*pagination.Page[models.Product], error) {
	filter := store.ProductFilter{Code: q.Code, Name: q.Name}
	if q.Category != "" {
		if c := s.categories.Find(ctx, q.Category); c != nil {
			filter.CategoryID = c.ID
		}
	}
	if q.Tax != "" {
		tax, err := decimal.NewFromString(q.Tax)
		if err != nil {
			return nil, invalidf(entityProduct, q.Tax, "Tax %s is not a number", q.Tax)
		}
		filter.Tax = &tax
	}

	p, err := pagination.Fetch(page, func(w store.Window) ([]models.Product, int64, error) {
		return s.store.Products().List(ctx, filter, w)
	})
	if err != nil {
		return nil, s.readFailed("fetchProducts", entityProduct, err)
	}
	s.populate(ctx, p.Items)
	return p, nil
}

// populate fills Product.Category in place.
func (s *Products) populate(ctx context.Context, items []models.Product) {
	seen := make(map[string]*models.Category)
	for i := range items {
		id := items[i].CategoryID
		c, ok := seen[id]
		if !ok {
			c = s.categories.findByID(ctx, id)
			seen[id] = c
		}
		items[i].Category = c
	}
}

// Find resolves a product by code. The code is matched as given: stored codes
// are lowercase, so callers must pass a lowercase key.
func (s *Products) Find(ctx context.Context, code string) *models.Product {
	p := lookup(ctx, s.base, "findProduct", func(ctx context.Context) (*models.Product, error) {
		return s.store.Products().FindByCode(ctx, code)
	})
	if p != nil {
		p.Category = s.categories.findByID(ctx, p.CategoryID)
	}
	return p
}

func (s *Products) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	const op = "createProduct"
	if strings.TrimSpace(in.Code) == "" {
		return nil, invalidf(entityProduct, "", "Product code is required")
	}
	if s.Find(ctx, in.Code) != nil {
		return nil, conflict(entityProduct, in.Code)
	}
	category := s.categories.Find(ctx, in.Category.Name)
	if category == nil {
		return nil, notFound(entityCategory, in.Category.Name)
	}

	p := &models.Product{ID: uuid.NewString(), Code: normalizeCode(in.Code)}
	apply(p, in, category)
	if err := s.store.Products().Create(ctx, p); err != nil {
		return nil, s.writeFailed(op, entityProduct, p.Code, err)
	}

	s.log.Info().Str("op", op).Str("code", p.Code).Msg("product created")
	s.notifier.Changed(notify.Products)
	return p, nil
}

// Update overwrites every field of the product except its code.
func (s *Products) Update(ctx context.Context, code string, in ProductInput) (*models.Product, error) {
	const op = "updateProduct"
	p := s.Find(ctx, code)
	if p == nil {
		return nil, notFound(entityProduct, code)
	}
	category := s.categories.Find(ctx, in.Category.Name)
	if category == nil {
		return nil, notFound(entityCategory, in.Category.Name)
	}

	apply(p, in, category)
	if err := s.store.Products().Update(ctx, p); err != nil {
		return nil, s.writeFailed(op, entityProduct, code, err)
	}

	s.log.Info().Str("op", op).Str("code", code).Msg("product updated")
	s.notifier.Changed(notify.Products)
	return p, nil
}

func (s *Products) Delete(ctx context.Context, code string) (bool, error) {
	const op = "deleteProduct"
	p := s.Find(ctx, code)
	if p == nil {
		return false, notFound(entityProduct, code)
	}
	if err := s.store.Products().Delete(ctx, p.ID); err != nil {
		return false, s.writeFailed(op, entityProduct, code, err)
	}
	if p.Image != "" && s.images != nil {
		if err := s.images.Remove(p.Code); err != nil {
			s.log.Warn().Err(err).Str("op", op).Str("code", code).Msg("image not removed")
		}
	}

	s.log.Info().Str("op", op).Str("code", code).Msg("product deleted")
	s.notifier.Changed(notify.Products)
	return true, nil
}

// SetImage stores r as the image of the product and records its file name.
func (s *Products) SetImage(ctx context.Context, code string, r io.Reader) (bool, error) {
	const op = "setImageToProduct"
	p := s.Find(ctx, code)
	if p == nil {
		return false, notFound(entityProduct, code)
	}

	name, err := s.images.Save(p.Code, r)
	if err != nil {
		s.notifier.Failure(op, err)
		return false, persistence(entityProduct, code, err)
	}

	p.Image = name
	if err := s.store.Products().Update(ctx, p); err != nil {
		return false, s.writeFailed(op, entityProduct, code, err)
	}

	s.log.Info().Str("op", op).Str("code", code).Str("image", name).Msg("product image stored")
	s.notifier.Changed(notify.Products)
	return true, nil
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func apply(p *models.Product, in ProductInput, category *models.Category) {
	p.CategoryID = category.ID
	p.Category = category
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Tax = in.Tax
	p.PublicSellPrice = in.PublicSellPrice
	p.Stock = in.Stock
}
