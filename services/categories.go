package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/armory-api/models"
	"github.com/junaidrashid-git/armory-api/notify"
	"github.com/junaidrashid-git/armory-api/pagination"
	"github.com/junaidrashid-git/armory-api/store"
)

const entityCategory = "Category"

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

type CategoryRef struct {
	Name string `json:"name" binding:"required"`
}

type CategoryQuery struct {
	Name string `form:"name"`
}

type Categories struct {
	base
}

func (s *Categories) List(ctx context.Context, q CategoryQuery, page pagination.Request) (*pagination.Page[models.Category], error) {
	filter := store.CategoryFilter{Name: q.Name}
	p, err := pagination.Fetch(page, func(w store.Window) ([]models.Category, int64, error) {
		return s.store.Categories().List(ctx, filter, w)
	})
	if err != nil {
		return nil, s.readFailed("fetchCategories", entityCategory, err)
	}
	return p, nil
}

// Find resolves a category by its exact, case sensitive name. It returns nil
// when there is no match.
func (s *Categories) Find(ctx context.Context, name string) *models.Category {
	return lookup(ctx, s.base, "findCategory", func(ctx context.Context) (*models.Category, error) {
		return s.store.Categories().FindByName(ctx, name)
	})
}

func (s *Categories) findByID(ctx context.Context, id string) *models.Category {
	return lookup(ctx, s.base, "findCategory", func(ctx context.Context) (*models.Category, error) {
		return s.store.Categories().FindByID(ctx, id)
	})
}

func (s *Categories) Create(ctx context.Context, in CategoryInput) (*models.Category, error) {
	const op = "createCategory"
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalidf(entityCategory, "", "Category name is required")
	}
	if s.Find(ctx, name) != nil {
		return nil, conflict(entityCategory, name)
	}

	c := &models.Category{ID: uuid.NewString(), Name: name}
	if err := s.store.Categories().Create(ctx, c); err != nil {
		return nil, s.writeFailed(op, entityCategory, name, err)
	}

	s.log.Info().Str("op", op).Str("name", name).Msg("category created")
	s.notifier.Changed(notify.Categories)
	return c, nil
}

// Update renames the category called name.
func (s *Categories) Update(ctx context.Context, name string, in CategoryInput) (*models.Category, error) {
	const op = "updateCategory"
	newName := strings.TrimSpace(in.Name)
	if newName == "" {
		return nil, invalidf(entityCategory, name, "Category name is required")
	}

	c := s.Find(ctx, name)
	if c == nil {
		return nil, notFound(entityCategory, name)
	}
	if newName != name && s.Find(ctx, newName) != nil {
		return nil, conflict(entityCategory, newName)
	}

	c.Name = newName
	if err := s.store.Categories().Update(ctx, c); err != nil {
		return nil, s.writeFailed(op, entityCategory, newName, err)
	}

	s.log.Info().Str("op", op).Str("name", name).Str("new_name", newName).Msg("category updated")
	s.notifier.Changed(notify.Categories)
	return c, nil
}

// Delete removes an unreferenced category. Products are never cascaded.
func (s *Categories) Delete(ctx context.Context, name string) (bool, error) {
	const op = "deleteCategory"
	c := s.Find(ctx, name)
	if c == nil {
		return false, notFound(entityCategory, name)
	}

	n, err := s.store.Products().CountByCategory(ctx, c.ID)
	if err != nil {
		return false, s.writeFailed(op, entityCategory, name, err)
	}
	if n > 0 {
		return false, conflictf(entityCategory, name, "Category %s has %d products", name, n)
	}

	if err := s.store.Categories().Delete(ctx, c.ID); err != nil {
		return false, s.writeFailed(op, entityCategory, name, err)
	}

	s.log.Info().Str("op", op).Str("name", name).Msg("category deleted")
	s.notifier.Changed(notify.Categories)
	return true, nil
}

// EnsureCategory creates name unless it already exists.
func (s *Categories) EnsureCategory(ctx context.Context, name string) (bool, error) {
	if s.Find(ctx, name) != nil {
		return false, nil
	}
	if _, err := s.Create(ctx, CategoryInput{Name: name}); err != nil {
		return false, err
	}
	return true, nil
}
