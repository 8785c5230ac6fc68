package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/armory-api/models"
	"github.com/junaidrashid-git/armory-api/notify"
	"github.com/junaidrashid-git/armory-api/pagination"
	"github.com/junaidrashid-git/armory-api/store"
	"github.com/shopspring/decimal"
)

const (
	entityCart = "Cart"
	entityUser = "User"
)

type UserRef struct {
	UserName string `json:"userName" binding:"required"`
}

// CartInput lists products by code; Amounts[i] is the quantity of
// Products[i].
type CartInput struct {
	ID             string          `json:"id"`
	User           UserRef         `json:"user"`
	Products       []ProductRef    `json:"products" binding:"dive"`
	Amounts        []int           `json:"amounts"`
	TotalItems     int             `json:"totalItems"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	TotalPriceTaxs decimal.Decimal `json:"totalPriceTaxs"`
}

type CartQuery struct {
	ID   string `form:"id"`
	User string `form:"user"`
}

type Carts struct {
	base
	users    *Users
	products *Products
}

// List never shows the superadmin cart. If the superadmin cannot be looked up
// the listing fails. A user filter that does not resolve is ignored.
func (s *Carts) List(ctx context.Context, q CartQuery, page pagination.Request) (*pagination.Page[models.Cart], error) {
	const op = "fetchCarts"
	filter := store.CartFilter{ID: q.ID}
	root, err := s.store.Users().FindByUserName(ctx, models.SuperAdminUserName)
	switch {
	case err == nil:
		filter.ExcludeUserIDs = []string{root.ID}
	case !errors.Is(err, store.ErrNotFound):
		return nil, s.readFailed(op, entityCart, err)
	}
	if q.User != "" {
		if u := s.users.Find(ctx, q.User); u != nil {
			filter.UserID = u.ID
		}
	}

	p, err := pagination.Fetch(page, func(w store.Window) ([]models.Cart, int64, error) {
		return s.store.Carts().List(ctx, filter, w)
	})
	if err != nil {
		return nil, s.readFailed(op, entityCart, err)
	}
	s.populate(ctx, p.Items)
	return p, nil
}

func (s *Carts) Find(ctx context.Context, id string) *models.Cart {
	c := s.find(ctx, id)
	if c == nil {
		return nil
	}
	carts := []models.Cart{*c}
	s.populate(ctx, carts)
	return &carts[0]
}

func (s *Carts) find(ctx context.Context, id string) *models.Cart {
	return lookup(ctx, s.base, "findCart", func(ctx context.Context) (*models.Cart, error) {
		return s.store.Carts().FindByID(ctx, id)
	})
}

// populate fills User and Products from their ids, keeping line order.
// Products deleted since the cart was written are left out.
func (s *Carts) populate(ctx context.Context, carts []models.Cart) {
	if len(carts) == 0 {
		return
	}
	var userIDs, productIDs []string
	for _, c := range carts {
		userIDs = append(userIDs, c.UserID)
		productIDs = append(productIDs, c.ProductIDs...)
	}

	usersByID := make(map[string]*models.User)
	if found, err := s.store.Users().FindByIDs(ctx, unique(userIDs)); err != nil {
		s.notifier.Failure("populateCarts", err)
	} else {
		for i := range found {
			usersByID[found[i].ID] = &found[i]
		}
	}

	productsByID := make(map[string]models.Product)
	if found, err := s.store.Products().FindByIDs(ctx, unique(productIDs)); err != nil {
		s.notifier.Failure("populateCarts", err)
	} else {
		s.products.populate(ctx, found)
		for _, p := range found {
			productsByID[p.ID] = p
		}
	}

	for i := range carts {
		carts[i].User = usersByID[carts[i].UserID]
		carts[i].Products = make([]models.Product, 0, len(carts[i].ProductIDs))
		for _, id := range carts[i].ProductIDs {
			if p, ok := productsByID[id]; ok {
				carts[i].Products = append(carts[i].Products, p)
			}
		}
	}
}

// resolve checks the input and turns its references into records. Nothing is
// written when it fails.
func (s *Carts) resolve(ctx context.Context, key string, in CartInput) (*models.User, []models.Product, error) {
	if len(in.Amounts) != len(in.Products) {
		return nil, nil, invalidf(entityCart, key,
			"Cart %s has %d products and %d amounts", key, len(in.Products), len(in.Amounts))
	}
	user := s.users.Find(ctx, in.User.UserName)
	if user == nil {
		return nil, nil, notFound(entityUser, in.User.UserName)
	}
	products := make([]models.Product, 0, len(in.Products))
	for _, ref := range in.Products {
		p := s.products.Find(ctx, ref.Code)
		if p == nil {
			return nil, nil, notFound(entityProduct, ref.Code)
		}
		products = append(products, *p)
	}
	return user, products, nil
}

// Create stores a cart for an existing user. A caller supplied id must be
// unused.
func (s *Carts) Create(ctx context.Context, in CartInput) (*models.Cart, error) {
	const op = "createCart"
	user, products, err := s.resolve(ctx, in.ID, in)
	if err != nil {
		return nil, err
	}
	if in.ID != "" && s.find(ctx, in.ID) != nil {
		return nil, conflict(entityCart, in.ID)
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	c := &models.Cart{ID: id}
	fill(c, in, user, products)
	if err := s.store.Carts().Create(ctx, c); err != nil {
		return nil, s.writeFailed(op, entityCart, id, err)
	}

	s.log.Info().Str("op", op).Str("id", id).Str("user", user.UserName).Msg("cart created")
	s.notifier.Changed(notify.Carts)
	return c, nil
}

// Update overwrites every mutable field of cart id.
func (s *Carts) Update(ctx context.Context, id string, in CartInput) (*models.Cart, error) {
	const op = "updateCart"
	user, products, err := s.resolve(ctx, id, in)
	if err != nil {
		return nil, err
	}
	c := s.find(ctx, id)
	if c == nil {
		return nil, notFound(entityCart, id)
	}

	fill(c, in, user, products)
	if err := s.store.Carts().Update(ctx, c); err != nil {
		return nil, s.writeFailed(op, entityCart, id, err)
	}

	s.log.Info().Str("op", op).Str("id", id).Msg("cart updated")
	s.notifier.Changed(notify.Carts)
	return c, nil
}

func (s *Carts) Delete(ctx context.Context, id string) (bool, error) {
	const op = "deleteCart"
	c := s.find(ctx, id)
	if c == nil {
		return false, notFound(entityCart, id)
	}
	if err := s.store.Carts().Delete(ctx, c.ID); err != nil {
		return false, s.writeFailed(op, entityCart, id, err)
	}

	s.log.Info().Str("op", op).Str("id", id).Msg("cart deleted")
	s.notifier.Changed(notify.Carts)
	return true, nil
}

func fill(c *models.Cart, in CartInput, user *models.User, products []models.Product) {
	c.UserID = user.ID
	c.User = user
	c.ProductIDs = make([]string, len(products))
	for i, p := range products {
		c.ProductIDs[i] = p.ID
	}
	c.Products = products
	c.Amounts = append([]int{}, in.Amounts...)
	c.TotalItems = in.TotalItems
	c.TotalPrice = in.TotalPrice
	c.TotalPriceTaxs = in.TotalPriceTaxs
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
