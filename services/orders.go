package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/armory-api/models"
	"github.com/junaidrashid-git/armory-api/notify"
	"github.com/junaidrashid-git/armory-api/pagination"
	"github.com/junaidrashid-git/armory-api/store"
)

const entityOrder = "Order"

type CartRef struct {
	ID string `json:"id" binding:"required"`
}

type OrderInput struct {
	Cart       CartRef `json:"cart"`
	PaidOut    bool    `json:"paidOut"`
	Name       string  `json:"name" binding:"required"`
	SecondName string  `json:"secondName" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone" binding:"required"`
	Country    string  `json:"country" binding:"required"`
	Address    string  `json:"address" binding:"required"`
	ZipCode    string  `json:"zipCode" binding:"required"`
}

// OrderQuery fields are exact matches.
type OrderQuery struct {
	ID         string `form:"id"`
	Name       string `form:"name"`
	SecondName string `form:"secondName"`
	Email      string `form:"email"`
	Country    string `form:"country"`
	Address    string `form:"address"`
	ZipCode    string `form:"zipCode"`
}

type Orders struct {
	base
	carts *Carts
}

func (s *Orders) List(ctx context.Context, q OrderQuery, page pagination.Request) (*pagination.Page[models.Order], error) {
	filter := store.OrderFilter{
		ID:         q.ID,
		Name:       q.Name,
		SecondName: q.SecondName,
		Email:      q.Email,
		Country:    q.Country,
		Address:    q.Address,
		ZipCode:    q.ZipCode,
	}
	p, err := pagination.Fetch(page, func(w store.Window) ([]models.Order, int64, error) {
		return s.store.Orders().List(ctx, filter, w)
	})
	if err != nil {
		return nil, s.readFailed("fetchOrders", entityOrder, err)
	}
	s.populate(ctx, p.Items)
	return p, nil
}

func (s *Orders) populate(ctx context.Context, orders []models.Order) {
	if len(orders) == 0 {
		return
	}
	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.CartID
	}
	carts, err := s.store.Carts().FindByIDs(ctx, unique(ids))
	if err != nil {
		s.notifier.Failure("populateOrders", err)
		return
	}
	s.carts.populate(ctx, carts)

	byID := make(map[string]*models.Cart, len(carts))
	for i := range carts {
		byID[carts[i].ID] = &carts[i]
	}
	for i := range orders {
		orders[i].Cart = byID[orders[i].CartID]
	}
}

func (s *Orders) Find(ctx context.Context, id string) *models.Order {
	o := s.find(ctx, id)
	if o == nil {
		return nil
	}
	orders := []models.Order{*o}
	s.populate(ctx, orders)
	return &orders[0]
}

func (s *Orders) find(ctx context.Context, id string) *models.Order {
	return lookup(ctx, s.base, "findOrder", func(ctx context.Context) (*models.Order, error) {
		return s.store.Orders().FindByID(ctx, id)
	})
}

// orderOf returns the order placed on cartID, if any.
func (s *Orders) orderOf(ctx context.Context, cartID string) *models.Order {
	return lookup(ctx, s.base, "findOrderByCart", func(ctx context.Context) (*models.Order, error) {
		return s.store.Orders().FindByCartID(ctx, cartID)
	})
}

// Create places an order on an existing cart. A cart takes one order.
func (s *Orders) Create(ctx context.Context, in OrderInput) (*models.Order, error) {
	const op = "createOrder"
	cart := s.carts.Find(ctx, in.Cart.ID)
	if cart == nil {
		return nil, notFound(entityCart, in.Cart.ID)
	}
	if s.orderOf(ctx, cart.ID) != nil {
		return nil, conflictf(entityOrder, cart.ID, "Order for cart %s already exist", cart.ID)
	}

	o := &models.Order{ID: uuid.NewString()}
	assign(o, in, cart)
	if err := s.store.Orders().Create(ctx, o); err != nil {
		return nil, s.orderWriteFailed(op, o, err)
	}

	s.log.Info().Str("op", op).Str("id", o.ID).Str("cart", cart.ID).Msg("order created")
	s.notifier.Changed(notify.Orders)
	return o, nil
}

// Update overwrites every field of order id, re-checking the cart reference.
func (s *Orders) Update(ctx context.Context, id string, in OrderInput) (*models.Order, error) {
	const op = "updateOrder"
	o := s.find(ctx, id)
	if o == nil {
		return nil, notFound(entityOrder, id)
	}
	cart := s.carts.Find(ctx, in.Cart.ID)
	if cart == nil {
		return nil, notFound(entityCart, in.Cart.ID)
	}
	if other := s.orderOf(ctx, cart.ID); other != nil && other.ID != o.ID {
		return nil, conflictf(entityOrder, cart.ID, "Order for cart %s already exist", cart.ID)
	}

	assign(o, in, cart)
	if err := s.store.Orders().Update(ctx, o); err != nil {
		return nil, s.orderWriteFailed(op, o, err)
	}

	s.log.Info().Str("op", op).Str("id", id).Msg("order updated")
	s.notifier.Changed(notify.Orders)
	return o, nil
}

func (s *Orders) Delete(ctx context.Context, id string) (bool, error) {
	const op = "deleteOrder"
	o := s.find(ctx, id)
	if o == nil {
		return false, notFound(entityOrder, id)
	}
	if err := s.store.Orders().Delete(ctx, o.ID); err != nil {
		return false, s.writeFailed(op, entityOrder, id, err)
	}

	s.log.Info().Str("op", op).Str("id", id).Msg("order deleted")
	s.notifier.Changed(notify.Orders)
	return true, nil
}

// orderWriteFailed reports a lost race on the cart uniqueness constraint the
// same way as the pre-check does.
func (s *Orders) orderWriteFailed(op string, o *models.Order, err error) error {
	werr := s.writeFailed(op, entityOrder, o.ID, err)
	if errors.Is(werr, ErrConflict) {
		return conflictf(entityOrder, o.CartID, "Order for cart %s already exist", o.CartID)
	}
	return werr
}

func assign(o *models.Order, in OrderInput, cart *models.Cart) {
	o.CartID = cart.ID
	o.Cart = cart
	o.PaidOut = in.PaidOut
	o.Name = in.Name
	o.SecondName = in.SecondName
	o.Email = in.Email
	o.Phone = in.Phone
	o.Country = in.Country
	o.Address = in.Address
	o.ZipCode = in.ZipCode
}
