package mongostore

import (
	"context"

	"github.com/junaidrashid-git/armory-api/models"
	"github.com/junaidrashid-git/armory-api/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type categories struct {
	c *mongo.Collection
}

func (r categories) List(ctx context.Context, f store.CategoryFilter, w store.Window) ([]models.Category, int64, error) {
	filter := bson.M{}
	if f.Name != "" {
		filter["name"] = f.Name
	}
	return list[models.Category](ctx, r.c, filter, w)
}

func (r categories) FindByName(ctx context.Context, name string) (*models.Category, error) {
	return findOne[models.Category](ctx, r.c, bson.M{"name": name})
}

func (r categories) FindByID(ctx context.Context, id string) (*models.Category, error) {
	return findOne[models.Category](ctx, r.c, bson.M{"_id": id})
}

func (r categories) Create(ctx context.Context, c *models.Category) error {
	stamp(&c.CreatedAt, &c.UpdatedAt, true)
	return insert(ctx, r.c, c)
}

func (r categories) Update(ctx context.Context, c *models.Category) error {
	stamp(&c.CreatedAt, &c.UpdatedAt, false)
	return replace(ctx, r.c, c.ID, c)
}

func (r categories) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.c, id)
}

type products struct {
	c *mongo.Collection
}

func (r products) List(ctx context.Context, f store.ProductFilter, w store.Window) ([]models.Product, int64, error) {
	filter := bson.M{}
	if f.Code != "" {
		filter["code"] = f.Code
	}
	if f.Name != "" {
		filter["name"] = f.Name
	}
	if f.CategoryID != "" {
		filter["category"] = f.CategoryID
	}
	if f.Tax != nil {
		filter["tax"] = *f.Tax
	}
	return list[models.Product](ctx, r.c, filter, w)
}

func (r products) FindByCode(ctx context.Context, code string) (*models.Product, error) {
	return findOne[models.Product](ctx, r.c, bson.M{"code": code})
}

func (r products) FindByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	return findMany[models.Product](ctx, r.c, ids)
}

func (r products) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{"category": categoryID})
}

func (r products) Create(ctx context.Context, p *models.Product) error {
	stamp(&p.CreatedAt, &p.UpdatedAt, true)
	return insert(ctx, r.c, p)
}

func (r products) Update(ctx context.Context, p *models.Product) error {
	stamp(&p.CreatedAt, &p.UpdatedAt, false)
	return replace(ctx, r.c, p.ID, p)
}

func (r products) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.c, id)
}

type users struct {
	c *mongo.Collection
}

func (r users) FindByUserName(ctx context.Context, userName string) (*models.User, error) {
	return findOne[models.User](ctx, r.c, bson.M{"userName": userName})
}

func (r users) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	return findMany[models.User](ctx, r.c, ids)
}

func (r users) Create(ctx context.Context, u *models.User) error {
	stamp(&u.CreatedAt, &u.UpdatedAt, true)
	return insert(ctx, r.c, u)
}

type carts struct {
	c *mongo.Collection
}

func (r carts) List(ctx context.Context, f store.CartFilter, w store.Window) ([]models.Cart, int64, error) {
	filter := bson.M{}
	if f.ID != "" {
		filter["_id"] = f.ID
	}
	user := bson.M{}
	if f.UserID != "" {
		user["$eq"] = f.UserID
	}
	if len(f.ExcludeUserIDs) > 0 {
		user["$nin"] = f.ExcludeUserIDs
	}
	if len(user) > 0 {
		filter["user"] = user
	}
	return list[models.Cart](ctx, r.c, filter, w)
}

func (r carts) FindByID(ctx context.Context, id string) (*models.Cart, error) {
	return findOne[models.Cart](ctx, r.c, bson.M{"_id": id})
}

func (r carts) FindByIDs(ctx context.Context, ids []string) ([]models.Cart, error) {
	return findMany[models.Cart](ctx, r.c, ids)
}

func (r carts) Create(ctx context.Context, c *models.Cart) error {
	stamp(&c.CreatedAt, &c.UpdatedAt, true)
	return insert(ctx, r.c, c)
}

func (r carts) Update(ctx context.Context, c *models.Cart) error {
	stamp(&c.CreatedAt, &c.UpdatedAt, false)
	return replace(ctx, r.c, c.ID, c)
}

func (r carts) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.c, id)
}

type orders struct {
	c *mongo.Collection
}

func (r orders) List(ctx context.Context, f store.OrderFilter, w store.Window) ([]models.Order, int64, error) {
	filter := bson.M{}
	for field, value := range map[string]string{
		"_id":        f.ID,
		"name":       f.Name,
		"secondName": f.SecondName,
		"email":      f.Email,
		"country":    f.Country,
		"address":    f.Address,
		"zipCode":    f.ZipCode,
	} {
		if value != "" {
			filter[field] = value
		}
	}
	return list[models.Order](ctx, r.c, filter, w)
}

func (r orders) FindByID(ctx context.Context, id string) (*models.Order, error) {
	return findOne[models.Order](ctx, r.c, bson.M{"_id": id})
}

func (r orders) FindByCartID(ctx context.Context, cartID string) (*models.Order, error) {
	return findOne[models.Order](ctx, r.c, bson.M{"cart": cartID})
}

func (r orders) Create(ctx context.Context, o *models.Order) error {
	stamp(&o.CreatedAt, &o.UpdatedAt, true)
	return insert(ctx, r.c, o)
}

func (r orders) Update(ctx context.Context, o *models.Order) error {
	stamp(&o.CreatedAt, &o.UpdatedAt, false)
	return replace(ctx, r.c, o.ID, o)
}

func (r orders) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.c, id)
}
