// Package mongostore implements store.Store on a MongoDB database.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/junaidrashid-git/armory-api/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	categoriesCollection = "categories"
	productsCollection   = "products"
	usersCollection      = "users"
	cartsCollection      = "carts"
	ordersCollection     = "orders"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ store.Store = (*Store)(nil)

// Open connects and pings within a 10 second budget.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetRegistry(Registry()))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongostore: ping: %w", err)
	}
	return &Store{client: client, db: client.Database(database)}, nil
}

func (s *Store) Categories() store.Categories {
	return categories{c: s.db.Collection(categoriesCollection)}
}

func (s *Store) Products() store.Products {
	return products{c: s.db.Collection(productsCollection)}
}

func (s *Store) Users() store.Users {
	return users{c: s.db.Collection(usersCollection)}
}

func (s *Store) Carts() store.Carts {
	return carts{c: s.db.Collection(cartsCollection)}
}

func (s *Store) Orders() store.Orders {
	return orders{c: s.db.Collection(ordersCollection)}
}

// Migrate creates the indexes the repositories rely on. Collections are
// created implicitly on first insert.
func (s *Store) Migrate(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		categoriesCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		productsCollection: {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		usersCollection: {
			{Keys: bson.D{{Key: "userName", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		cartsCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}}},
		},
		ordersCollection: {
			{Keys: bson.D{{Key: "cart", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}
	for name, models := range indexes {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongostore: indexes on %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}

// Drop removes the whole database. Used by tests.
func (s *Store) Drop(ctx context.Context) error {
	return s.db.Drop(ctx)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	default:
		return err
	}
}

func list[T any](ctx context.Context, c *mongo.Collection, filter bson.M, w store.Window) ([]T, int64, error) {
	total, err := c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	if w.Offset > 0 {
		opts.SetSkip(int64(w.Offset))
	}
	if w.Limit > 0 {
		opts.SetLimit(int64(w.Limit))
	}

	cursor, err := c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var items []T
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func findOne[T any](ctx context.Context, c *mongo.Collection, filter bson.M) (*T, error) {
	var out T
	if err := c.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func findMany[T any](ctx context.Context, c *mongo.Collection, ids []string) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func insert(ctx context.Context, c *mongo.Collection, doc any) error {
	_, err := c.InsertOne(ctx, doc)
	return translate(err)
}

func replace(ctx context.Context, c *mongo.Collection, id string, doc any) error {
	res, err := c.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func remove(ctx context.Context, c *mongo.Collection, id string) error {
	res, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// stamp fills the timestamps gorm would maintain on the SQL side.
func stamp(createdAt, updatedAt *time.Time, creating bool) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	if creating && createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}
