package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bridal-film/backend/internal/config"
)

// Store holds the single long-lived client and the collection handles the
// handlers work against. It is built once in main and passed down.
type Store struct {
	Client *mongo.Client

	Items    *mongo.Collection
	Users    *mongo.Collection
	Likes    *mongo.Collection
	Sessions *mongo.Collection
	Bookings *mongo.Collection
	Payments *mongo.Collection
}

func Connect(ctx context.Context, cfg config.Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)

	return &Store{
		Client:   client,
		Items:    db.Collection("items"),
		Users:    db.Collection("users"),
		Likes:    db.Collection("like-items"),
		Sessions: db.Collection("sessions"),
		Bookings: db.Collection("bookings"),
		Payments: db.Collection("payments"),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
