package payment

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repo struct {
	payments *mongo.Collection
}

func NewRepo(payments *mongo.Collection) *Repo {
	return &Repo{payments: payments}
}

func (r *Repo) ListAll(ctx context.Context) ([]Payment, error) {
	cur, err := r.payments.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	var payments []Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	if payments == nil {
		payments = []Payment{}
	}
	return payments, nil
}

func (r *Repo) ListByEmail(ctx context.Context, email string) ([]Payment, error) {
	cur, err := r.payments.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	var payments []Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	if payments == nil {
		payments = []Payment{}
	}
	return payments, nil
}

func (r *Repo) Insert(ctx context.Context, p Payment) (*mongo.InsertOneResult, error) {
	p.ID = primitive.NilObjectID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	res, err := r.payments.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}
	return res, nil
}

func (r *Repo) CountByEmail(ctx context.Context, email string) (int64, error) {
	n, err := r.payments.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return n, nil
}

// Revenue sums the price of every payment record.
func (r *Repo) Revenue(ctx context.Context) (float64, error) {
	cur, err := r.payments.Aggregate(ctx, revenuePipeline())
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode revenue: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// PerSession unwinds each payment's items and groups revenue and sale counts
// by session type.
func (r *Repo) PerSession(ctx context.Context) ([]SessionStat, error) {
	cur, err := r.payments.Aggregate(ctx, sessionStatPipeline())
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate session stats: %w", err)
	}

	var rows []SessionStat
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode session stats: %w", err)
	}
	if rows == nil {
		rows = []SessionStat{}
	}
	return rows, nil
}

func revenuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
}

func sessionStatPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$items.sessionType"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$items.price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}
