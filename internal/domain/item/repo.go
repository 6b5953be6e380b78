package item

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repo struct {
	items *mongo.Collection
}

func NewRepo(items *mongo.Collection) *Repo {
	return &Repo{items: items}
}

// ListPublic returns every item that is not pending approval.
func (r *Repo) ListPublic(ctx context.Context) ([]Item, error) {
	cur, err := r.items.Find(ctx, bson.M{"status": bson.M{"$ne": StatusPending}})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	var items []Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// ListPublicWithLikes left-joins the like-items collection so each item
// carries isLiked/likedItemId for the given caller. At most one like record
// per (item, email) pair is expected; the first one wins.
func (r *Repo) ListPublicWithLikes(ctx context.Context, email string) ([]Item, error) {
	cur, err := r.items.Aggregate(ctx, publicWithLikesPipeline(email))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate items: %w", err)
	}

	var items []Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func publicWithLikesPipeline(email string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "status", Value: bson.D{{Key: "$ne", Value: StatusPending}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "like-items"},
			{Key: "let", Value: bson.D{
				{Key: "stringId", Value: bson.D{{Key: "$toString", Value: "$_id"}}},
			}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{
						{Key: "$and", Value: bson.A{
							bson.D{{Key: "$eq", Value: bson.A{"$$stringId", "$itemId"}}},
							bson.D{{Key: "$eq", Value: bson.A{"$email", email}}},
						}},
					}},
				}}},
				bson.D{{Key: "$addFields", Value: bson.D{
					{Key: "likedItemId", Value: "$_id"},
					{Key: "isLiked", Value: true},
				}}},
				bson.D{{Key: "$project", Value: bson.D{
					{Key: "likedItemId", Value: 1},
					{Key: "isLiked", Value: 1},
				}}},
			}},
			{Key: "as", Value: "likedRecords"},
		}}},
		{{Key: "$replaceRoot", Value: bson.D{
			{Key: "newRoot", Value: bson.D{
				{Key: "$mergeObjects", Value: bson.A{
					bson.D{{Key: "$arrayElemAt", Value: bson.A{"$likedRecords", 0}}},
					"$$ROOT",
				}},
			}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "likedRecords", Value: 0}}}},
	}
}

func (r *Repo) ListAll(ctx context.Context) ([]Item, error) {
	cur, err := r.items.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	var items []Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (r *Repo) ListByOwner(ctx context.Context, email string) ([]Item, error) {
	cur, err := r.items.Find(ctx, bson.M{"sharedEmail": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	var items []Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Item, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var it Item
	if err := r.items.FindOne(ctx, bson.M{"_id": oid}).Decode(&it); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: item %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &it, nil
}

func (r *Repo) Insert(ctx context.Context, it Item) (*mongo.InsertOneResult, error) {
	res, err := r.items.InsertOne(ctx, it)
	if err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}
	return res, nil
}

func (r *Repo) UpdateContent(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.items.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return res, nil
}

// AdjustLikes changes the like counter with an atomic increment issued to the
// store. A missing counter starts from zero; a missing item matches nothing.
func (r *Repo) AdjustLikes(ctx context.Context, id string, delta int64) (*mongo.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.items.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"likes": delta}})
	if err != nil {
		return nil, fmt.Errorf("failed to adjust likes: %w", err)
	}
	return res, nil
}

// Permit publishes a pending item. Idempotent: repeating it leaves the item
// in "done" with no further effect.
func (r *Repo) Permit(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.items.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": StatusDone}})
	if err != nil {
		return nil, fmt.Errorf("failed to permit item: %w", err)
	}
	return res, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.items.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}
	return res, nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid item id %q: %w", id, err)
	}
	return oid, nil
}
