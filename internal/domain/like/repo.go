package like

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("not found")

func IsErrNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

type Repo struct {
	likes *mongo.Collection
}

func NewRepo(likes *mongo.Collection) *Repo {
	return &Repo{likes: likes}
}

func (r *Repo) Insert(ctx context.Context, l Like) (*mongo.InsertOneResult, error) {
	l.ID = primitive.NilObjectID

	res, err := r.likes.InsertOne(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("failed to insert like: %w", err)
	}
	return res, nil
}

func (r *Repo) ListByEmail(ctx context.Context, email string) ([]Like, error) {
	cur, err := r.likes.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	var likes []Like
	if err := cur.All(ctx, &likes); err != nil {
		return nil, fmt.Errorf("failed to decode likes: %w", err)
	}
	if likes == nil {
		likes = []Like{}
	}
	return likes, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Like, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var l Like
	if err := r.likes.FindOne(ctx, bson.M{"_id": oid}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: like %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get like: %w", err)
	}
	return &l, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.likes.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete like: %w", err)
	}
	return res, nil
}

func (r *Repo) CountByEmail(ctx context.Context, email string) (int64, error) {
	n, err := r.likes.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return n, nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid like id %q: %w", id, err)
	}
	return oid, nil
}
