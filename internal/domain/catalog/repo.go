package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("not found")

type Repo struct {
	sessions *mongo.Collection
}

func NewRepo(sessions *mongo.Collection) *Repo {
	return &Repo{sessions: sessions}
}

func (r *Repo) List(ctx context.Context) ([]Session, error) {
	cur, err := r.sessions.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var sessions []Session
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	if sessions == nil {
		sessions = []Session{}
	}
	return sessions, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Session, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var s Session
	if err := r.sessions.FindOne(ctx, bson.M{"_id": oid}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: session %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

func (r *Repo) Insert(ctx context.Context, s Session) (*mongo.InsertOneResult, error) {
	s.ID = primitive.NilObjectID

	res, err := r.sessions.InsertOne(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}
	return res, nil
}

func (r *Repo) Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.sessions.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return res, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.sessions.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}
	return res, nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid session id %q: %w", id, err)
	}
	return oid, nil
}
