package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repo struct {
	users *mongo.Collection
}

func NewRepo(users *mongo.Collection) *Repo {
	return &Repo{users: users}
}

// Upsert creates the profile on first sign-in. A repeat sign-in matches the
// existing document and writes nothing.
func (r *Repo) Upsert(ctx context.Context, u User) (*mongo.UpdateResult, error) {
	u.ID = primitive.NilObjectID

	res, err := r.users.UpdateOne(ctx,
		bson.M{"email": u.Email},
		bson.M{"$setOnInsert": u},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return res, nil
}

func (r *Repo) List(ctx context.Context) ([]User, error) {
	cur, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var users []User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

func (r *Repo) Exists(ctx context.Context, email string) (bool, error) {
	n, err := r.users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return n > 0, nil
}

// RoleOf reports the stored role for an email. An unknown email is an empty
// role, never an error.
func (r *Repo) RoleOf(ctx context.Context, email string) (string, error) {
	var u User
	err := r.users.FindOne(ctx, bson.M{"email": email},
		options.FindOne().SetProjection(bson.M{"role": 1})).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve role: %w", err)
	}
	return u.Role, nil
}

func (r *Repo) UpdateRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	res, err := r.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return res, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", id, err)
	}

	res, err := r.users.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return res, nil
}
