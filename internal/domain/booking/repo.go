package booking

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
	bookings *mongo.Collection
}

func NewRepo(bookings *mongo.Collection) *Repo {
	return &Repo{bookings: bookings}
}

func (r *Repo) ListAll(ctx context.Context) ([]Booking, error) {
	cur, err := r.bookings.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	var bookings []Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	if bookings == nil {
		bookings = []Booking{}
	}
	return bookings, nil
}

func (r *Repo) ListByEmail(ctx context.Context, email string) ([]Booking, error) {
	cur, err := r.bookings.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	var bookings []Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	if bookings == nil {
		bookings = []Booking{}
	}
	return bookings, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Booking, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var b Booking
	if err := r.bookings.FindOne(ctx, bson.M{"_id": oid}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: booking %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

func (r *Repo) Insert(ctx context.Context, b Booking) (*mongo.InsertOneResult, error) {
	b.ID = primitive.NilObjectID

	res, err := r.bookings.InsertOne(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}
	return res, nil
}

func (r *Repo) Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.bookings.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return res, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.bookings.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}
	return res, nil
}

func (r *Repo) CountByEmail(ctx context.Context, email string) (int64, error) {
	n, err := r.bookings.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return n, nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid booking id %q: %w", id, err)
	}
	return oid, nil
}
