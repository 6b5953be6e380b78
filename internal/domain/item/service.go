package item

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bridal-film/backend/internal/authz"
)

type Store interface {
	ListPublic(ctx context.Context) ([]Item, error)
	ListPublicWithLikes(ctx context.Context, email string) ([]Item, error)
	ListAll(ctx context.Context) ([]Item, error)
	ListByOwner(ctx context.Context, email string) ([]Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Insert(ctx context.Context, it Item) (*mongo.InsertOneResult, error)
	UpdateContent(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error)
	AdjustLikes(ctx context.Context, id string, delta int64) (*mongo.UpdateResult, error)
	Permit(ctx context.Context, id string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type Roles interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type Service struct {
	store Store
	roles Roles
}

func NewService(store Store, roles Roles) *Service {
	return &Service{store: store, roles: roles}
}

// PublicList is the unauthenticated listing. With a caller email it runs the
// liked-items join so the frontend can render like state per item.
func (s *Service) PublicList(ctx context.Context, email string) ([]Item, error) {
	if email == "" {
		return s.store.ListPublic(ctx)
	}
	return s.store.ListPublicWithLikes(ctx, email)
}

// Dashboard scopes the listing by role: admins see everything, everyone else
// sees only their own submissions.
func (s *Service) Dashboard(ctx context.Context, email string) ([]Item, error) {
	admin, err := s.roles.IsAdmin(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin {
		return s.store.ListAll(ctx)
	}
	return s.store.ListByOwner(ctx, email)
}

// Create branches on role: an admin submission publishes as given, while a
// non-admin submission is tagged with the caller's email and held pending,
// overriding whatever the body carried.
func (s *Service) Create(ctx context.Context, callerEmail string, it Item) (*mongo.InsertOneResult, error) {
	admin, err := s.roles.IsAdmin(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	if !admin {
		it.SharedEmail = callerEmail
		it.Status = StatusPending
	}
	it.ID = primitive.NilObjectID
	return s.store.Insert(ctx, it)
}

func (s *Service) UpdateContent(ctx context.Context, callerEmail, id string, in UpdateInput) (*mongo.UpdateResult, error) {
	admin, err := s.roles.IsAdmin(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, authz.ErrForbidden
	}
	return s.store.UpdateContent(ctx, id, in.Fields())
}

func (s *Service) Permit(ctx context.Context, callerEmail, id string) (*mongo.UpdateResult, error) {
	admin, err := s.roles.IsAdmin(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, authz.ErrForbidden
	}
	return s.store.Permit(ctx, id)
}

func (s *Service) AdjustLikes(ctx context.Context, id string, isLike bool) (*mongo.UpdateResult, error) {
	delta := int64(1)
	if !isLike {
		delta = -1
	}
	return s.store.AdjustLikes(ctx, id, delta)
}

// Delete removes an item for its owner or an admin. A missing item falls
// through to the store delete and surfaces as a zero deleted count.
func (s *Service) Delete(ctx context.Context, callerEmail, id string) (*mongo.DeleteResult, error) {
	admin, err := s.roles.IsAdmin(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	if !admin {
		it, err := s.store.Get(ctx, id)
		if err != nil && !IsErrNotFound(err) {
			return nil, err
		}
		if it != nil && it.SharedEmail != callerEmail {
			return nil, authz.ErrForbidden
		}
	}
	return s.store.Delete(ctx, id)
}
