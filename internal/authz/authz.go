// Package authz holds the ownership predicate and the role resolver that
// gate every mutating endpoint. Handlers run these before touching the store.
package authz

import (
	"context"
	"errors"
)

const RoleAdmin = "admin"

var ErrForbidden = errors.New("forbidden access")

func IsErrForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// RequireSelf is the single owner/self check: the verified identity must
// equal the email carried by the request or the target resource.
func RequireSelf(verifiedEmail, targetEmail string) error {
	if targetEmail == "" || verifiedEmail != targetEmail {
		return ErrForbidden
	}
	return nil
}

// RoleStore reports the stored role for an email. A missing user is reported
// as an empty role, not an error.
type RoleStore interface {
	RoleOf(ctx context.Context, email string) (string, error)
}

// Resolver looks up the caller's stored role fresh on every request.
type Resolver struct {
	users RoleStore
}

func NewResolver(users RoleStore) *Resolver {
	return &Resolver{users: users}
}

func (r *Resolver) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := r.users.RoleOf(ctx, email)
	if err != nil {
		return false, err
	}
	return role == RoleAdmin, nil
}

func (r *Resolver) RequireAdmin(ctx context.Context, email string) error {
	admin, err := r.IsAdmin(ctx, email)
	if err != nil {
		return err
	}
	if !admin {
		return ErrForbidden
	}
	return nil
}
