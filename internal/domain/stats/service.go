package stats

import (
	"context"
	"fmt"

	"bridal-film/backend/internal/domain/payment"
)

// No contacts collection exists; the dashboard still renders the tile.
const contactCount = 3

// LikeCounter counts like records per caller email.
type LikeCounter interface {
	CountByEmail(ctx context.Context, email string) (int64, error)
}

// BookingCounter counts booking records per caller email.
type BookingCounter interface {
	CountByEmail(ctx context.Context, email string) (int64, error)
}

// PaymentSource exposes the payment reads the dashboards need.
type PaymentSource interface {
	CountByEmail(ctx context.Context, email string) (int64, error)
	Revenue(ctx context.Context) (float64, error)
	PerSession(ctx context.Context) ([]payment.SessionStat, error)
}

type Service struct {
	likes    LikeCounter
	payments PaymentSource
	bookings BookingCounter
}

func NewService(likes LikeCounter, payments PaymentSource, bookings BookingCounter) *Service {
	return &Service{likes: likes, payments: payments, bookings: bookings}
}

// Admin combines total revenue with the per-session breakdown.
func (s *Service) Admin(ctx context.Context) (*AdminStats, error) {
	revenue, err := s.payments.Revenue(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := s.payments.PerSession(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminStats{Revenue: revenue, Sessions: sessions}, nil
}

// PerUser counts the caller's likes, payments and bookings.
func (s *Service) PerUser(ctx context.Context, email string) (*UserStats, error) {
	likes, err := s.likes.CountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	payments, err := s.payments.CountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	bookings, err := s.bookings.CountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	return &UserStats{
		Likes:    likes,
		Payments: payments,
		Bookings: bookings,
		Contact:  contactCount,
	}, nil
}
