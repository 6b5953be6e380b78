package stats

import "bridal-film/backend/internal/domain/payment"

// UserStats are the per-caller counts shown on the dashboard. Contact has no
// backing collection; it is a fixed placeholder.
type UserStats struct {
	Likes    int64 `json:"likes"`
	Payments int64 `json:"payments"`
	Bookings int64 `json:"bookings"`
	Contact  int64 `json:"contact"`
}

type AdminStats struct {
	Revenue  float64               `json:"revenue"`
	Sessions []payment.SessionStat `json:"sessions"`
}
