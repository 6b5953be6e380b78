package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaidItem is one purchased session inside a payment record. The per-session
// revenue statistic unwinds these.
type PaidItem struct {
	SessionType string  `bson:"sessionType" json:"sessionType"`
	Price       float64 `bson:"price" json:"price"`
}

// SessionStat is the revenue and sale count for one session type, produced
// by unwinding the paid items across every payment record.
type SessionStat struct {
	SessionType string  `bson:"_id" json:"sessionType"`
	Total       float64 `bson:"total" json:"total"`
	Count       int64   `bson:"count" json:"count"`
}

// Payment is a completed transaction record written after the gateway
// confirms the charge.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Items         []PaidItem         `bson:"items,omitempty" json:"items,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
