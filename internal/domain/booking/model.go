package booking

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a reservation keyed by the owner's email.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	SessionType string             `bson:"sessionType" json:"sessionType"`
	Price       float64            `bson:"price" json:"price"`
	Date        string             `bson:"date,omitempty" json:"date,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
}

type UpdateInput struct {
	SessionType string   `json:"sessionType,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Date        string   `json:"date,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Status      string   `json:"status,omitempty"`
}

func (in UpdateInput) Fields() bson.M {
	fields := bson.M{}
	if in.SessionType != "" {
		fields["sessionType"] = in.SessionType
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Date != "" {
		fields["date"] = in.Date
	}
	if in.Phone != "" {
		fields["phone"] = in.Phone
	}
	if in.Status != "" {
		fields["status"] = in.Status
	}
	return fields
}
