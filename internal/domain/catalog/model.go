package catalog

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is a service package clients can book: shoot type plus price.
type Session struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SessionType string             `bson:"sessionType" json:"sessionType"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

type UpdateInput struct {
	SessionType string   `json:"sessionType,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

func (in UpdateInput) Fields() bson.M {
	fields := bson.M{}
	if in.SessionType != "" {
		fields["sessionType"] = in.SessionType
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if in.ImageURL != "" {
		fields["imageUrl"] = in.ImageURL
	}
	return fields
}
