package item

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// Item is a media post. Non-admin submissions carry SharedEmail and sit in
// "pending" until an admin permits them; admin submissions publish as-is.
type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	SharedEmail string             `bson:"sharedEmail,omitempty" json:"sharedEmail,omitempty"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
	Likes       int64              `bson:"likes,omitempty" json:"likes,omitempty"`

	// Filled by the liked-items join on the public listing; absent otherwise.
	IsLiked     bool                `bson:"isLiked,omitempty" json:"isLiked,omitempty"`
	LikedItemID *primitive.ObjectID `bson:"likedItemId,omitempty" json:"likedItemId,omitempty"`
}

type UpdateInput struct {
	Title       string `json:"title,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

func (in UpdateInput) Fields() bson.M {
	fields := bson.M{}
	if in.Title != "" {
		fields["title"] = in.Title
	}
	if in.ImageURL != "" {
		fields["imageUrl"] = in.ImageURL
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if in.Category != "" {
		fields["category"] = in.Category
	}
	return fields
}
