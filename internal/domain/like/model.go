package like

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like joins an item to the user who liked it. ItemID is the string form of
// the item's object id; the public-listing join compares it as a string.
type Like struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ItemID string             `bson:"itemId" json:"itemId"`
	Email  string             `bson:"email" json:"email"`
}
