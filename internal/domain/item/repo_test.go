package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPublicWithLikesPipeline(t *testing.T) {
	p := publicWithLikesPipeline("bride@example.com")
	require.Len(t, p, 4)

	// Pending items are filtered before the join runs.
	match := p[0][0]
	require.Equal(t, "$match", match.Key)
	assert.Equal(t, bson.D{
		{Key: "status", Value: bson.D{{Key: "$ne", Value: StatusPending}}},
	}, match.Value)

	lookup := p[1][0]
	require.Equal(t, "$lookup", lookup.Key)
	stage := lookup.Value.(bson.D)
	assert.Equal(t, bson.E{Key: "from", Value: "like-items"}, stage[0])

	// The join matches on the stringified item id and the caller's email.
	sub := stage[2]
	require.Equal(t, "pipeline", sub.Key)
	subMatch := sub.Value.(bson.A)[0].(bson.D)[0]
	require.Equal(t, "$match", subMatch.Key)
	and := subMatch.Value.(bson.D)[0].Value.(bson.D)[0].Value.(bson.A)
	assert.Equal(t, bson.D{{Key: "$eq", Value: bson.A{"$$stringId", "$itemId"}}}, and[0])
	assert.Equal(t, bson.D{{Key: "$eq", Value: bson.A{"$email", "bride@example.com"}}}, and[1])

	// First like record wins on merge; the join scratch field is dropped.
	replaceRoot := p[2][0]
	assert.Equal(t, "$replaceRoot", replaceRoot.Key)
	project := p[3][0]
	assert.Equal(t, "$project", project.Key)
	assert.Equal(t, bson.D{{Key: "likedRecords", Value: 0}}, project.Value)
}

func TestUpdateInputFields(t *testing.T) {
	in := UpdateInput{Title: "golden hour", Category: "outdoor"}
	assert.Equal(t, bson.M{"title": "golden hour", "category": "outdoor"}, in.Fields())

	assert.Empty(t, UpdateInput{}.Fields())
}
