package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bridal-film/backend/internal/authz"
)

type fakeStore struct {
	byID map[string]*Item

	inserted    []Item
	deleted     []string
	adjusted    map[string]int64
	permitted   []string
	updated     map[string]bson.M
	listedAll   bool
	listedOwner string
	publicPlain bool
	publicEmail string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byID:     map[string]*Item{},
		adjusted: map[string]int64{},
		updated:  map[string]bson.M{},
	}
}

func (f *fakeStore) ListPublic(context.Context) ([]Item, error) {
	f.publicPlain = true
	return []Item{}, nil
}

func (f *fakeStore) ListPublicWithLikes(_ context.Context, email string) ([]Item, error) {
	f.publicEmail = email
	return []Item{}, nil
}

func (f *fakeStore) ListAll(context.Context) ([]Item, error) {
	f.listedAll = true
	return []Item{}, nil
}

func (f *fakeStore) ListByOwner(_ context.Context, email string) ([]Item, error) {
	f.listedOwner = email
	return []Item{}, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (*Item, error) {
	it, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return it, nil
}

func (f *fakeStore) Insert(_ context.Context, it Item) (*mongo.InsertOneResult, error) {
	f.inserted = append(f.inserted, it)
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakeStore) UpdateContent(_ context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	f.updated[id] = fields
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeStore) AdjustLikes(_ context.Context, id string, delta int64) (*mongo.UpdateResult, error) {
	f.adjusted[id] += delta
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeStore) Permit(_ context.Context, id string) (*mongo.UpdateResult, error) {
	f.permitted = append(f.permitted, id)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	var n int64
	if _, ok := f.byID[id]; ok {
		delete(f.byID, id)
		n = 1
	}
	f.deleted = append(f.deleted, id)
	return &mongo.DeleteResult{DeletedCount: n}, nil
}

type fakeRoles struct {
	admins map[string]bool
}

func (f *fakeRoles) IsAdmin(_ context.Context, email string) (bool, error) {
	return f.admins[email], nil
}

func newService(store *fakeStore, admins ...string) *Service {
	m := map[string]bool{}
	for _, a := range admins {
		m[a] = true
	}
	return NewService(store, &fakeRoles{admins: m})
}

func TestCreateNonAdminForcesPendingAndOwner(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	// The body tries to smuggle in published state and a foreign owner.
	_, err := svc.Create(context.Background(), "bride@example.com", Item{
		Title:       "first dance",
		SharedEmail: "someone-else@example.com",
		Status:      StatusDone,
	})
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	got := store.inserted[0]
	assert.Equal(t, "bride@example.com", got.SharedEmail)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, "first dance", got.Title)
}

func TestCreateAdminPublishesImmediately(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, "boss@example.com")

	_, err := svc.Create(context.Background(), "boss@example.com", Item{Title: "veil shot"})
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	got := store.inserted[0]
	assert.Empty(t, got.Status)
	assert.Empty(t, got.SharedEmail)
}

func TestDashboardScoping(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, "boss@example.com")
	ctx := context.Background()

	_, err := svc.Dashboard(ctx, "boss@example.com")
	require.NoError(t, err)
	assert.True(t, store.listedAll)

	store = newFakeStore()
	svc = newService(store, "boss@example.com")
	_, err = svc.Dashboard(ctx, "bride@example.com")
	require.NoError(t, err)
	assert.False(t, store.listedAll)
	assert.Equal(t, "bride@example.com", store.listedOwner)
}

func TestPublicListDispatch(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)
	ctx := context.Background()

	_, err := svc.PublicList(ctx, "")
	require.NoError(t, err)
	assert.True(t, store.publicPlain)
	assert.Empty(t, store.publicEmail)

	_, err = svc.PublicList(ctx, "bride@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bride@example.com", store.publicEmail)
}

func TestDeleteOwnership(t *testing.T) {
	ctx := context.Background()

	store := newFakeStore()
	store.byID["a1"] = &Item{SharedEmail: "bride@example.com", Status: StatusPending}
	svc := newService(store)

	// A stranger may not delete someone else's item.
	_, err := svc.Delete(ctx, "stranger@example.com", "a1")
	assert.ErrorIs(t, err, authz.ErrForbidden)
	assert.Empty(t, store.deleted)

	// The owner may delete their own pending item.
	res, err := svc.Delete(ctx, "bride@example.com", "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)
}

func TestDeleteAdminBypassesOwnership(t *testing.T) {
	store := newFakeStore()
	store.byID["a1"] = &Item{SharedEmail: "bride@example.com"}
	svc := newService(store, "boss@example.com")

	res, err := svc.Delete(context.Background(), "boss@example.com", "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)
}

func TestDeleteMissingItemYieldsZeroCount(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	res, err := svc.Delete(context.Background(), "bride@example.com", "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)
}

func TestAdjustLikesDelta(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)
	ctx := context.Background()

	_, err := svc.AdjustLikes(ctx, "a1", true)
	require.NoError(t, err)
	_, err = svc.AdjustLikes(ctx, "a1", true)
	require.NoError(t, err)
	_, err = svc.AdjustLikes(ctx, "a1", false)
	require.NoError(t, err)

	assert.Equal(t, int64(1), store.adjusted["a1"])
}

func TestUpdateContentAdminOnly(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, "boss@example.com")
	ctx := context.Background()

	_, err := svc.UpdateContent(ctx, "bride@example.com", "a1", UpdateInput{Title: "new"})
	assert.ErrorIs(t, err, authz.ErrForbidden)
	assert.Empty(t, store.updated)

	_, err = svc.UpdateContent(ctx, "boss@example.com", "a1", UpdateInput{Title: "new"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"title": "new"}, store.updated["a1"])
}

func TestPermitAdminOnly(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, "boss@example.com")
	ctx := context.Background()

	_, err := svc.Permit(ctx, "bride@example.com", "a1")
	assert.ErrorIs(t, err, authz.ErrForbidden)
	assert.Empty(t, store.permitted)

	_, err = svc.Permit(ctx, "boss@example.com", "a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, store.permitted)
}
