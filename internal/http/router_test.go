package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bridal-film/backend/internal/authz"
	"bridal-film/backend/internal/config"
	"bridal-film/backend/internal/domain/item"
	"bridal-film/backend/internal/domain/like"
	"bridal-film/backend/internal/domain/user"
	"bridal-film/backend/internal/token"
)

type memItemStore struct {
	inserted  []item.Item
	adjusted  map[string]int64
	permitted map[string]bool
}

func (m *memItemStore) ListPublic(context.Context) ([]item.Item, error) {
	return []item.Item{}, nil
}

func (m *memItemStore) ListPublicWithLikes(context.Context, string) ([]item.Item, error) {
	return []item.Item{}, nil
}

func (m *memItemStore) ListAll(context.Context) ([]item.Item, error) {
	return []item.Item{}, nil
}

func (m *memItemStore) ListByOwner(context.Context, string) ([]item.Item, error) {
	return []item.Item{}, nil
}

func (m *memItemStore) Get(context.Context, string) (*item.Item, error) {
	return nil, item.ErrNotFound
}

func (m *memItemStore) Insert(_ context.Context, it item.Item) (*mongo.InsertOneResult, error) {
	m.inserted = append(m.inserted, it)
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *memItemStore) UpdateContent(context.Context, string, bson.M) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

func (m *memItemStore) AdjustLikes(_ context.Context, id string, delta int64) (*mongo.UpdateResult, error) {
	if m.adjusted == nil {
		m.adjusted = map[string]int64{}
	}
	m.adjusted[id] += delta
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memItemStore) Permit(_ context.Context, id string) (*mongo.UpdateResult, error) {
	if m.permitted == nil {
		m.permitted = map[string]bool{}
	}
	res := &mongo.UpdateResult{MatchedCount: 1}
	if !m.permitted[id] {
		m.permitted[id] = true
		res.ModifiedCount = 1
	}
	return res, nil
}

func (m *memItemStore) Delete(context.Context, string) (*mongo.DeleteResult, error) {
	return &mongo.DeleteResult{}, nil
}

// memUserStore backs both the user endpoints and role resolution, so a role
// written through one path is visible through the other.
type memUserStore struct {
	users map[string]user.User
}

func (m *memUserStore) Upsert(_ context.Context, u user.User) (*mongo.UpdateResult, error) {
	if _, ok := m.users[u.Email]; ok {
		return &mongo.UpdateResult{MatchedCount: 1}, nil
	}
	m.users[u.Email] = u
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: primitive.NewObjectID()}, nil
}

func (m *memUserStore) List(context.Context) ([]user.User, error) {
	out := []user.User{}
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserStore) Exists(_ context.Context, email string) (bool, error) {
	_, ok := m.users[email]
	return ok, nil
}

func (m *memUserStore) UpdateRole(_ context.Context, email, role string) (*mongo.UpdateResult, error) {
	u, ok := m.users[email]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	u.Role = role
	m.users[email] = u
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memUserStore) Delete(context.Context, string) (*mongo.DeleteResult, error) {
	return &mongo.DeleteResult{}, nil
}

func (m *memUserStore) RoleOf(_ context.Context, email string) (string, error) {
	return m.users[email].Role, nil
}

type memLikeStore struct {
	likes map[string]like.Like
}

func (m *memLikeStore) Insert(_ context.Context, l like.Like) (*mongo.InsertOneResult, error) {
	id := primitive.NewObjectID()
	l.ID = id
	m.likes[id.Hex()] = l
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

func (m *memLikeStore) ListByEmail(_ context.Context, email string) ([]like.Like, error) {
	out := []like.Like{}
	for _, l := range m.likes {
		if l.Email == email {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memLikeStore) Get(_ context.Context, id string) (*like.Like, error) {
	l, ok := m.likes[id]
	if !ok {
		return nil, like.ErrNotFound
	}
	return &l, nil
}

func (m *memLikeStore) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	if _, ok := m.likes[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(m.likes, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type fixture struct {
	items  *memItemStore
	users  *memUserStore
	likes  *memLikeStore
	router nethttp.Handler
	tokens *token.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	items := &memItemStore{}
	users := &memUserStore{users: map[string]user.User{
		"boss@example.com": {Email: "boss@example.com", Role: authz.RoleAdmin},
	}}
	likes := &memLikeStore{likes: map[string]like.Like{}}

	tokens := token.NewManager("test-secret")
	roles := authz.NewResolver(users)

	router := NewRouter(RouterDeps{
		Cfg:      config.Config{},
		Tokens:   tokens,
		Roles:    roles,
		ItemSvc:  item.NewService(items, roles),
		UserRepo: users,
		LikeRepo: likes,
	})
	return &fixture{items: items, users: users, likes: likes, router: router, tokens: tokens}
}

func bearer(t *testing.T, tokens *token.Manager, email string) string {
	t.Helper()
	signed, err := tokens.Issue(email)
	require.NoError(t, err)
	return "Bearer " + signed
}

func (f *fixture) do(t *testing.T, method, target, authEmail, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if authEmail != "" {
		req.Header.Set("Authorization", bearer(t, f.tokens, authEmail))
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestLiveness(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "GET", "/", "", "")
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "running")
}

func TestDashboardRequiresToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "GET", "/items/dashboard?email=a@x.com", "", "")
	assert.Equal(t, 401, rec.Code)

	req := httptest.NewRequest("GET", "/items/dashboard?email=a@x.com", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, 403, rec.Code)
}

func TestDashboardRejectsForeignEmail(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "GET", "/items/dashboard?email=other@example.com", "bride@example.com", "")
	assert.Equal(t, 403, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["error"])
}

func TestCreateItemForcesPendingForNonAdmin(t *testing.T) {
	f := newFixture(t)

	body := `{"title":"veil shot","status":"done","sharedEmail":"other@example.com"}`
	rec := f.do(t, "POST", "/items?email=bride@example.com", "bride@example.com", body)

	require.Equal(t, 201, rec.Code)
	require.Len(t, f.items.inserted, 1)
	assert.Equal(t, item.StatusPending, f.items.inserted[0].Status)
	assert.Equal(t, "bride@example.com", f.items.inserted[0].SharedEmail)
}

func TestCreateItemAdminPublishes(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "POST", "/items?email=boss@example.com", "boss@example.com", `{"title":"veil shot"}`)

	require.Equal(t, 201, rec.Code)
	require.Len(t, f.items.inserted, 1)
	assert.Empty(t, f.items.inserted[0].Status)
	assert.Empty(t, f.items.inserted[0].SharedEmail)
}

func TestLikeAdjustRejectsForeignBodyEmail(t *testing.T) {
	f := newFixture(t)

	body := `{"isLike":true,"email":"other@example.com"}`
	rec := f.do(t, "PATCH", "/item/like/64b000000000000000000001", "bride@example.com", body)

	assert.Equal(t, 403, rec.Code)
	assert.Empty(t, f.items.adjusted)
}

func TestLikeAdjustIncrements(t *testing.T) {
	f := newFixture(t)

	body := `{"isLike":true,"email":"bride@example.com"}`
	rec := f.do(t, "PATCH", "/item/like/64b000000000000000000001", "bride@example.com", body)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, int64(1), f.items.adjusted["64b000000000000000000001"])
}

func TestPermitIsIdempotent(t *testing.T) {
	f := newFixture(t)
	target := "/item/permit/64b000000000000000000001?email=boss@example.com"

	rec := f.do(t, "PATCH", target, "boss@example.com", "")
	require.Equal(t, 200, rec.Code)

	var first struct{ MatchedCount, ModifiedCount int64 }
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.Equal(t, int64(1), first.MatchedCount)
	assert.Equal(t, int64(1), first.ModifiedCount)

	rec = f.do(t, "PATCH", target, "boss@example.com", "")
	require.Equal(t, 200, rec.Code)

	var second struct{ MatchedCount, ModifiedCount int64 }
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, int64(1), second.MatchedCount)
	assert.Equal(t, int64(0), second.ModifiedCount)
	assert.True(t, f.items.permitted["64b000000000000000000001"])
}

func TestLikeCreateRejectsForeignEmailBeforeWrite(t *testing.T) {
	f := newFixture(t)

	body := `{"itemId":"64b000000000000000000001","email":"other@example.com"}`
	rec := f.do(t, "POST", "/likes", "bride@example.com", body)

	assert.Equal(t, 403, rec.Code)
	assert.Empty(t, f.likes.likes)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["error"])
}

func TestLikeCreateAndListForSelf(t *testing.T) {
	f := newFixture(t)

	body := `{"itemId":"64b000000000000000000001","email":"bride@example.com"}`
	rec := f.do(t, "POST", "/likes", "bride@example.com", body)
	require.Equal(t, 201, rec.Code)
	require.Len(t, f.likes.likes, 1)

	rec = f.do(t, "GET", "/likes?email=bride@example.com", "bride@example.com", "")
	require.Equal(t, 200, rec.Code)

	var listed []like.Like
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "bride@example.com", listed[0].Email)
}

func TestLikeDeleteForeignRequiresAdmin(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "POST", "/likes", "bride@example.com",
		`{"itemId":"64b000000000000000000001","email":"bride@example.com"}`)
	require.Equal(t, 201, rec.Code)

	var id string
	for k := range f.likes.likes {
		id = k
	}

	rec = f.do(t, "DELETE", "/likes/"+id, "stranger@example.com", "")
	assert.Equal(t, 403, rec.Code)
	assert.Len(t, f.likes.likes, 1)

	rec = f.do(t, "DELETE", "/likes/"+id, "boss@example.com", "")
	assert.Equal(t, 200, rec.Code)
	assert.Empty(t, f.likes.likes)
}

func TestSignUpThenIsUser(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "GET", "/isUser?email=bride@example.com", "", "")
	require.Equal(t, 200, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["isUser"])

	rec = f.do(t, "POST", "/users", "", `{"email":"bride@example.com","name":"Bride"}`)
	require.Equal(t, 200, rec.Code)

	rec = f.do(t, "GET", "/isUser?email=bride@example.com", "", "")
	require.Equal(t, 200, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["isUser"])
}

func TestSignUpStripsSelfAssertedRole(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "POST", "/users", "", `{"email":"sneak@example.com","role":"admin"}`)
	require.Equal(t, 200, rec.Code)
	assert.Empty(t, f.users.users["sneak@example.com"].Role)

	rec = f.do(t, "GET", "/users/isAdmin?email=sneak@example.com", "sneak@example.com", "")
	require.Equal(t, 200, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["admin"])
}

func TestJWTSignInIssuesVerifiableToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "POST", "/jwt-signIn", "", `{"email":"bride@example.com"}`)
	require.Equal(t, 200, rec.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	claims, err := f.tokens.Verify(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "bride@example.com", claims.Email)
}

func TestIsAdminReportsAdminRole(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "GET", "/users/isAdmin?email=boss@example.com", "boss@example.com", "")
	require.Equal(t, 200, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["admin"])
}
