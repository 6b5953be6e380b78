package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"bridal-film/backend/internal/authctx"
	"bridal-film/backend/internal/authz"
	"bridal-film/backend/internal/config"
	"bridal-film/backend/internal/domain/booking"
	"bridal-film/backend/internal/domain/catalog"
	"bridal-film/backend/internal/domain/item"
	"bridal-film/backend/internal/domain/like"
	"bridal-film/backend/internal/domain/payment"
	"bridal-film/backend/internal/domain/stats"
	"bridal-film/backend/internal/domain/user"
	"bridal-film/backend/internal/httpjson"
	"bridal-film/backend/internal/middleware"
	"bridal-film/backend/internal/token"
)

// The router depends on narrow views of each domain store so handlers can be
// exercised against in-memory fakes. The mongo-backed repos satisfy these.
type UserStore interface {
	Upsert(ctx context.Context, u user.User) (*mongo.UpdateResult, error)
	List(ctx context.Context) ([]user.User, error)
	Exists(ctx context.Context, email string) (bool, error)
	UpdateRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type LikeStore interface {
	Insert(ctx context.Context, l like.Like) (*mongo.InsertOneResult, error)
	ListByEmail(ctx context.Context, email string) ([]like.Like, error)
	Get(ctx context.Context, id string) (*like.Like, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type CatalogStore interface {
	List(ctx context.Context) ([]catalog.Session, error)
	Get(ctx context.Context, id string) (*catalog.Session, error)
	Insert(ctx context.Context, s catalog.Session) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type BookingStore interface {
	ListAll(ctx context.Context) ([]booking.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]booking.Booking, error)
	Get(ctx context.Context, id string) (*booking.Booking, error)
	Insert(ctx context.Context, b booking.Booking) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type PaymentStore interface {
	ListAll(ctx context.Context) ([]payment.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]payment.Payment, error)
	Insert(ctx context.Context, p payment.Payment) (*mongo.InsertOneResult, error)
}

type StatsService interface {
	PerUser(ctx context.Context, email string) (*stats.UserStats, error)
	Admin(ctx context.Context) (*stats.AdminStats, error)
}

type RouterDeps struct {
	Cfg         config.Config
	Logger      *zap.Logger
	Tokens      *token.Manager
	Roles       *authz.Resolver
	ItemSvc     *item.Service
	UserRepo    UserStore
	LikeRepo    LikeStore
	CatalogRepo CatalogStore
	BookingRepo BookingStore
	PaymentRepo PaymentStore
	StripeSvc   *payment.StripeService
	StatsSvc    StatsService
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	if d.Logger != nil {
		r.Use(middleware.RequestLogger(d.Logger))
	}
	r.Use(middleware.CORS(d.Cfg.AllowedOrigins))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("bridal film api is running"))
	})

	// ===== Public item listing (optional like-join per caller email) =====
	r.Get("/items", func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		out, err := d.ItemSvc.PublicList(r.Context(), email)
		if err != nil {
			status, msg := mapError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, out)
	})

	// ===== User existence check =====
	r.Get("/isUser", func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		exists, err := d.UserRepo.Exists(r.Context(), email)
		if err != nil {
			status, msg := mapError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, map[string]any{"isUser": exists})
	})

	// ===== First sign-in profile upsert =====
	r.Post("/users", func(w http.ResponseWriter, r *http.Request) {
		var in user.User
		if err := httpjson.Read(r, &in); err != nil || in.Email == "" {
			Fail(w, 400, "invalid user payload")
			return
		}
		// Roles are granted by an admin afterwards, never self-asserted.
		in.Role = ""

		out, err := d.UserRepo.Upsert(r.Context(), in)
		if err != nil {
			status, msg := mapError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, out)
	})

	// ===== Session catalog reads =====
	r.Get("/sessions", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.CatalogRepo.List(r.Context())
		if err != nil {
			status, msg := mapError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Get("/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.CatalogRepo.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				WriteJSON(w, 200, nil)
				return
			}
			status, msg := mapError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, out)
	})

	// ===== Token sign-in =====
	r.Post("/jwt-signIn", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email string `json:"email"`
		}
		if err := httpjson.Read(r, &in); err != nil || in.Email == "" {
			Fail(w, 400, "email required")
			return
		}

		t, err := d.Tokens.Issue(in.Email)
		if err != nil {
			status, msg := mapError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, map[string]any{"token": t})
	})

	// Token-gated routes
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.WithAuth(d.Tokens))

		// ===== Items =====
		pr.Get("/items/dashboard", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			email := r.URL.Query().Get("email")
			if err := authz.RequireSelf(au.Email, email); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}

			out, err := d.ItemSvc.Dashboard(r.Context(), email)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/items", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			if err := authz.RequireSelf(au.Email, r.URL.Query().Get("email")); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}

			var in item.Item
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.ItemSvc.Create(r.Context(), au.Email, in)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Patch("/item/update/{id}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			if err := authz.RequireSelf(au.Email, r.URL.Query().Get("email")); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}

			var in item.UpdateInput
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.ItemSvc.UpdateContent(r.Context(), au.Email, chi.URLParam(r, "id"), in)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Patch("/item/like/{id}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())

			var in struct {
				IsLike bool   `json:"isLike"`
				Email  string `json:"email"`
			}
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := authz.RequireSelf(au.Email, in.Email); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}

			out, err := d.ItemSvc.AdjustLikes(r.Context(), chi.URLParam(r, "id"), in.IsLike)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Patch("/item/permit/{id}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			if err := authz.RequireSelf(au.Email, r.URL.Query().Get("email")); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}

			out, err := d.ItemSvc.Permit(r.Context(), au.Email, chi.URLParam(r, "id"))
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			if err := authz.RequireSelf(au.Email, r.URL.Query().Get("email")); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}

			out, err := d.ItemSvc.Delete(r.Context(), au.Email, chi.URLParam(r, "id"))
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Likes =====
		pr.Get("/likes", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			email := r.URL.Query().Get("email")
			if err := authz.RequireSelf(au.Email, email); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}

			out, err := d.LikeRepo.ListByEmail(r.Context(), email)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/likes", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())

			var in like.Like
			if err := httpjson.Read(r, &in); err != nil || in.ItemID == "" {
				Fail(w, 400, "invalid like payload")
				return
			}
			if err := authz.RequireSelf(au.Email, in.Email); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}

			out, err := d.LikeRepo.Insert(r.Context(), in)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Delete("/likes/{id}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			id := chi.URLParam(r, "id")

			l, err := d.LikeRepo.Get(r.Context(), id)
			if err != nil && !like.IsErrNotFound(err) {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			if l != nil && l.Email != au.Email {
				admin, err := d.Roles.IsAdmin(r.Context(), au.Email)
				if err != nil {
					status, msg := mapError(err)
					Fail(w, status, msg)
					return
				}
				if !admin {
					Fail(w, 403, "forbidden access")
					return
				}
			}

			out, err := d.LikeRepo.Delete(r.Context(), id)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Users =====
		pr.Get("/users", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			if err := d.Roles.RequireAdmin(r.Context(), au.Email); err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}

			out, err := d.UserRepo.List(r.Context())
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Get("/users/isAdmin", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			email := r.URL.Query().Get("email")
			if err := authz.RequireSelf(au.Email, email); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}

			admin, err := d.Roles.IsAdmin(r.Context(), email)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"admin": admin})
		})

		pr.Patch("/users", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			if err := authz.RequireSelf(au.Email, r.URL.Query().Get("email")); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}
			if err := d.Roles.RequireAdmin(r.Context(), au.Email); err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}

			var in struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			}
			if err := httpjson.Read(r, &in); err != nil || in.Email == "" {
				Fail(w, 400, "invalid role payload")
				return
			}

			out, err := d.UserRepo.UpdateRole(r.Context(), in.Email, in.Role)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			if err := authz.RequireSelf(au.Email, r.URL.Query().Get("email")); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}
			if err := d.Roles.RequireAdmin(r.Context(), au.Email); err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}

			out, err := d.UserRepo.Delete(r.Context(), chi.URLParam(r, "id"))
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Session catalog writes (admin) =====
		pr.Post("/sessions", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			if err := authz.RequireSelf(au.Email, r.URL.Query().Get("email")); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}
			if err := d.Roles.RequireAdmin(r.Context(), au.Email); err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}

			var in catalog.Session
			if err := httpjson.Read(r, &in); err != nil || in.SessionType == "" {
				Fail(w, 400, "invalid session payload")
				return
			}

			out, err := d.CatalogRepo.Insert(r.Context(), in)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Patch("/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			if err := authz.RequireSelf(au.Email, r.URL.Query().Get("email")); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}
			if err := d.Roles.RequireAdmin(r.Context(), au.Email); err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}

			var in catalog.UpdateInput
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.CatalogRepo.Update(r.Context(), chi.URLParam(r, "id"), in.Fields())
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			if err := authz.RequireSelf(au.Email, r.URL.Query().Get("email")); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}
			if err := d.Roles.RequireAdmin(r.Context(), au.Email); err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}

			out, err := d.CatalogRepo.Delete(r.Context(), chi.URLParam(r, "id"))
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Bookings =====
		pr.Get("/booking", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			email := r.URL.Query().Get("email")

			admin, err := d.Roles.IsAdmin(r.Context(), au.Email)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			if admin {
				out, err := d.BookingRepo.ListAll(r.Context())
				if err != nil {
					status, msg := mapError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
				return
			}

			if err := authz.RequireSelf(au.Email, email); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}
			out, err := d.BookingRepo.ListByEmail(r.Context(), email)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/booking", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())

			var in booking.Booking
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := authz.RequireSelf(au.Email, in.Email); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}

			out, err := d.BookingRepo.Insert(r.Context(), in)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Patch("/booking/{id}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			if err := authz.RequireSelf(au.Email, r.URL.Query().Get("email")); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}
			if err := d.Roles.RequireAdmin(r.Context(), au.Email); err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}

			var in booking.UpdateInput
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.BookingRepo.Update(r.Context(), chi.URLParam(r, "id"), in.Fields())
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/booking/{id}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			if err := authz.RequireSelf(au.Email, r.URL.Query().Get("email")); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}
			id := chi.URLParam(r, "id")

			b, err := d.BookingRepo.Get(r.Context(), id)
			if err != nil && !booking.IsErrNotFound(err) {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			if b != nil && b.Email != au.Email {
				admin, err := d.Roles.IsAdmin(r.Context(), au.Email)
				if err != nil {
					status, msg := mapError(err)
					Fail(w, status, msg)
					return
				}
				if !admin {
					Fail(w, 403, "forbidden access")
					return
				}
			}

			out, err := d.BookingRepo.Delete(r.Context(), id)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Payments =====
		pr.Post("/create-payment-intent", func(w http.ResponseWriter, r *http.Request) {
			if !d.StripeSvc.Configured() {
				Fail(w, 501, "payment gateway not configured")
				return
			}

			var in struct {
				Price float64 `json:"price"`
			}
			if err := httpjson.Read(r, &in); err != nil || in.Price <= 0 {
				Fail(w, 400, "price required")
				return
			}

			secret, err := d.StripeSvc.CreatePaymentIntent(in.Price)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"clientSecret": secret})
		})

		pr.Get("/payments", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			email := r.URL.Query().Get("email")

			if email == "" {
				if err := d.Roles.RequireAdmin(r.Context(), au.Email); err != nil {
					status, msg := mapError(err)
					Fail(w, status, msg)
					return
				}
				out, err := d.PaymentRepo.ListAll(r.Context())
				if err != nil {
					status, msg := mapError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
				return
			}

			if err := authz.RequireSelf(au.Email, email); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}
			out, err := d.PaymentRepo.ListByEmail(r.Context(), email)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/payments", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())

			var in payment.Payment
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := authz.RequireSelf(au.Email, in.Email); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}

			out, err := d.PaymentRepo.Insert(r.Context(), in)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		// ===== Statistics =====
		pr.Get("/user/stat", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			email := r.URL.Query().Get("email")
			if err := authz.RequireSelf(au.Email, email); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}

			out, err := d.StatsSvc.PerUser(r.Context(), email)
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Get("/admin/stat", func(w http.ResponseWriter, r *http.Request) {
			au, _ := authctx.ClaimsFrom(r.Context())
			if err := authz.RequireSelf(au.Email, r.URL.Query().Get("email")); err != nil {
				Fail(w, 403, "forbidden access")
				return
			}
			if err := d.Roles.RequireAdmin(r.Context(), au.Email); err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}

			out, err := d.StatsSvc.Admin(r.Context())
			if err != nil {
				status, msg := mapError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})
	})

	return r
}

// mapError translates domain errors to a status and a safe message. Anything
// unrecognized is a store or gateway failure and surfaces as a generic 500.
func mapError(err error) (int, string) {
	switch {
	case authz.IsErrForbidden(err):
		return http.StatusForbidden, "forbidden access"
	case errors.Is(err, payment.ErrStripeNotConfigured):
		return http.StatusNotImplemented, "payment gateway not configured"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
