package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/minhtridev/edustore-backend/api/controllers"
	"github.com/minhtridev/edustore-backend/api/middleware"
	"github.com/minhtridev/edustore-backend/internal/auth"
	"github.com/minhtridev/edustore-backend/internal/cart"
	checkoutsvc "github.com/minhtridev/edustore-backend/internal/checkout"
	"github.com/minhtridev/edustore-backend/internal/orders"
	"github.com/minhtridev/edustore-backend/internal/profile"
	"github.com/minhtridev/edustore-backend/pkg/auth/session"
	"github.com/minhtridev/edustore-backend/pkg/config"
	"github.com/minhtridev/edustore-backend/pkg/db"
	"github.com/minhtridev/edustore-backend/pkg/logger"
	"github.com/minhtridev/edustore-backend/pkg/metrics"
	"github.com/minhtridev/edustore-backend/pkg/redis"
)

// RouterParams carries everything the HTTP surface depends on.
type RouterParams struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	SessionManager session.AccessSessionChecker
	Metrics        *metrics.HTTPMetrics
	Registry       *prometheus.Registry

	AuthService     auth.Service
	RegisterService auth.RegisterService
	CartService     cart.Service
	CheckoutService checkoutsvc.Service
	OrdersService   orders.Service
	ProfileService  profile.Service
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(p.Metrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB, p.Redis))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ProductsList(logg))
		r.Get("/{productID}", controllers.ProductGet(logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
			Post("/login", controllers.AuthLogin(p.AuthService, logg))
		r.With(
			middleware.AuthRateLimit(registerPolicy, p.Redis, logg),
			middleware.Idempotency(p.Redis, logg),
		).Post("/register", controllers.AuthRegister(p.RegisterService, logg))
		r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, p.SessionManager, logg)).
			Post("/logout", controllers.AuthLogout(p.AuthService, logg))
	})

	r.Route("/api/admin/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
			Post("/login", controllers.AdminAuthLogin(p.AuthService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.SessionManager, logg))
		r.Use(middleware.Idempotency(p.Redis, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(p.CartService, logg))
			r.Post("/items", controllers.CartAddItem(p.CartService, logg))
			r.Put("/items/{productID}", controllers.CartUpdateItem(p.CartService, logg))
			r.Delete("/items/{productID}", controllers.CartRemoveItem(p.CartService, logg))
			r.Delete("/", controllers.CartClear(p.CartService, logg))
		})

		r.Get("/checkout/instructions", controllers.CheckoutInstructions(p.CheckoutService, logg))
		r.Post("/checkout", controllers.CheckoutConfirm(p.CheckoutService, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(p.OrdersService, logg))
			r.Get("/{orderID}", controllers.OrderGet(p.OrdersService, logg))
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.ProfileGet(p.ProfileService, logg))
			r.Put("/", controllers.ProfileUpdate(p.ProfileService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.SessionManager, logg))
		r.Use(middleware.RequireRole("admin", logg))
		r.Use(middleware.Idempotency(p.Redis, logg))

		r.Get("/ping", controllers.AdminPing())

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminOrdersList(p.OrdersService, logg))
			r.Get("/summary", controllers.AdminOrdersSummary(p.OrdersService, logg))
			r.Get("/{orderID}", controllers.AdminOrderGet(p.OrdersService, logg))
			r.Post("/{orderID}/paid", controllers.AdminOrderMarkPaid(p.OrdersService, logg))
			r.Post("/{orderID}/cancel", controllers.AdminOrderCancel(p.OrdersService, logg))
		})
	})

	return r
}
