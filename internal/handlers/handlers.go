package handlers

import (
	"net/http"

	_ "github.com/vaultmart/vaultmart/docs"
	authhandlers "github.com/vaultmart/vaultmart/internal/handlers/auth"
	markethandlers "github.com/vaultmart/vaultmart/internal/handlers/market"
	vaulthandlers "github.com/vaultmart/vaultmart/internal/handlers/vault"
	"github.com/vaultmart/vaultmart/internal/service"
	"github.com/vaultmart/vaultmart/pkg/auth"
	"github.com/vaultmart/vaultmart/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type VaultHandler interface {
	GetState(w http.ResponseWriter, r *http.Request)
	Lock(w http.ResponseWriter, r *http.Request)
	Unlock(w http.ResponseWriter, r *http.Request)
}

type MarketHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetItems(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	GetPurchases(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetRewards(w http.ResponseWriter, r *http.Request)
	ClaimReward(w http.ResponseWriter, r *http.Request)
	GetRecommendations(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	VaultHandler  VaultHandler
	MarketHandler MarketHandler

	rateLimitRPS   float64
	rateLimitBurst int
}

func New(s *service.Services, rateLimitRPS float64, rateLimitBurst int) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		VaultHandler:   vaulthandlers.New(s.VaultService),
		MarketHandler:  markethandlers.New(s.MarketService),
		rateLimitRPS:   rateLimitRPS,
		rateLimitBurst: rateLimitBurst,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		ratelimit.Middleware(h.rateLimitRPS, h.rateLimitBurst),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/vault", func(r chi.Router) {
				r.Get("/state", h.VaultHandler.GetState)
				r.Post("/lock", h.VaultHandler.Lock)
				r.Post("/unlock", h.VaultHandler.Unlock)
			})
			r.Route("/market", func(r chi.Router) {
				r.Get("/wallet", h.MarketHandler.GetWallet)
				r.Get("/items", h.MarketHandler.GetItems)
				r.Post("/purchase", h.MarketHandler.Purchase)
				r.Get("/purchases", h.MarketHandler.GetPurchases)
				r.Get("/transactions", h.MarketHandler.GetTransactions)
				r.Route("/rewards", func(r chi.Router) {
					r.Get("/", h.MarketHandler.GetRewards)
					r.Post("/{id}/claim", h.MarketHandler.ClaimReward)
				})
				r.Get("/recommendations", h.MarketHandler.GetRecommendations)
			})
		})
	})

	return r
}
