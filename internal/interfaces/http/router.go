package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rayaneflai9-afk/phynteck/internal/application/auth"
	"github.com/rayaneflai9-afk/phynteck/internal/application/session"
	"github.com/rayaneflai9-afk/phynteck/internal/application/usecase"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	Store            *session.Store
	AuthUC           *auth.AuthUseCase
	CatalogUC        *usecase.CatalogUseCase
	RecommendationUC *usecase.RecommendationUseCase
	ConsoleUC        *usecase.ConsoleUseCase
	ShopProductUC    *usecase.ShopProductUseCase
	PromotionUC      *usecase.PromotionUseCase
	AnalyticsUC      *usecase.AnalyticsUseCase
	SupplierUC       *usecase.SupplierUseCase
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public; /me derrière le guard de session)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", RequireSession(deps.Store), authHandler.Me)

	// Catalogue et comparaison (public)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/products", catalogHandler.List)
	api.Get("/products/categories", catalogHandler.Categories)
	api.Post("/products/compare", catalogHandler.Compare)

	// Recommandations (public)
	recoHandler := NewRecommendationHandler(deps.RecommendationUC)
	api.Post("/recommendations", recoHandler.Recommend)
	api.Get("/recommendations/suggestions", recoHandler.Suggestions)

	// Console boutique : session + compte approuvé (un fournisseur pending
	// est bloqué, un admin passe toujours)
	shop := api.Group("/shop", RequireApproval(deps.Store))
	shopHandler := NewShopHandler(deps.ConsoleUC, deps.ShopProductUC, deps.PromotionUC, deps.AnalyticsUC, deps.SupplierUC)
	shop.Get("/console", shopHandler.Console)
	shop.Get("/products", shopHandler.Products)
	shop.Get("/promotions", shopHandler.Promotions)
	shop.Get("/analytics", shopHandler.Analytics)

	// Gestion des fournisseurs (admin uniquement)
	suppliers := shop.Group("/suppliers", RequireRole(deps.Store, entity.RoleAdmin))
	suppliers.Get("/", shopHandler.Suppliers)
	suppliers.Post("/:id/approve", shopHandler.ApproveSupplier)
	suppliers.Post("/:id/reject", shopHandler.RejectSupplier)
}
