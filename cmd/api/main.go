package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rayaneflai9-afk/phynteck/internal/application/auth"
	"github.com/rayaneflai9-afk/phynteck/internal/application/session"
	"github.com/rayaneflai9-afk/phynteck/internal/application/usecase"
	infraai "github.com/rayaneflai9-afk/phynteck/internal/infrastructure/ai"
	"github.com/rayaneflai9-afk/phynteck/internal/infrastructure/localslot"
	"github.com/rayaneflai9-afk/phynteck/internal/infrastructure/memory"
	httpRouter "github.com/rayaneflai9-afk/phynteck/internal/interfaces/http"
	"github.com/rayaneflai9-afk/phynteck/pkg/config"
	"github.com/rayaneflai9-afk/phynteck/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration : " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	// Session : slot fichier + restauration au démarrage (silencieuse si le
	// fichier est absent ou corrompu)
	store := session.NewStore(localslot.NewFileSlot(cfg.Session.FilePath))
	store.Load()
	if id := store.Current(); id != nil {
		log.Info().Str("email", id.Email).Str("role", id.Role).Msg("session restaurée")
	}

	productRepo := memory.NewProductRepository()
	shopProductRepo := memory.NewShopProductRepository()
	promotionRepo := memory.NewPromotionRepository()
	supplierRepo := memory.NewSupplierApplicationRepository()
	analyticsRepo := memory.NewAnalyticsRepository()

	authUC := auth.NewAuthUseCase(store, auth.Delays{
		Login:    cfg.Auth.LoginDelay,
		Register: cfg.Auth.RegisterDelay,
	})
	catalogUC := usecase.NewCatalogUseCase(productRepo)
	recoUC := usecase.NewRecommendationUseCase(infraai.NewLocalAdvisor(), cfg.Reco.Delay)
	consoleUC := usecase.NewConsoleUseCase(analyticsRepo)
	shopProductUC := usecase.NewShopProductUseCase(shopProductRepo)
	promotionUC := usecase.NewPromotionUseCase(promotionRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PhynTech API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:            store,
		AuthUC:           authUC,
		CatalogUC:        catalogUC,
		RecommendationUC: recoUC,
		ConsoleUC:        consoleUC,
		ShopProductUC:    shopProductUC,
		PromotionUC:      promotionUC,
		AnalyticsUC:      analyticsUC,
		SupplierUC:       supplierUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
