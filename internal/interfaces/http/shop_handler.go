package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/application/usecase"
	"github.com/rayaneflai9-afk/phynteck/internal/domain"
)

// ShopHandler expose la console boutique (admin et fournisseur).
type ShopHandler struct {
	console    *usecase.ConsoleUseCase
	products   *usecase.ShopProductUseCase
	promotions *usecase.PromotionUseCase
	analytics  *usecase.AnalyticsUseCase
	suppliers  *usecase.SupplierUseCase
}

// NewShopHandler construit le handler de la console.
func NewShopHandler(
	console *usecase.ConsoleUseCase,
	products *usecase.ShopProductUseCase,
	promotions *usecase.PromotionUseCase,
	analytics *usecase.AnalyticsUseCase,
	suppliers *usecase.SupplierUseCase,
) *ShopHandler {
	return &ShopHandler{
		console:    console,
		products:   products,
		promotions: promotions,
		analytics:  analytics,
		suppliers:  suppliers,
	}
}

// Console godoc
// @Summary      Tableau de bord de la console (variante selon le rôle)
// @Tags         shop
// @Produce      json
// @Success      200  {object}  dto.ConsoleResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/shop/console [get]
func (h *ShopHandler) Console(c *fiber.Ctx) error {
	out, err := h.console.GetConsole(c.Context(), GetIdentity(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Produits de la boutique
// @Tags         shop
// @Produce      json
// @Success      200  {object}  dto.ShopProductListResponse
// @Router       /api/shop/products [get]
func (h *ShopHandler) Products(c *fiber.Ctx) error {
	out, err := h.products.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Promotions godoc
// @Summary      Promotions actives
// @Tags         shop
// @Produce      json
// @Success      200  {object}  dto.PromotionListResponse
// @Router       /api/shop/promotions [get]
func (h *ShopHandler) Promotions(c *fiber.Ctx) error {
	out, err := h.promotions.ListActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Analytics godoc
// @Summary      Métriques de vente (métriques plateforme incluses pour un admin)
// @Tags         shop
// @Produce      json
// @Success      200  {object}  dto.AnalyticsResponse
// @Router       /api/shop/analytics [get]
func (h *ShopHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.analytics.GetAnalytics(c.Context(), GetIdentity(c).Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Suppliers godoc
// @Summary      Candidatures fournisseurs (admin uniquement)
// @Tags         shop
// @Produce      json
// @Success      200  {object}  dto.SupplierApplicationListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/shop/suppliers [get]
func (h *ShopHandler) Suppliers(c *fiber.Ctx) error {
	out, err := h.suppliers.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ApproveSupplier godoc
// @Summary      Approuver une candidature fournisseur
// @Tags         shop
// @Produce      json
// @Param        id  path  int  true  "identifiant de la candidature"
// @Success      200  {object}  dto.SupplierApplicationDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shop/suppliers/{id}/approve [post]
func (h *ShopHandler) ApproveSupplier(c *fiber.Ctx) error {
	return h.reviewSupplier(c, h.suppliers.Approve)
}

// RejectSupplier godoc
// @Summary      Rejeter une candidature fournisseur
// @Tags         shop
// @Produce      json
// @Param        id  path  int  true  "identifiant de la candidature"
// @Success      200  {object}  dto.SupplierApplicationDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shop/suppliers/{id}/reject [post]
func (h *ShopHandler) RejectSupplier(c *fiber.Ctx) error {
	return h.reviewSupplier(c, h.suppliers.Reject)
}

func (h *ShopHandler) reviewSupplier(c *fiber.Ctx, review func(int) (*dto.SupplierApplicationDTO, error)) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "identifiant invalide"})
	}
	out, err := review(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "candidature introuvable"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_REVIEWED", Message: "cette candidature a déjà été traitée"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
