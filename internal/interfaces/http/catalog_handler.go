package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/application/usecase"
	"github.com/rayaneflai9-afk/phynteck/internal/domain"
)

// CatalogHandler expose le catalogue public et l'outil de comparaison.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construit le handler du catalogue.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Lister le catalogue
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "catégorie (Tous par défaut)"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Catégories du catalogue
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/products/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}

// Compare godoc
// @Summary      Comparer jusqu'à 3 produits
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompareRequest  true  "identifiants des produits (1 à 3)"
// @Success      200   {object}  dto.CompareResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/compare [post]
func (h *CatalogHandler) Compare(c *fiber.Ctx) error {
	var in dto.CompareRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Compare(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sélectionnez entre 1 et 3 produits"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produit introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
