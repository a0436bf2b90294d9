package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/application/usecase"
	"github.com/rayaneflai9-afk/phynteck/internal/domain"
)

// RecommendationHandler expose l'assistant de recommandation.
type RecommendationHandler struct {
	uc *usecase.RecommendationUseCase
}

// NewRecommendationHandler construit le handler de recommandation.
func NewRecommendationHandler(uc *usecase.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

// Recommend godoc
// @Summary      Recommandations de produits à partir d'une requête libre
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecommendationRequest  true  "besoin exprimé en langage naturel"
// @Success      200   {object}  dto.RecommendationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/recommendations [post]
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	var in dto.RecommendationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Recommend(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "décrivez votre besoin avant de lancer la recherche"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Suggestions godoc
// @Summary      Requêtes populaires suggérées
// @Tags         recommendations
// @Produce      json
// @Success      200  {object}  dto.SuggestionsResponse
// @Router       /api/recommendations/suggestions [get]
func (h *RecommendationHandler) Suggestions(c *fiber.Ctx) error {
	return c.JSON(h.uc.Suggestions())
}
