package http

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/rayaneflai9-afk/phynteck/internal/application/auth"
	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
)

// Numéro de registre de commerce algérien : XX/YYYY/NNNNNNN.
var commercialRegPattern = regexp.MustCompile(`^\d{2}/\d{4}/\d{7}$`)

// AuthHandler gère connexion, inscription et déconnexion.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construit le handler d'auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Se connecter
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email et mot de passe sont requis"})
	}
	user, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{User: *user})
}

// Register godoc
// @Summary      S'inscrire (admin ou fournisseur)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "formulaire d'inscription"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}

	role := in.Role
	if role == "" {
		role = entity.RoleSupplier
	}
	if role != entity.RoleAdmin && role != entity.RoleSupplier {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rôle invalide"})
	}

	if msg := validateRegister(in, role); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}

	out, err := h.uc.Register(c.Context(), in, role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// validateRegister reproduit la validation du formulaire côté client; renvoie
// le premier message d'erreur, "" si tout est valide.
func validateRegister(in dto.RegisterRequest, role string) string {
	if in.Password == "" {
		return "mot de passe requis"
	}
	if len(in.Password) < 8 {
		return "le mot de passe doit contenir au moins 8 caractères"
	}
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		return "les mots de passe ne correspondent pas"
	}

	if role == entity.RoleAdmin {
		if in.Email == "" {
			return "email requis"
		}
		if in.Name == "" {
			return "nom requis"
		}
		return ""
	}

	// Formulaire fournisseur
	if in.CompanyLegalName == "" {
		return "raison sociale requise"
	}
	if in.CommercialRegNumber == "" {
		return "numéro de registre de commerce requis"
	}
	if !commercialRegPattern.MatchString(in.CommercialRegNumber) {
		return "numéro de registre de commerce invalide (format attendu : XX/YYYY/NNNNNNN)"
	}
	if in.ContactEmail == "" && in.Email == "" {
		return "email de contact requis"
	}
	if !in.AcceptTerms {
		return "vous devez accepter les conditions générales"
	}
	if !in.AcceptDataProcessing {
		return "vous devez accepter le traitement des données"
	}
	return ""
}

// Logout godoc
// @Summary      Se déconnecter
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout()
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Identité de la session courante
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.IdentityResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id := GetIdentity(c)
	return c.JSON(dto.IdentityResponse{
		ID:          id.ID,
		Email:       id.Email,
		Role:        id.Role,
		Name:        id.Name,
		CompanyName: id.CompanyName,
		Status:      id.Status,
	})
}
