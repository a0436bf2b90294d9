package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rayaneflai9-afk/phynteck/internal/application/access"
	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/application/session"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
)

// Locals key pour l'identité courante dans Fiber.
const LocalIdentity = "identity"

// Codes d'erreur du guard, stables pour le front.
const (
	codeAuthRequired    = "AUTH_REQUIRED"
	codeWrongRole       = "WRONG_ROLE"
	codePendingApproval = "PENDING_APPROVAL"
)

// Guard applique le guard d'accès à chaque requête : l'identité courante est
// relue dans le store et reclassifiée à chaque évaluation (pas d'historique).
//
// Correspondance décision -> réponse :
//   - no_session       -> 401 AUTH_REQUIRED (« Vous devez être connecté »)
//   - wrong_role       -> 403 WRONG_ROLE, avec rôle courant et rôle requis
//   - pending_approval -> 403 PENDING_APPROVAL (compte en cours de vérification)
//   - authorized       -> handler suivant, identité déposée dans c.Locals
func Guard(store *session.Store, requiredRole string, requireApproval bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := store.Current()
		decision := access.Evaluate(identity, requiredRole, requireApproval)

		switch decision.State {
		case access.StateNoSession:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    codeAuthRequired,
				Message: "Vous devez être connecté pour accéder à cette page",
			})
		case access.StateWrongRole:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":          codeWrongRole,
				"message":       "Vous n'avez pas les permissions nécessaires pour accéder à cette page",
				"role":          decision.Role,
				"required_role": decision.RequiredRole,
			})
		case access.StatePendingApproval:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    codePendingApproval,
				Message: "Votre compte fournisseur est en cours de vérification",
			})
		}

		c.Locals(LocalIdentity, *identity)
		return c.Next()
	}
}

// RequireSession exige une session, sans contrainte de rôle ni d'approbation.
func RequireSession(store *session.Store) fiber.Handler {
	return Guard(store, "", false)
}

// RequireRole exige une session avec le rôle donné.
func RequireRole(store *session.Store, role string) fiber.Handler {
	return Guard(store, role, false)
}

// RequireApproval exige une session dont le statut effectif n'est pas pending
// (les admins passent toujours : leur statut effectif est approved).
func RequireApproval(store *session.Store) fiber.Handler {
	return Guard(store, "", true)
}

// GetIdentity renvoie l'identité déposée par le guard (zero value si absente).
func GetIdentity(c *fiber.Ctx) entity.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return entity.Identity{}
	}
	id, _ := v.(entity.Identity)
	return id
}
