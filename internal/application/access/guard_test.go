package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayaneflai9-afk/phynteck/internal/application/access"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func admin() *entity.Identity {
	return &entity.Identity{ID: "1", Email: "admin@phynteck.dz", Role: entity.RoleAdmin, Status: entity.StatusApproved}
}

func fournisseur(status string) *entity.Identity {
	return &entity.Identity{ID: "2", Email: "ferme@exemple.dz", Role: entity.RoleSupplier, Status: status}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Evaluate — les quatre états
// ──────────────────────────────────────────────────────────────────────────────

// Cas 1 : sans identité, toujours no_session, quelles que soient les contraintes.
func TestEvaluate_SansSession(t *testing.T) {
	d := access.Evaluate(nil, "", false)
	assert.Equal(t, access.StateNoSession, d.State)

	d = access.Evaluate(nil, entity.RoleAdmin, true)
	assert.Equal(t, access.StateNoSession, d.State,
		"sans session, les contraintes de rôle ou d'approbation ne changent rien")
}

// Cas 2 : rôle différent du rôle requis → wrong_role avec les deux rôles.
func TestEvaluate_MauvaisRole(t *testing.T) {
	d := access.Evaluate(fournisseur(entity.StatusApproved), entity.RoleAdmin, false)

	assert.Equal(t, access.StateWrongRole, d.State)
	assert.Equal(t, entity.RoleSupplier, d.Role)
	assert.Equal(t, entity.RoleAdmin, d.RequiredRole)
}

// Cas 3 : fournisseur pending sur une route exigeant l'approbation.
func TestEvaluate_FournisseurEnAttente(t *testing.T) {
	d := access.Evaluate(fournisseur(entity.StatusPending), "", true)
	assert.Equal(t, access.StatePendingApproval, d.State)
}

// Cas 3b : fournisseur sans statut explicite → pending par défaut.
func TestEvaluate_StatutAbsentVautPending(t *testing.T) {
	d := access.Evaluate(fournisseur(""), "", true)
	assert.Equal(t, access.StatePendingApproval, d.State,
		"un fournisseur sans statut doit être traité comme pending")
}

// Cas 3c : un admin n'est jamais pending, même avec un statut incohérent.
func TestEvaluate_AdminJamaisPending(t *testing.T) {
	id := admin()
	id.Status = entity.StatusPending // donnée incohérente, le statut effectif prime

	d := access.Evaluate(id, "", true)
	assert.Equal(t, access.StateAuthorized, d.State,
		"le statut effectif d'un admin est toujours approved")
}

// Cas 4 : tout est satisfait → authorized, sans rôles renseignés.
func TestEvaluate_Autorise(t *testing.T) {
	d := access.Evaluate(fournisseur(entity.StatusApproved), entity.RoleSupplier, true)

	assert.Equal(t, access.StateAuthorized, d.State)
	assert.Empty(t, d.Role)
	assert.Empty(t, d.RequiredRole)
}

// Cas 4b : sans contrainte, une simple session suffit.
func TestEvaluate_SessionSeuleSuffit(t *testing.T) {
	d := access.Evaluate(fournisseur(entity.StatusPending), "", false)
	assert.Equal(t, access.StateAuthorized, d.State,
		"sans exigence d'approbation, un fournisseur pending passe")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Evaluate — ordre strict des critères
// ──────────────────────────────────────────────────────────────────────────────

// Le mauvais rôle prime sur l'approbation manquante : un fournisseur pending
// sur une route admin voit wrong_role, pas pending_approval.
func TestEvaluate_MauvaisRolePrimeSurApprobation(t *testing.T) {
	d := access.Evaluate(fournisseur(entity.StatusPending), entity.RoleAdmin, true)

	assert.Equal(t, access.StateWrongRole, d.State,
		"le contrôle de rôle précède le contrôle d'approbation")
}
