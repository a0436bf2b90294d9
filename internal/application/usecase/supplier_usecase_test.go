package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayaneflai9-afk/phynteck/internal/application/usecase"
	"github.com/rayaneflai9-afk/phynteck/internal/domain"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
	"github.com/rayaneflai9-afk/phynteck/internal/infrastructure/memory"
)

// Cas 1 : la liste renvoie les trois demandes d'exemple.
func TestSupplierList(t *testing.T) {
	uc := usecase.NewSupplierUseCase(memory.NewSupplierApplicationRepository())

	out, err := uc.List()
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	assert.Equal(t, "Ferme Bio Alger", out.Items[0].Name)
	assert.Equal(t, entity.ApplicationPending, out.Items[0].Status)
}

// Cas 2 : approuver une demande pending → statut approved, persistant.
func TestSupplierApprove_DemandePending(t *testing.T) {
	repo := memory.NewSupplierApplicationRepository()
	uc := usecase.NewSupplierUseCase(repo)

	out, err := uc.Approve(1)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationApproved, out.Status)

	stored, err := repo.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.ApplicationApproved, stored.Status)
}

// Cas 2b : une demande en cours d'examen (review) est aussi traitable.
func TestSupplierReject_DemandeEnExamen(t *testing.T) {
	uc := usecase.NewSupplierUseCase(memory.NewSupplierApplicationRepository())

	out, err := uc.Reject(2)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationRejected, out.Status)
}

// Cas 3 : demande déjà approuvée → ErrConflict, pas de double traitement.
func TestSupplierApprove_DejaTraitee(t *testing.T) {
	uc := usecase.NewSupplierUseCase(memory.NewSupplierApplicationRepository())

	_, err := uc.Approve(3)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Cas 3b : une demande rejetée ne peut plus être approuvée.
func TestSupplierApprove_ApresRejet(t *testing.T) {
	uc := usecase.NewSupplierUseCase(memory.NewSupplierApplicationRepository())

	_, err := uc.Reject(1)
	require.NoError(t, err)

	_, err = uc.Approve(1)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Cas 4 : identifiant inconnu → ErrNotFound.
func TestSupplierApprove_Inconnue(t *testing.T) {
	uc := usecase.NewSupplierUseCase(memory.NewSupplierApplicationRepository())

	_, err := uc.Approve(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
