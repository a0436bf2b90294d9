package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/application/usecase"
	"github.com/rayaneflai9-afk/phynteck/internal/domain"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
	"github.com/rayaneflai9-afk/phynteck/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests List — filtrage par catégorie
// ──────────────────────────────────────────────────────────────────────────────

// Cas 1 : sans catégorie, tout le catalogue est renvoyé, avec les catégories.
func TestCatalogList_SansFiltre(t *testing.T) {
	uc := usecase.NewCatalogUseCase(memory.NewProductRepository())

	out, err := uc.List("")
	require.NoError(t, err)

	assert.Len(t, out.Items, 4)
	assert.Equal(t, []string{
		entity.CategoryAll, entity.CategoryFertilizer, entity.CategorySeeds,
		entity.CategoryPhytosanitary, entity.CategoryIrrigation,
	}, out.Categories)
}

// Cas 1b : « Tous » équivaut à l'absence de filtre.
func TestCatalogList_TousEquivautSansFiltre(t *testing.T) {
	uc := usecase.NewCatalogUseCase(memory.NewProductRepository())

	out, err := uc.List(entity.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, out.Items, 4)
}

// Cas 2 : filtre par catégorie → seulement les produits correspondants.
func TestCatalogList_FiltreParCategorie(t *testing.T) {
	uc := usecase.NewCatalogUseCase(memory.NewProductRepository())

	out, err := uc.List(entity.CategorySeeds)
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "Semences Blé Dur Vitron", out.Items[0].Name)
}

// Cas 2b : catégorie inconnue → liste vide, pas d'erreur.
func TestCatalogList_CategorieInconnue(t *testing.T) {
	uc := usecase.NewCatalogUseCase(memory.NewProductRepository())

	out, err := uc.List("Tracteurs")
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Compare — limites de sélection
// ──────────────────────────────────────────────────────────────────────────────

// Cas 3 : deux produits → produits renvoyés dans l'ordre demandé, avec analyse.
func TestCompare_DeuxProduits(t *testing.T) {
	uc := usecase.NewCatalogUseCase(memory.NewProductRepository())

	out, err := uc.Compare(dto.CompareRequest{ProductIDs: []int{2, 1}})
	require.NoError(t, err)

	require.Len(t, out.Products, 2)
	assert.Equal(t, "Semences Blé Dur Vitron", out.Products[0].Name)
	assert.Equal(t, "Engrais NPK 15-15-15", out.Products[1].Name)
	assert.Contains(t, out.Analysis, "meilleur prix")
	assert.Contains(t, out.Analysis, "meilleure note")
}

// Cas 4 : sélection vide → ErrInvalidInput.
func TestCompare_SelectionVide(t *testing.T) {
	uc := usecase.NewCatalogUseCase(memory.NewProductRepository())

	_, err := uc.Compare(dto.CompareRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cas 4b : plus de trois produits → ErrInvalidInput.
func TestCompare_PlusDeTroisProduits(t *testing.T) {
	uc := usecase.NewCatalogUseCase(memory.NewProductRepository())

	_, err := uc.Compare(dto.CompareRequest{ProductIDs: []int{1, 2, 3, 4}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cas 5 : identifiant inconnu → ErrNotFound.
func TestCompare_ProduitInconnu(t *testing.T) {
	uc := usecase.NewCatalogUseCase(memory.NewProductRepository())

	_, err := uc.Compare(dto.CompareRequest{ProductIDs: []int{1, 99}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
