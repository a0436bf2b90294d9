package ai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayaneflai9-afk/phynteck/internal/infrastructure/ai"
)

// Cas 1 : requête connue → alternatives de la table.
func TestLocalAdvisor_RequeteConnue(t *testing.T) {
	advisor := ai.NewLocalAdvisor()

	recs, err := advisor.Recommend(context.Background(), "engrais économique")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Compost Organique Local", recs[0].Name)
	assert.Equal(t, "Engrais NPK 12-12-17", recs[1].Name)
}

// Cas 2 : la correspondance ignore la casse et les accents.
func TestLocalAdvisor_InsensibleCasseEtAccents(t *testing.T) {
	advisor := ai.NewLocalAdvisor()

	for _, query := range []string{
		"ENGRAIS ÉCONOMIQUE",
		"engrais economique",
		"Engrais Economique",
	} {
		recs, err := advisor.Recommend(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, "Compost Organique Local", recs[0].Name,
			"la requête « %s » doit trouver la même entrée", query)
	}
}

// Cas 2b : une sous-chaîne de la recherche connue suffit.
func TestLocalAdvisor_CorrespondanceParSousChaine(t *testing.T) {
	advisor := ai.NewLocalAdvisor()

	recs, err := advisor.Recommend(context.Background(), "protection")
	require.NoError(t, err)
	assert.Equal(t, "Huile de Neem", recs[0].Name)
}

// Cas 3 : requête inconnue → repli vers les experts, jamais de liste vide.
func TestLocalAdvisor_RepliJamaisVide(t *testing.T) {
	advisor := ai.NewLocalAdvisor()

	recs, err := advisor.Recommend(context.Background(), "tracteur volant")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Analyse personnalisée requise", recs[0].Name)
	assert.True(t, recs[0].Price.IsZero())
}

// Cas 4 : les suggestions populaires sont stables et non vides.
func TestLocalAdvisor_Suggestions(t *testing.T) {
	advisor := ai.NewLocalAdvisor()

	got := advisor.Suggestions()
	require.NotEmpty(t, got)
	assert.Contains(t, got, "engrais économique")
}
