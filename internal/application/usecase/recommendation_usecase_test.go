package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/application/usecase"
	"github.com/rayaneflai9-afk/phynteck/internal/domain"
	"github.com/rayaneflai9-afk/phynteck/internal/infrastructure/ai"
)

// Cas 1 : requête connue → réponse avec la requête normalisée et les alternatives.
func TestRecommend_RequeteConnue(t *testing.T) {
	uc := usecase.NewRecommendationUseCase(ai.NewLocalAdvisor(), 0)

	out, err := uc.Recommend(context.Background(), dto.RecommendationRequest{Query: "  engrais économique  "})
	require.NoError(t, err)

	assert.Equal(t, "engrais économique", out.Query, "la requête doit être renvoyée sans espaces superflus")
	require.Len(t, out.Recommendations, 2)
	assert.Equal(t, "Compost Organique Local", out.Recommendations[0].Name)
}

// Cas 2 : requête vide ou blanche → ErrInvalidInput, sans passer par l'assistant.
func TestRecommend_RequeteVide(t *testing.T) {
	uc := usecase.NewRecommendationUseCase(ai.NewLocalAdvisor(), 0)

	_, err := uc.Recommend(context.Background(), dto.RecommendationRequest{Query: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cas 3 : contexte annulé pendant la latence simulée → erreur du contexte.
func TestRecommend_ContexteAnnule(t *testing.T) {
	uc := usecase.NewRecommendationUseCase(ai.NewLocalAdvisor(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Recommend(ctx, dto.RecommendationRequest{Query: "engrais"})
	assert.ErrorIs(t, err, context.Canceled)
}

// Cas 4 : les suggestions de l'assistant sont exposées telles quelles.
func TestRecommend_Suggestions(t *testing.T) {
	uc := usecase.NewRecommendationUseCase(ai.NewLocalAdvisor(), 0)

	out := uc.Suggestions()
	assert.Contains(t, out.Suggestions, "protection naturelle")
}
