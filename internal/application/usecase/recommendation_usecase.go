package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/application/ports"
	"github.com/rayaneflai9-afk/phynteck/internal/domain"
)

// RecommendationUseCase orchestre l'assistant de recommandation : latence
// simulée puis délégation au port Advisor. Le délai est annulable par le
// contexte de la requête.
type RecommendationUseCase struct {
	advisor ports.Advisor
	delay   time.Duration
}

// NewRecommendationUseCase construit le cas d'usage en injectant le port Advisor.
func NewRecommendationUseCase(advisor ports.Advisor, delay time.Duration) *RecommendationUseCase {
	return &RecommendationUseCase{advisor: advisor, delay: delay}
}

// Recommend valide l'entrée, simule le temps d'analyse puis interroge l'assistant.
func (uc *RecommendationUseCase) Recommend(ctx context.Context, in dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, domain.ErrInvalidInput
	}

	if uc.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(uc.delay):
		}
	}

	recs, err := uc.advisor.Recommend(ctx, query)
	if err != nil {
		return nil, err
	}

	items := make([]dto.RecommendationDTO, 0, len(recs))
	for _, r := range recs {
		items = append(items, dto.RecommendationDTO{
			Name:     r.Name,
			Reason:   r.Reason,
			Price:    r.Price,
			Benefits: r.Benefits,
		})
	}
	return &dto.RecommendationResponse{Query: query, Recommendations: items}, nil
}

// Suggestions renvoie les recherches populaires.
func (uc *RecommendationUseCase) Suggestions() *dto.SuggestionsResponse {
	return &dto.SuggestionsResponse{Suggestions: uc.advisor.Suggestions()}
}
