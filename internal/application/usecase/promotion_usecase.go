package usecase

import (
	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/repository"
)

// PromotionUseCase lectures des promotions de la console boutique.
type PromotionUseCase struct {
	repo repository.PromotionRepository
}

// NewPromotionUseCase construit le cas d'usage.
func NewPromotionUseCase(repo repository.PromotionRepository) *PromotionUseCase {
	return &PromotionUseCase{repo: repo}
}

// ListActive renvoie les promotions en cours et le total d'utilisations
// affiché dans l'entête de l'onglet.
func (uc *PromotionUseCase) ListActive() (*dto.PromotionListResponse, error) {
	promos, err := uc.repo.ListByStatus(entity.PromoActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PromotionDTO, 0, len(promos))
	total := 0
	for _, p := range promos {
		total += p.Uses
		items = append(items, dto.PromotionDTO{
			ID:        p.ID,
			Name:      p.Name,
			Type:      p.Type,
			Value:     p.Value,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
			Status:    p.Status,
			Uses:      p.Uses,
		})
	}
	return &dto.PromotionListResponse{Items: items, TotalUses: total}, nil
}
