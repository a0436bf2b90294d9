package memory

import (
	"github.com/shopspring/decimal"

	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
)

// PromotionRepository sert les promotions d'exemple de la console.
type PromotionRepository struct {
	promotions []entity.Promotion
}

// NewPromotionRepository construit le repository avec le jeu d'exemple.
func NewPromotionRepository() *PromotionRepository {
	return &PromotionRepository{
		promotions: []entity.Promotion{
			{
				ID:        1,
				Name:      "Réduction Équipements Hiver",
				Type:      entity.PromoPercentage,
				Value:     decimal.NewFromInt(15),
				StartDate: "2024-01-15",
				EndDate:   "2024-02-15",
				Status:    entity.PromoActive,
				Uses:      24,
			},
			{
				ID:        2,
				Name:      "Pack Semences Premium",
				Type:      entity.PromoBundle,
				Value:     decimal.NewFromInt(25),
				StartDate: "2024-01-10",
				EndDate:   "2024-01-31",
				Status:    entity.PromoActive,
				Uses:      8,
			},
			{
				ID:        3,
				Name:      "Fidélité Agriculteurs",
				Type:      entity.PromoLoyalty,
				Value:     decimal.NewFromInt(10),
				StartDate: "2024-01-01",
				EndDate:   "2024-12-31",
				Status:    entity.PromoActive,
				Uses:      156,
			},
		},
	}
}

// ListByStatus renvoie les promotions dans l'état donné.
func (r *PromotionRepository) ListByStatus(status string) ([]entity.Promotion, error) {
	out := make([]entity.Promotion, 0, len(r.promotions))
	for _, p := range r.promotions {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}
