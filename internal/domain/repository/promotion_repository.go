package repository

import "github.com/rayaneflai9-afk/phynteck/internal/domain/entity"

// PromotionRepository définit le port de lecture des promotions de la console.
type PromotionRepository interface {
	// ListByStatus renvoie les promotions dans l'état donné (active, scheduled, expired).
	ListByStatus(status string) ([]entity.Promotion, error)
}
