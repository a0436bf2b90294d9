package entity

import "github.com/shopspring/decimal"

// Types de promotion.
const (
	PromoPercentage = "percentage"
	PromoBundle     = "bundle"
	PromoLoyalty    = "loyalty"
)

// Statuts de promotion.
const (
	PromoActive    = "active"
	PromoScheduled = "scheduled"
	PromoExpired   = "expired"
)

// Promotion représente une offre gérée depuis la console boutique.
// Value est un pourcentage de remise quel que soit le type.
type Promotion struct {
	ID        int
	Name      string
	Type      string // percentage, bundle, loyalty
	Value     decimal.Decimal
	StartDate string // AAAA-MM-JJ
	EndDate   string
	Status    string // active, scheduled, expired
	Uses      int
}
