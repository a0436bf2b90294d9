package entity

import "github.com/shopspring/decimal"

// Catégories du catalogue public.
const (
	CategoryAll           = "Tous"
	CategoryFertilizer    = "Engrais"
	CategorySeeds         = "Semences"
	CategoryPhytosanitary = "Phytosanitaire"
	CategoryIrrigation    = "Irrigation"
)

// Product représente une fiche du catalogue public, avec l'analyse
// points forts / points faibles affichée sur la carte produit.
type Product struct {
	ID          int
	Name        string
	Category    string
	Price       decimal.Decimal // prix en DA
	Rating      float64         // note sur 5
	Reviews     int
	Image       string
	Description string
	Strengths   []string
	Weaknesses  []string
}
