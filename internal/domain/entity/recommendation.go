package entity

import "github.com/shopspring/decimal"

// Recommendation est une alternative proposée par l'assistant pour une
// recherche donnée. Price à zéro signifie « pas de produit associé »
// (cas de la réponse par défaut renvoyant vers les experts).
type Recommendation struct {
	Name     string
	Reason   string
	Price    decimal.Decimal
	Benefits []string
}
