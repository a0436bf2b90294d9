package dto

import "github.com/shopspring/decimal"

// RecommendationRequest recherche libre soumise à l'assistant.
type RecommendationRequest struct {
	Query string `json:"query" validate:"required,min=1"`
}

// RecommendationDTO une alternative proposée. Price vaut zéro pour la
// réponse par défaut (renvoi vers les experts).
type RecommendationDTO struct {
	Name     string          `json:"name"`
	Reason   string          `json:"reason"`
	Price    decimal.Decimal `json:"price"`
	Benefits []string        `json:"benefits"`
}

// RecommendationResponse résultat de l'assistant pour une recherche.
type RecommendationResponse struct {
	Query           string              `json:"query"`
	Recommendations []RecommendationDTO `json:"recommendations"`
}

// SuggestionsResponse recherches populaires proposées sous le champ.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
