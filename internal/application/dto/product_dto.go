package dto

import "github.com/shopspring/decimal"

// ProductResponse fiche du catalogue public.
type ProductResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Strengths   []string        `json:"strengths"`
	Weaknesses  []string        `json:"weaknesses"`
}

// ProductListResponse liste du catalogue avec les catégories de filtrage.
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Categories []string          `json:"categories"`
}

// CategoryListResponse catégories de filtrage du catalogue.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

// CompareRequest entrée de l'outil de comparaison : 1 à 3 identifiants.
type CompareRequest struct {
	ProductIDs []int `json:"productIds" validate:"required,min=1,max=3"`
}

// CompareResponse produits comparés et phrase d'analyse.
type CompareResponse struct {
	Products []ProductResponse `json:"products"`
	Analysis string            `json:"analysis"`
}
