// Package memory contient les adaptateurs de données en mémoire : les jeux
// d'exemple de la plateforme derrière les ports de repository du domaine.
// Aucune persistance réelle — c'est la sémantique voulue de la maquette.
package memory

import (
	"github.com/shopspring/decimal"

	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
)

// ProductRepository sert le catalogue public d'exemple.
type ProductRepository struct {
	products []entity.Product
}

// NewProductRepository construit le repository avec le jeu d'exemple.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: sampleProducts()}
}

// List renvoie les produits de la catégorie donnée ("Tous" renvoie tout).
func (r *ProductRepository) List(category string) ([]entity.Product, error) {
	if category == entity.CategoryAll {
		return append([]entity.Product(nil), r.products...), nil
	}
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByID renvoie nil si le produit n'existe pas.
func (r *ProductRepository) GetByID(id int) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

// Categories renvoie les catégories de filtrage, "Tous" en tête.
func (r *ProductRepository) Categories() []string {
	return []string{
		entity.CategoryAll,
		entity.CategoryFertilizer,
		entity.CategorySeeds,
		entity.CategoryPhytosanitary,
		entity.CategoryIrrigation,
	}
}

func sampleProducts() []entity.Product {
	return []entity.Product{
		{
			ID:          1,
			Name:        "Engrais NPK 15-15-15",
			Category:    entity.CategoryFertilizer,
			Price:       decimal.NewFromInt(2500),
			Rating:      4.5,
			Reviews:     128,
			Image:       "/placeholder.svg",
			Description: "Engrais équilibré pour tous types de cultures",
			Strengths:   []string{"Équilibré", "Polyvalent", "Résultats rapides"},
			Weaknesses:  []string{"Prix élevé", "Nécessite stockage sec"},
		},
		{
			ID:          2,
			Name:        "Semences Blé Dur Vitron",
			Category:    entity.CategorySeeds,
			Price:       decimal.NewFromInt(180),
			Rating:      4.8,
			Reviews:     89,
			Image:       "/placeholder.svg",
			Description: "Variété résistante à la sécheresse",
			Strengths:   []string{"Résistant", "Haut rendement", "Adapté au climat"},
			Weaknesses:  []string{"Cycle long", "Sensible aux maladies fongiques"},
		},
		{
			ID:          3,
			Name:        "Insecticide Cyperméthrine",
			Category:    entity.CategoryPhytosanitary,
			Price:       decimal.NewFromInt(950),
			Rating:      4.2,
			Reviews:     67,
			Image:       "/placeholder.svg",
			Description: "Protection efficace contre les insectes",
			Strengths:   []string{"Efficace", "Action rapide", "Large spectre"},
			Weaknesses:  []string{"Toxique", "Résistance possible"},
		},
		{
			ID:          4,
			Name:        "Irrigation Goutte-à-Goutte Kit",
			Category:    entity.CategoryIrrigation,
			Price:       decimal.NewFromInt(4200),
			Rating:      4.6,
			Reviews:     156,
			Image:       "/placeholder.svg",
			Description: "Système d'irrigation économique",
			Strengths:   []string{"Économie d'eau", "Installation facile", "Durabilité"},
			Weaknesses:  []string{"Investissement initial", "Maintenance requise"},
		},
	}
}
