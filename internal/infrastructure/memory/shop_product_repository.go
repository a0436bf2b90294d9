package memory

import "github.com/rayaneflai9-afk/phynteck/internal/domain/entity"

// ShopProductRepository sert le catalogue géré d'exemple de la console.
type ShopProductRepository struct {
	products []entity.ShopProduct
}

// NewShopProductRepository construit le repository avec le jeu d'exemple.
func NewShopProductRepository() *ShopProductRepository {
	return &ShopProductRepository{
		products: []entity.ShopProduct{
			{
				ID:       1,
				Name:     "Tracteur Massey Ferguson 5710",
				Category: "Équipements",
				Price:    "2,500,000 DA",
				Stock:    3,
				Status:   entity.ShopProductActive,
				SKU:      "MF-5710-2024",
			},
			{
				ID:       2,
				Name:     "Graines de Blé Bio Premium",
				Category: "Semences",
				Price:    "15,000 DA/kg",
				Stock:    150,
				Status:   entity.ShopProductActive,
				SKU:      "BLE-BIO-001",
			},
			{
				ID:       3,
				Name:     "Engrais Organique NPK",
				Category: "Fertilisants",
				Price:    "8,500 DA/sac",
				Stock:    0,
				Status:   entity.ShopProductOutOfStock,
				SKU:      "NPK-ORG-50",
			},
		},
	}
}

// List renvoie le catalogue géré.
func (r *ShopProductRepository) List() ([]entity.ShopProduct, error) {
	return append([]entity.ShopProduct(nil), r.products...), nil
}
