package usecase

import (
	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/repository"
)

// ShopProductUseCase onglet produits de la console boutique.
type ShopProductUseCase struct {
	repo repository.ShopProductRepository
}

// NewShopProductUseCase construit le cas d'usage.
func NewShopProductUseCase(repo repository.ShopProductRepository) *ShopProductUseCase {
	return &ShopProductUseCase{repo: repo}
}

// List renvoie le catalogue géré et les compteurs de l'entête
// (« N produits • M actifs »).
func (uc *ShopProductUseCase) List() (*dto.ShopProductListResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShopProductDTO, 0, len(products))
	active := 0
	for _, p := range products {
		if p.Status == entity.ShopProductActive {
			active++
		}
		items = append(items, dto.ShopProductDTO{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Stock:    p.Stock,
			Status:   p.Status,
			SKU:      p.SKU,
		})
	}
	return &dto.ShopProductListResponse{
		Items:       items,
		Total:       len(items),
		ActiveCount: active,
	}, nil
}
