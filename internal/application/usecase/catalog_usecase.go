package usecase

import (
	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/domain"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/comparison"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/repository"
)

// Limite de sélection de l'outil de comparaison (3 cases cochables au maximum).
const maxCompareProducts = 3

// CatalogUseCase lectures du catalogue public et outil de comparaison.
type CatalogUseCase struct {
	repo repository.ProductRepository
}

// NewCatalogUseCase construit le cas d'usage.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List renvoie le catalogue, filtré par catégorie si demandé
// ("" ou "Tous" renvoient tout), avec la liste des catégories.
func (uc *CatalogUseCase) List(category string) (*dto.ProductListResponse, error) {
	if category == "" {
		category = entity.CategoryAll
	}
	products, err := uc.repo.List(category)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items:      items,
		Categories: uc.repo.Categories(),
	}, nil
}

// Categories renvoie les catégories de filtrage, « Tous » en tête.
func (uc *CatalogUseCase) Categories() *dto.CategoryListResponse {
	return &dto.CategoryListResponse{Categories: uc.repo.Categories()}
}

// Compare renvoie les produits sélectionnés et la phrase d'analyse.
// Erreurs : ErrInvalidInput si la sélection est vide ou dépasse 3,
// ErrNotFound si un identifiant est inconnu.
func (uc *CatalogUseCase) Compare(in dto.CompareRequest) (*dto.CompareResponse, error) {
	if len(in.ProductIDs) == 0 || len(in.ProductIDs) > maxCompareProducts {
		return nil, domain.ErrInvalidInput
	}

	products := make([]entity.Product, 0, len(in.ProductIDs))
	for _, id := range in.ProductIDs {
		p, err := uc.repo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		products = append(products, *p)
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return &dto.CompareResponse{
		Products: items,
		Analysis: comparison.Analyze(products),
	}, nil
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Image:       p.Image,
		Description: p.Description,
		Strengths:   p.Strengths,
		Weaknesses:  p.Weaknesses,
	}
}
