package repository

import "github.com/rayaneflai9-afk/phynteck/internal/domain/entity"

// ProductRepository définit le port de lecture du catalogue public (DIP).
// Les implémentations sont read-only : le catalogue d'exemple ne se modifie pas.
type ProductRepository interface {
	// List renvoie les produits, filtrés par catégorie si category != "Tous".
	List(category string) ([]entity.Product, error)
	// GetByID renvoie nil (sans erreur) si le produit n'existe pas.
	GetByID(id int) (*entity.Product, error)
	// Categories renvoie la liste des catégories, "Tous" en tête.
	Categories() []string
}

// ShopProductRepository définit le port de lecture du catalogue géré
// dans la console boutique.
type ShopProductRepository interface {
	List() ([]entity.ShopProduct, error)
}
