package entity

// Statuts d'un produit de boutique.
const (
	ShopProductActive     = "active"
	ShopProductOutOfStock = "out_of_stock"
	ShopProductPending    = "pending"
)

// ShopProduct représente une ligne du catalogue géré dans la console boutique
// (vue fournisseur/admin), distincte de la fiche publique : ici le prix est un
// libellé avec unité ("15,000 DA/kg") et le stock est suivi.
type ShopProduct struct {
	ID       int
	Name     string
	Category string
	Price    string
	Stock    int
	Status   string // active, out_of_stock, pending
	SKU      string
}
