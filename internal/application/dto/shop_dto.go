package dto

import "github.com/shopspring/decimal"

// ConsoleResponse description de la console boutique pour le rôle courant :
// onglets visibles et tableau de bord correspondant. Un seul des deux champs
// Admin/Supplier est renseigné.
type ConsoleResponse struct {
	Role     string             `json:"role"`
	Title    string             `json:"title"`
	Tabs     []string           `json:"tabs"`
	Admin    *AdminDashboardDTO `json:"admin,omitempty"`
	Supplier *SupplierBoardDTO  `json:"supplier,omitempty"`
}

// AdminDashboardDTO vue d'ensemble du centre d'administration.
type AdminDashboardDTO struct {
	ActiveSuppliers int             `json:"activeSuppliers"`
	NewThisMonth    int             `json:"newThisMonth"`
	PendingRequests int             `json:"pendingRequests"`
	OpenDisputes    int             `json:"openDisputes"`
	PlatformRevenue decimal.Decimal `json:"platformRevenue"`
	Disputes        []DisputeDTO    `json:"disputes"`
}

// SupplierBoardDTO tableau de bord fournisseur.
type SupplierBoardDTO struct {
	TotalProducts    int           `json:"totalProducts"`
	ActivePromotions int           `json:"activePromotions"`
	MonthlyOrders    int           `json:"monthlyOrders"`
	Rating           float64       `json:"rating"`
	CompletionRate   int           `json:"completionRate"`
	Verification     string        `json:"verificationStatus"`
	RecentActivity   []ActivityDTO `json:"recentActivity"`
}

// ActivityDTO entrée du fil d'activité récente.
type ActivityDTO struct {
	Action string `json:"action"`
	Item   string `json:"item"`
	Time   string `json:"time"`
	Status string `json:"status"`
}

// DisputeDTO litige en cours côté admin.
type DisputeDTO struct {
	ID       int    `json:"id"`
	Supplier string `json:"supplier"`
	Customer string `json:"customer"`
	Issue    string `json:"issue"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

// ShopProductDTO ligne du catalogue géré.
type ShopProductDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
	Status   string `json:"status"`
	SKU      string `json:"sku"`
}

// ShopProductListResponse catalogue géré avec les compteurs de l'entête.
type ShopProductListResponse struct {
	Items       []ShopProductDTO `json:"items"`
	Total       int              `json:"total"`
	ActiveCount int              `json:"activeCount"`
}

// PromotionDTO offre de la console.
type PromotionDTO struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Value     decimal.Decimal `json:"value"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Status    string          `json:"status"`
	Uses      int             `json:"uses"`
}

// PromotionListResponse promotions actives et total d'utilisations.
type PromotionListResponse struct {
	Items     []PromotionDTO `json:"items"`
	TotalUses int            `json:"totalUses"`
}

// AnalyticsResponse métriques de la boutique; Platform n'est renseigné
// que pour les admins.
type AnalyticsResponse struct {
	TotalViews           int                  `json:"totalViews"`
	ConversionRate       float64              `json:"conversionRate"`
	AvgOrderValue        decimal.Decimal      `json:"avgOrderValue"`
	CustomerSatisfaction float64              `json:"customerSatisfaction"`
	TopProducts          []TopProductDTO      `json:"topProducts"`
	Platform             *PlatformMetricsDTO  `json:"platform,omitempty"`
}

// TopProductDTO ligne du widget « meilleures ventes ».
type TopProductDTO struct {
	Name    string `json:"name"`
	Sales   int    `json:"sales"`
	Revenue string `json:"revenue"`
}

// PlatformMetricsDTO métriques globales de la plateforme.
type PlatformMetricsDTO struct {
	TotalSuppliers    int             `json:"totalSuppliers"`
	MonthlyGrowth     float64         `json:"monthlyGrowth"`
	TotalTransactions int             `json:"totalTransactions"`
	PlatformRevenue   decimal.Decimal `json:"platformRevenue"`
}

// SupplierApplicationDTO demande d'inscription examinée par l'admin.
type SupplierApplicationDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	Submitted string `json:"submitted"`
}

// SupplierApplicationListResponse liste des demandes.
type SupplierApplicationListResponse struct {
	Items []SupplierApplicationDTO `json:"items"`
}
