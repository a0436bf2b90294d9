package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// SupplierStatsResult chiffres clés du tableau de bord fournisseur.
type SupplierStatsResult struct {
	TotalProducts    int
	ActivePromotions int
	MonthlyOrders    int
	Rating           float64
	CompletionRate   int
	Verification     string // verified, pending
}

// AdminOverviewResult compteurs du centre d'administration.
type AdminOverviewResult struct {
	ActiveSuppliers int
	NewThisMonth    int
	PendingRequests int
	OpenDisputes    int
	PlatformRevenue decimal.Decimal // DA, mois en cours
}

// SupplierMetricsResult métriques analytiques de la boutique.
type SupplierMetricsResult struct {
	TotalViews           int
	ConversionRate       float64 // pourcentage
	AvgOrderValue        decimal.Decimal
	CustomerSatisfaction float64 // note sur 5
	TopProducts          []TopProductResult
}

// TopProductResult ligne du widget « meilleures ventes ».
type TopProductResult struct {
	Name    string
	Sales   int
	Revenue string // libellé formaté ("30M DA")
}

// PlatformMetricsResult métriques globales, visibles des admins seulement.
type PlatformMetricsResult struct {
	TotalSuppliers    int
	MonthlyGrowth     float64 // pourcentage
	TotalTransactions int
	PlatformRevenue   decimal.Decimal
}

// ActivityResult entrée du fil d'activité récente.
type ActivityResult struct {
	Action string
	Item   string
	Time   string // libellé relatif ("Il y a 2h")
	Status string // success, warning, info, expired
}

// DisputeResult litige ouvert entre fournisseur et client.
type DisputeResult struct {
	ID       int
	Supplier string
	Customer string
	Issue    string
	Priority string // high, medium
	Status   string // open, investigating
}

// AnalyticsRepository définit les lectures analytiques de la console.
// Les implémentations sont read-only.
type AnalyticsRepository interface {
	SupplierStats(ctx context.Context) (SupplierStatsResult, error)
	AdminOverview(ctx context.Context) (AdminOverviewResult, error)
	SupplierMetrics(ctx context.Context) (SupplierMetricsResult, error)
	PlatformMetrics(ctx context.Context) (PlatformMetricsResult, error)
	RecentActivity(ctx context.Context) ([]ActivityResult, error)
	Disputes(ctx context.Context) ([]DisputeResult, error)
}
