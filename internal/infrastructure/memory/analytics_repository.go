package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rayaneflai9-afk/phynteck/internal/domain/repository"
)

// AnalyticsRepository sert les métriques d'exemple de la console.
// Read-only; le contexte est accepté pour respecter le port (et le futur
// backend), mais aucune lecture ne bloque.
type AnalyticsRepository struct{}

// NewAnalyticsRepository construit le repository.
func NewAnalyticsRepository() *AnalyticsRepository {
	return &AnalyticsRepository{}
}

// SupplierStats chiffres clés du tableau de bord fournisseur.
func (r *AnalyticsRepository) SupplierStats(ctx context.Context) (repository.SupplierStatsResult, error) {
	return repository.SupplierStatsResult{
		TotalProducts:    127,
		ActivePromotions: 8,
		MonthlyOrders:    42,
		Rating:           4.7,
		CompletionRate:   89,
		Verification:     "verified",
	}, nil
}

// AdminOverview compteurs du centre d'administration.
func (r *AnalyticsRepository) AdminOverview(ctx context.Context) (repository.AdminOverviewResult, error) {
	return repository.AdminOverviewResult{
		ActiveSuppliers: 847,
		NewThisMonth:    23,
		PendingRequests: 12,
		OpenDisputes:    5,
		PlatformRevenue: decimal.NewFromInt(2_400_000),
	}, nil
}

// SupplierMetrics métriques analytiques de la boutique.
func (r *AnalyticsRepository) SupplierMetrics(ctx context.Context) (repository.SupplierMetricsResult, error) {
	return repository.SupplierMetricsResult{
		TotalViews:           15420,
		ConversionRate:       3.2,
		AvgOrderValue:        decimal.NewFromInt(125_000),
		CustomerSatisfaction: 4.6,
		TopProducts: []repository.TopProductResult{
			{Name: "Tracteur MF 5710", Sales: 12, Revenue: "30M DA"},
			{Name: "Graines Bio", Sales: 89, Revenue: "1.3M DA"},
			{Name: "Engrais NPK", Sales: 45, Revenue: "380K DA"},
		},
	}, nil
}

// PlatformMetrics métriques globales (admins seulement côté HTTP).
func (r *AnalyticsRepository) PlatformMetrics(ctx context.Context) (repository.PlatformMetricsResult, error) {
	return repository.PlatformMetricsResult{
		TotalSuppliers:    847,
		MonthlyGrowth:     12.5,
		TotalTransactions: 25680,
		PlatformRevenue:   decimal.NewFromInt(2_400_000),
	}, nil
}

// RecentActivity fil d'activité du tableau de bord fournisseur.
func (r *AnalyticsRepository) RecentActivity(ctx context.Context) ([]repository.ActivityResult, error) {
	return []repository.ActivityResult{
		{Action: "Nouvelle commande", Item: "Tracteur Massey Ferguson", Time: "Il y a 2h", Status: "success"},
		{Action: "Stock faible", Item: "Graines de tournesol", Time: "Il y a 4h", Status: "warning"},
		{Action: "Avis client", Item: "Engrais bio premium", Time: "Il y a 6h", Status: "info"},
		{Action: "Promotion expirée", Item: "Pack outils jardinage", Time: "Il y a 1 jour", Status: "expired"},
	}, nil
}

// Disputes litiges ouverts côté admin.
func (r *AnalyticsRepository) Disputes(ctx context.Context) ([]repository.DisputeResult, error) {
	return []repository.DisputeResult{
		{ID: 1, Supplier: "Ferme Bio Alger", Customer: "Ahmed B.", Issue: "Produit non conforme", Priority: "high", Status: "open"},
		{ID: 2, Supplier: "Équipements Sahra", Customer: "Fatima K.", Issue: "Livraison retardée", Priority: "medium", Status: "investigating"},
	}, nil
}
