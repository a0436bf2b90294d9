package usecase

import (
	"context"

	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/repository"
)

// Onglets de la console boutique. L'onglet suppliers n'apparaît que pour
// les admins, comme la cinquième colonne de l'interface d'origine.
var (
	supplierTabs = []string{"dashboard", "products", "promotions", "analytics"}
	adminTabs    = []string{"dashboard", "products", "promotions", "analytics", "suppliers"}
)

// ConsoleUseCase assemble la console boutique pour le rôle courant :
// onglets visibles et tableau de bord correspondant.
type ConsoleUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewConsoleUseCase construit le cas d'usage.
func NewConsoleUseCase(analyticsRepo repository.AnalyticsRepository) *ConsoleUseCase {
	return &ConsoleUseCase{analyticsRepo: analyticsRepo}
}

// GetConsole construit la réponse de la console pour l'identité donnée.
// Les deux lectures du tableau de bord partent en parallèle.
func (uc *ConsoleUseCase) GetConsole(ctx context.Context, id entity.Identity) (*dto.ConsoleResponse, error) {
	if id.Role == entity.RoleAdmin {
		return uc.adminConsole(ctx)
	}
	return uc.supplierConsole(ctx)
}

func (uc *ConsoleUseCase) adminConsole(ctx context.Context) (*dto.ConsoleResponse, error) {
	type overviewResult struct {
		overview repository.AdminOverviewResult
		err      error
	}
	type disputesResult struct {
		disputes []repository.DisputeResult
		err      error
	}

	overviewCh := make(chan overviewResult, 1)
	disputesCh := make(chan disputesResult, 1)

	go func() {
		o, err := uc.analyticsRepo.AdminOverview(ctx)
		overviewCh <- overviewResult{o, err}
	}()
	go func() {
		d, err := uc.analyticsRepo.Disputes(ctx)
		disputesCh <- disputesResult{d, err}
	}()

	overview := <-overviewCh
	disputes := <-disputesCh
	if overview.err != nil {
		return nil, overview.err
	}
	if disputes.err != nil {
		return nil, disputes.err
	}

	items := make([]dto.DisputeDTO, 0, len(disputes.disputes))
	for _, d := range disputes.disputes {
		items = append(items, dto.DisputeDTO{
			ID:       d.ID,
			Supplier: d.Supplier,
			Customer: d.Customer,
			Issue:    d.Issue,
			Priority: d.Priority,
			Status:   d.Status,
		})
	}

	return &dto.ConsoleResponse{
		Role:  entity.RoleAdmin,
		Title: "Centre d'Administration",
		Tabs:  adminTabs,
		Admin: &dto.AdminDashboardDTO{
			ActiveSuppliers: overview.overview.ActiveSuppliers,
			NewThisMonth:    overview.overview.NewThisMonth,
			PendingRequests: overview.overview.PendingRequests,
			OpenDisputes:    overview.overview.OpenDisputes,
			PlatformRevenue: overview.overview.PlatformRevenue,
			Disputes:        items,
		},
	}, nil
}

func (uc *ConsoleUseCase) supplierConsole(ctx context.Context) (*dto.ConsoleResponse, error) {
	type statsResult struct {
		stats repository.SupplierStatsResult
		err   error
	}
	type activityResult struct {
		activity []repository.ActivityResult
		err      error
	}

	statsCh := make(chan statsResult, 1)
	activityCh := make(chan activityResult, 1)

	go func() {
		s, err := uc.analyticsRepo.SupplierStats(ctx)
		statsCh <- statsResult{s, err}
	}()
	go func() {
		a, err := uc.analyticsRepo.RecentActivity(ctx)
		activityCh <- activityResult{a, err}
	}()

	stats := <-statsCh
	activity := <-activityCh
	if stats.err != nil {
		return nil, stats.err
	}
	if activity.err != nil {
		return nil, activity.err
	}

	items := make([]dto.ActivityDTO, 0, len(activity.activity))
	for _, a := range activity.activity {
		items = append(items, dto.ActivityDTO{
			Action: a.Action,
			Item:   a.Item,
			Time:   a.Time,
			Status: a.Status,
		})
	}

	return &dto.ConsoleResponse{
		Role:  entity.RoleSupplier,
		Title: "Tableau de Bord Fournisseur",
		Tabs:  supplierTabs,
		Supplier: &dto.SupplierBoardDTO{
			TotalProducts:    stats.stats.TotalProducts,
			ActivePromotions: stats.stats.ActivePromotions,
			MonthlyOrders:    stats.stats.MonthlyOrders,
			Rating:           stats.stats.Rating,
			CompletionRate:   stats.stats.CompletionRate,
			Verification:     stats.stats.Verification,
			RecentActivity:   items,
		},
	}, nil
}
