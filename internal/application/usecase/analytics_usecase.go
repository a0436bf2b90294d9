package usecase

import (
	"context"

	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/repository"
)

// AnalyticsUseCase onglet analytique de la console. Les métriques boutique
// sont servies à tous; le bloc plateforme est réservé aux admins.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construit le cas d'usage.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// GetAnalytics construit la réponse pour le rôle donné. Pour un admin, les
// deux lectures partent en parallèle, à la manière du tableau de bord.
func (uc *AnalyticsUseCase) GetAnalytics(ctx context.Context, role string) (*dto.AnalyticsResponse, error) {
	type metricsResult struct {
		metrics repository.SupplierMetricsResult
		err     error
	}
	type platformResult struct {
		platform repository.PlatformMetricsResult
		err      error
	}

	metricsCh := make(chan metricsResult, 1)
	go func() {
		m, err := uc.repo.SupplierMetrics(ctx)
		metricsCh <- metricsResult{m, err}
	}()

	var platformCh chan platformResult
	if role == entity.RoleAdmin {
		platformCh = make(chan platformResult, 1)
		go func() {
			p, err := uc.repo.PlatformMetrics(ctx)
			platformCh <- platformResult{p, err}
		}()
	}

	metrics := <-metricsCh
	if metrics.err != nil {
		return nil, metrics.err
	}

	top := make([]dto.TopProductDTO, 0, len(metrics.metrics.TopProducts))
	for _, t := range metrics.metrics.TopProducts {
		top = append(top, dto.TopProductDTO{Name: t.Name, Sales: t.Sales, Revenue: t.Revenue})
	}

	out := &dto.AnalyticsResponse{
		TotalViews:           metrics.metrics.TotalViews,
		ConversionRate:       metrics.metrics.ConversionRate,
		AvgOrderValue:        metrics.metrics.AvgOrderValue,
		CustomerSatisfaction: metrics.metrics.CustomerSatisfaction,
		TopProducts:          top,
	}

	if platformCh != nil {
		platform := <-platformCh
		if platform.err != nil {
			return nil, platform.err
		}
		out.Platform = &dto.PlatformMetricsDTO{
			TotalSuppliers:    platform.platform.TotalSuppliers,
			MonthlyGrowth:     platform.platform.MonthlyGrowth,
			TotalTransactions: platform.platform.TotalTransactions,
			PlatformRevenue:   platform.platform.PlatformRevenue,
		}
	}

	return out, nil
}
