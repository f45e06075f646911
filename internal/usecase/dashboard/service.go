package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/marketfolio-backend/internal/domain"
	"github.com/simaogato/marketfolio-backend/internal/usecase/investment"
)

// DashboardService handles portfolio-level figures
type DashboardService struct {
	AccountRepo       domain.AccountRepository
	InvestmentService *investment.InvestmentService
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(accountRepo domain.AccountRepository, investmentService *investment.InvestmentService) *DashboardService {
	return &DashboardService{
		AccountRepo:       accountRepo,
		InvestmentService: investmentService,
	}
}

// GetPortfolioSummary aggregates bought total and gain of every investment
// Logic:
//   - Each investment is summarized against its live quote
//   - Investments whose price is still loading are counted as pending, not summed
//   - GainPercent = GainTotal / BoughtTotal × 100 over the priced investments
func (s *DashboardService) GetPortfolioSummary(ctx context.Context, accountID uuid.UUID) (*domain.PortfolioSummary, error) {
	account, err := s.AccountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	summary := &domain.PortfolioSummary{}
	for _, inv := range account.Market.Investments {
		quote := s.InvestmentService.Quote(ctx, inv.ItemID)
		summary.Include(domain.Summarize(inv, quote))
	}

	return summary, nil
}
