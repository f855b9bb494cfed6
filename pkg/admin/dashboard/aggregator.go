package dashboard

import (
	"context"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/logger"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/memory"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/unitofwork"
)

// Aggregator handles dashboard statistics
type Aggregator struct {
	logger logger.ILogger
	cache  *memory.StatsCache
}

// NewAggregator creates a new dashboard aggregator
func NewAggregator(logger logger.ILogger, cache *memory.StatsCache) *Aggregator {
	return &Aggregator{
		logger: logger,
		cache:  cache,
	}
}

// GetStats retrieves dashboard statistics, served from cache when warm.
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.DashboardStatsResponse, error) {
	if cached, ok := a.cache.Get(); ok {
		return cached, nil
	}

	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	totalSellers, err := uow.UserRepository().Count(ctx, specification.ByRole{Role: string(entity.UserRoleSeller)})
	if err != nil {
		return nil, err
	}

	totalTickets, err := uow.TicketRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	totalPurchases, err := uow.PurchaseRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	openCases, err := uow.CaseRepository().Count(ctx, specification.FilterBy{Field: "status", Value: string(entity.CaseStatusOpen)})
	if err != nil {
		return nil, err
	}

	refundedTotal, err := uow.WalletRepository().SumAmountByType(ctx, entity.TransactionTypeRefund)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsResponse{
		TotalUsers:     totalUsers,
		TotalSellers:   totalSellers,
		TotalTickets:   totalTickets,
		TotalPurchases: totalPurchases,
		OpenCases:      openCases,
		RefundedTotal:  refundedTotal,
		GeneratedAt:    time.Now(),
	}

	a.cache.Save(stats)
	return stats, nil
}

// Invalidate drops the cached aggregates. Callers invoke this after a
// refund or purchase so the next dashboard load sees fresh numbers.
func (a *Aggregator) Invalidate() {
	a.cache.Invalidate()
}
