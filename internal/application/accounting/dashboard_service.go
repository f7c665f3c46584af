package accounting

import (
	"context"
	"errors"
	"time"

	"github.com/storeops/backend/internal/domain/finance"
	"github.com/storeops/backend/internal/domain/order"
	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SummaryFilter is the request filter for the dashboard summary
type SummaryFilter struct {
	Period     string     `form:"period"`
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
	EmployeeID *uuid.UUID `form:"employee_id"`
}

// DashboardService fetches the period snapshot and runs the aggregation.
// Fetching and computing are kept apart: the aggregation itself never touches
// a repository, so it stays a pure, replayable function.
type DashboardService struct {
	orderRepo      order.Repository
	expenseRepo    finance.ExpenseRepository
	settlementRepo finance.SettlementRepository
	accountingRepo finance.AccountingRepository
	logger         *zap.Logger
	now            func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	orderRepo order.Repository,
	expenseRepo finance.ExpenseRepository,
	settlementRepo finance.SettlementRepository,
	accountingRepo finance.AccountingRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		orderRepo:      orderRepo,
		expenseRepo:    expenseRepo,
		settlementRepo: settlementRepo,
		accountingRepo: accountingRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// resolveRange turns the filter into a concrete window. An explicit from/to
// pair wins over the named period token.
func (s *DashboardService) resolveRange(filter SummaryFilter) TimeRange {
	if filter.From != nil && filter.To != nil {
		// Make the upper bound inclusive of the whole day.
		to := filter.To.Add(24*time.Hour - time.Nanosecond)
		return TimeRange{From: *filter.From, To: to}
	}
	if filter.Period != "" && !IsValidPeriod(filter.Period) {
		s.logger.Debug("Unrecognized period token, using month",
			zap.String("period", filter.Period),
		)
	}
	return ResolvePeriod(filter.Period, s.now())
}

// load fetches everything the aggregation needs for the window. A missing
// accounting row is tolerated: the aggregation degrades to the zero summary
// so the dashboard renders zeros instead of an error page.
func (s *DashboardService) load(ctx context.Context, filter SummaryFilter) (Input, error) {
	window := s.resolveRange(filter)

	orders, err := s.orderRepo.FindInPeriod(ctx, window.From, window.To)
	if err != nil {
		return Input{}, err
	}
	if orders == nil {
		orders = make([]order.Order, 0)
	}

	expenses, err := s.expenseRepo.FindInPeriod(ctx, window.From, window.To)
	if err != nil {
		return Input{}, err
	}

	settlements, err := s.settlementRepo.FindInvoicesInPeriod(ctx, window.From, window.To)
	if err != nil {
		return Input{}, err
	}

	acct, err := s.accountingRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return Input{}, err
		}
		s.logger.Warn("Accounting row missing, returning zero summary")
		acct = nil
	}

	var ledger []finance.ProfitLedgerEntry
	if filter.EmployeeID != nil {
		orderIDs := make([]uuid.UUID, 0, len(orders))
		for _, o := range orders {
			if o.CreatedBy == *filter.EmployeeID && o.CountsTowardRevenue() {
				orderIDs = append(orderIDs, o.ID)
			}
		}
		if len(orderIDs) > 0 {
			ledger, err = s.settlementRepo.FindLedgerEntriesByOrders(ctx, orderIDs)
			if err != nil {
				return Input{}, err
			}
		}
	}

	return Input{
		Orders:        orders,
		Expenses:      expenses,
		Settlements:   settlements,
		LedgerEntries: ledger,
		Accounting:    acct,
		Range:         window,
		EmployeeID:    filter.EmployeeID,
	}, nil
}

// GetSummary loads the period snapshot and computes the financial summary
func (s *DashboardService) GetSummary(ctx context.Context, filter SummaryFilter) (*SummaryResponse, error) {
	in, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := Aggregate(in)

	s.logger.Debug("Financial summary computed",
		zap.Time("from", in.Range.From),
		zap.Time("to", in.Range.To),
		zap.Int("orders", len(in.Orders)),
		zap.Int64("delivered_orders", summary.SalesMetrics.DeliveredOrders),
	)

	resp := summary.ToResponse()
	return &resp, nil
}

// GetEmployeeProfit computes one employee's profit breakdown for the period
// plus the total already paid out to them across completed settlements.
func (s *DashboardService) GetEmployeeProfit(ctx context.Context, employeeID uuid.UUID, filter SummaryFilter) (*EmployeeProfitResponse, error) {
	filter.EmployeeID = &employeeID

	in, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}
	summary := Aggregate(in)

	completed, err := s.settlementRepo.FindCompletedByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	settledDues := decimalSum(completed)

	return &EmployeeProfitResponse{
		EmployeeID:     employeeID.String(),
		PersonalProfit: toFloat64(summary.UserPersonalProfit),
		SettledProfit:  toFloat64(summary.PersonalProfitSplit.Settled),
		PendingProfit:  toFloat64(summary.PersonalProfitSplit.Pending),
		SettledDues:    settledDues,
	}, nil
}

func decimalSum(invoices []finance.SettlementInvoice) float64 {
	total := 0.0
	for _, si := range invoices {
		total += toFloat64(si.TotalAmount)
	}
	return total
}
