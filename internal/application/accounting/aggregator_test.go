package accounting

import (
	"testing"
	"time"

	"github.com/storeops/backend/internal/domain/finance"
	"github.com/storeops/backend/internal/domain/order"
	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testFrom = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	testTo   = time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	testWindow = TimeRange{From: testFrom, To: testTo}
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func testAccounting(capital float64) *finance.Accounting {
	return &finance.Accounting{
		BaseEntity: shared.NewBaseEntity(),
		Capital:    dec(capital),
	}
}

// deliveredOrder builds an order inside the test window with one line item
func deliveredOrder(employeeID uuid.UUID, receipt bool, qty int64, unitPrice, costPrice, deliveryFee, finalAmount float64) order.Order {
	final := dec(finalAmount)
	created := testFrom.Add(48 * time.Hour)
	return order.Order{
		BaseEntity: shared.BaseEntity{
			ID:        uuid.New(),
			CreatedAt: created,
			UpdatedAt: created,
		},
		OrderNumber:     "SO-0001",
		Status:          order.StatusDelivered,
		ReceiptReceived: receipt,
		TotalAmount:     dec(unitPrice * float64(qty)),
		FinalAmount:     &final,
		DeliveryFee:     dec(deliveryFee),
		CreatedBy:       employeeID,
		Items: []order.Item{
			{
				ProductID: uuid.New(),
				Quantity:  qty,
				UnitPrice: dec(unitPrice),
				CostPrice: dec(costPrice),
			},
		},
	}
}

func expense(amount float64, category string) finance.Expense {
	return finance.Expense{
		BaseEntity:      shared.NewBaseEntity(),
		Amount:          dec(amount),
		Category:        category,
		TransactionDate: testFrom.Add(24 * time.Hour),
	}
}

func TestAggregate_DeliveredReceiptedOrder(t *testing.T) {
	// One delivered, receipt-confirmed order: 2 x 100 at cost 60,
	// delivery fee 10, final amount 210.
	employee := uuid.New()
	in := Input{
		Orders:     []order.Order{deliveredOrder(employee, true, 2, 100, 60, 10, 210)},
		Accounting: testAccounting(10000),
		Range:      testWindow,
	}

	s := Aggregate(in)

	assert.InDelta(t, 210, toFloat64(s.TotalRevenue), 1e-9)
	assert.InDelta(t, 10, toFloat64(s.DeliveryFees), 1e-9)
	assert.InDelta(t, 200, toFloat64(s.SalesWithoutDelivery), 1e-9)
	assert.InDelta(t, 120, toFloat64(s.COGS), 1e-9)
	assert.InDelta(t, 80, toFloat64(s.GrossProfit), 1e-9)
	assert.InDelta(t, 80.0/210.0*100, toFloat64(s.GrossProfitMargin), 1e-9)
	assert.Equal(t, int64(1), s.SalesMetrics.DeliveredOrders)
	assert.InDelta(t, 210, toFloat64(s.SalesMetrics.AverageOrderValue), 1e-9)
}

func TestAggregate_ReceiptNotConfirmedExcluded(t *testing.T) {
	// Same order but the delivery-partner receipt is missing: nothing is
	// recognized, the order only shows up in the funnel count.
	employee := uuid.New()
	in := Input{
		Orders:     []order.Order{deliveredOrder(employee, false, 2, 100, 60, 10, 210)},
		Accounting: testAccounting(10000),
		Range:      testWindow,
	}

	s := Aggregate(in)

	assert.True(t, s.TotalRevenue.IsZero())
	assert.True(t, s.COGS.IsZero())
	assert.True(t, s.GrossProfit.IsZero())
	assert.Equal(t, int64(1), s.SalesMetrics.TotalOrders)
	assert.Equal(t, int64(0), s.SalesMetrics.DeliveredOrders)
	assert.Empty(t, s.ChartData)
}

func TestAggregate_NonDeliveredStatusesExcluded(t *testing.T) {
	employee := uuid.New()
	statuses := []order.Status{
		order.StatusPending, order.StatusProcessing, order.StatusShipped,
		order.StatusDelivery, order.StatusReturned, order.StatusReturnedInStock,
		order.StatusCancelled,
	}
	orders := make([]order.Order, 0, len(statuses))
	for _, st := range statuses {
		o := deliveredOrder(employee, true, 1, 50, 30, 5, 55)
		o.Status = st
		orders = append(orders, o)
	}

	s := Aggregate(Input{Orders: orders, Accounting: testAccounting(1000), Range: testWindow})

	assert.True(t, s.TotalRevenue.IsZero())
	assert.True(t, s.COGS.IsZero())
	assert.Equal(t, int64(len(statuses)), s.SalesMetrics.TotalOrders)
	assert.Equal(t, int64(0), s.SalesMetrics.DeliveredOrders)
}

func TestAggregate_ExpenseBuckets(t *testing.T) {
	// General, employee-dues and merchandise-purchase expenses land in
	// separate buckets; purchases never reduce net profit.
	in := Input{
		Orders: []order.Order{deliveredOrder(uuid.New(), true, 10, 100, 50, 0, 1000)},
		Expenses: []finance.Expense{
			expense(500, "عام"),
			expense(200, finance.CategoryEmployeeDues),
			expense(300, finance.CategoryMerchandisePurchase),
		},
		Accounting: testAccounting(10000),
		Range:      testWindow,
	}

	s := Aggregate(in)

	assert.InDelta(t, 500, toFloat64(s.OperatingExpenses), 1e-9)
	assert.InDelta(t, 200, toFloat64(s.EmployeeExpenses), 1e-9)
	assert.InDelta(t, 300, toFloat64(s.PurchaseExpenses), 1e-9)
	assert.InDelta(t, 1000, toFloat64(s.TotalExpenses), 1e-9)

	// grossProfit = 1000 - 500 = 500; netProfit = 500 - 500 - 200 = -200
	assert.InDelta(t, 500, toFloat64(s.GrossProfit), 1e-9)
	assert.InDelta(t, -200, toFloat64(s.NetProfit), 1e-9)
}

func TestAggregate_ExpensesOutsidePeriodIgnored(t *testing.T) {
	late := expense(999, "عام")
	late.TransactionDate = testTo.Add(time.Hour)

	s := Aggregate(Input{
		Orders:     []order.Order{},
		Expenses:   []finance.Expense{late},
		Accounting: testAccounting(1000),
		Range:      testWindow,
	})

	assert.True(t, s.TotalExpenses.IsZero())
}

func TestAggregate_ZeroDenominators(t *testing.T) {
	// Zero revenue, zero capital, zero expenses: every ratio guards its
	// denominator and resolves to 0.
	s := Aggregate(Input{
		Orders:     []order.Order{},
		Accounting: testAccounting(0),
		Range:      testWindow,
	})

	assert.True(t, s.GrossProfitMargin.IsZero())
	assert.True(t, s.NetProfitMargin.IsZero())
	assert.True(t, s.ROI.IsZero())
	assert.True(t, s.Liquidity.RunwayDays.IsZero())
	assert.True(t, s.SalesMetrics.ConversionRate.IsZero())
	assert.True(t, s.SalesMetrics.AverageOrderValue.IsZero())
}

func TestAggregate_MissingCollectionsShortCircuit(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"nil orders", Input{Accounting: testAccounting(100), Range: testWindow}},
		{"nil accounting", Input{Orders: []order.Order{}, Range: testWindow}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Aggregate(tt.in)
			assert.Equal(t, zeroSummary(), s)
			assert.NotNil(t, s.ChartData)
		})
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	employee := uuid.New()
	in := Input{
		Orders: []order.Order{
			deliveredOrder(employee, true, 2, 100, 60, 10, 210),
			deliveredOrder(employee, false, 1, 40, 20, 5, 45),
		},
		Expenses:   []finance.Expense{expense(100, "عام")},
		Accounting: testAccounting(5000),
		Range:      testWindow,
		EmployeeID: &employee,
	}

	first := Aggregate(in)
	second := Aggregate(in)
	assert.Equal(t, first, second)
}

func TestAggregate_GrossAndNetProfitIdentities(t *testing.T) {
	employee := uuid.New()
	in := Input{
		Orders: []order.Order{
			deliveredOrder(employee, true, 3, 70, 45, 15, 225),
			deliveredOrder(employee, true, 1, 120, 90, 0, 120),
		},
		Expenses: []finance.Expense{
			expense(50, "تسويق"),
			expense(25, finance.CategoryEmployeeDues),
			expense(500, finance.CategoryMerchandisePurchase),
		},
		Accounting: testAccounting(2000),
		Range:      testWindow,
	}

	s := Aggregate(in)

	assert.True(t, s.GrossProfit.Equal(s.SalesWithoutDelivery.Sub(s.COGS)))
	assert.True(t, s.NetProfit.Equal(s.GrossProfit.Sub(s.OperatingExpenses).Sub(s.EmployeeExpenses)))
	assert.True(t, s.CashFlow.Net.Equal(s.CashFlow.Inflow.Sub(s.CashFlow.Outflow)))
}

func TestAggregate_DailySeries(t *testing.T) {
	employee := uuid.New()
	first := deliveredOrder(employee, true, 1, 100, 60, 0, 100)
	first.UpdatedAt = time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC)
	second := deliveredOrder(employee, true, 2, 50, 30, 0, 100)
	second.UpdatedAt = time.Date(2026, 8, 7, 9, 0, 0, 0, time.UTC)

	s := Aggregate(Input{
		Orders:     []order.Order{first, second},
		Accounting: testAccounting(1000),
		Range:      testWindow,
	})

	require.Len(t, s.ChartData, 2)
	assert.Equal(t, "2026-08-05", s.ChartData[0].Date)
	assert.Equal(t, "2026-08-07", s.ChartData[1].Date)
	assert.InDelta(t, 100, toFloat64(s.ChartData[0].Revenue), 1e-9)
	assert.Equal(t, int64(1), s.ChartData[0].Orders)
	assert.InDelta(t, 40, toFloat64(s.ChartData[0].Profit), 1e-9)
	assert.InDelta(t, 100, toFloat64(s.ChartData[1].Revenue), 1e-9)
	assert.InDelta(t, 40, toFloat64(s.ChartData[1].Profit), 1e-9)
}

func TestAggregate_DailySeriesFallsBackToCreatedAt(t *testing.T) {
	employee := uuid.New()
	o := deliveredOrder(employee, true, 1, 100, 60, 0, 100)
	o.CreatedAt = time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC)
	o.UpdatedAt = time.Time{}

	s := Aggregate(Input{
		Orders:     []order.Order{o},
		Accounting: testAccounting(1000),
		Range:      testWindow,
	})

	require.Len(t, s.ChartData, 1)
	assert.Equal(t, "2026-08-10", s.ChartData[0].Date)
}

func TestAggregate_ROIAndLiquidity(t *testing.T) {
	in := Input{
		Orders:     []order.Order{deliveredOrder(uuid.New(), true, 10, 100, 40, 0, 1000)},
		Expenses:   []finance.Expense{expense(300, "عام")},
		Accounting: testAccounting(3000),
		Range:      testWindow,
	}

	s := Aggregate(in)

	// netProfit = (1000 - 600) - 300 = 300; roi = 300/3000*100 = 10
	assert.InDelta(t, 10, toFloat64(s.ROI), 1e-9)
	assert.InDelta(t, 2700, toFloat64(s.Liquidity.CurrentCash), 1e-9)
	assert.InDelta(t, 10, toFloat64(s.Liquidity.BurnRate), 1e-9)
	assert.InDelta(t, 300, toFloat64(s.Liquidity.RunwayDays), 1e-9)
}

func TestAggregate_FinalAmountFallback(t *testing.T) {
	employee := uuid.New()
	o := deliveredOrder(employee, true, 2, 100, 60, 0, 210)
	o.FinalAmount = nil

	s := Aggregate(Input{
		Orders:     []order.Order{o},
		Accounting: testAccounting(1000),
		Range:      testWindow,
	})

	assert.InDelta(t, 200, toFloat64(s.TotalRevenue), 1e-9)
}

func TestAggregate_SettledDues(t *testing.T) {
	inRange := finance.SettlementInvoice{
		BaseEntity:     shared.NewBaseEntity(),
		EmployeeID:     uuid.New(),
		TotalAmount:    dec(150),
		SettlementDate: testFrom.Add(time.Hour),
		Status:         finance.SettlementStatusPending,
	}
	outOfRange := inRange
	outOfRange.TotalAmount = dec(999)
	outOfRange.SettlementDate = testTo.Add(time.Hour)

	s := Aggregate(Input{
		Orders:      []order.Order{},
		Settlements: []finance.SettlementInvoice{inRange, outOfRange},
		Accounting:  testAccounting(1000),
		Range:       testWindow,
	})

	// No status filter at this level: a pending in-range invoice counts.
	assert.InDelta(t, 150, toFloat64(s.TotalSettledDues), 1e-9)
}

func TestAggregate_EmployeeProfitSplit(t *testing.T) {
	employee := uuid.New()
	other := uuid.New()

	settled := deliveredOrder(employee, true, 2, 100, 60, 0, 200)  // profit 80
	unsettled := deliveredOrder(employee, true, 1, 50, 20, 0, 50)  // profit 30
	unreceipted := deliveredOrder(employee, false, 1, 40, 10, 0, 40) // profit 30, pending
	foreign := deliveredOrder(other, true, 5, 100, 10, 0, 500)

	ledger := []finance.ProfitLedgerEntry{
		{BaseEntity: shared.NewBaseEntity(), OrderID: settled.ID, EmployeeID: employee, Amount: dec(80)},
	}

	s := Aggregate(Input{
		Orders:        []order.Order{settled, unsettled, unreceipted, foreign},
		LedgerEntries: ledger,
		Accounting:    testAccounting(1000),
		Range:         testWindow,
		EmployeeID:    &employee,
	})

	// Personal profit covers only recognized orders: 80 + 30.
	assert.InDelta(t, 110, toFloat64(s.UserPersonalProfit), 1e-9)
	assert.InDelta(t, 80, toFloat64(s.PersonalProfitSplit.Settled), 1e-9)
	// Pending: recognized-but-unsettled 30, plus unreceipted 30.
	assert.InDelta(t, 60, toFloat64(s.PersonalProfitSplit.Pending), 1e-9)
}

func TestAggregate_ConversionRate(t *testing.T) {
	employee := uuid.New()
	orders := []order.Order{
		deliveredOrder(employee, true, 1, 100, 50, 0, 100),
		deliveredOrder(employee, false, 1, 100, 50, 0, 100),
		deliveredOrder(employee, true, 1, 100, 50, 0, 100),
	}
	orders[1].Status = order.StatusPending

	s := Aggregate(Input{Orders: orders, Accounting: testAccounting(1000), Range: testWindow})

	assert.Equal(t, int64(3), s.SalesMetrics.TotalOrders)
	assert.Equal(t, int64(2), s.SalesMetrics.DeliveredOrders)
	assert.InDelta(t, 2.0/3.0*100, toFloat64(s.SalesMetrics.ConversionRate), 1e-9)
}

func TestAggregate_OrdersOutsidePeriodIgnored(t *testing.T) {
	employee := uuid.New()
	early := deliveredOrder(employee, true, 1, 100, 50, 0, 100)
	early.CreatedAt = testFrom.Add(-time.Hour)

	boundary := deliveredOrder(employee, true, 1, 100, 50, 0, 100)
	boundary.CreatedAt = testFrom // inclusive lower bound

	s := Aggregate(Input{
		Orders:     []order.Order{early, boundary},
		Accounting: testAccounting(1000),
		Range:      testWindow,
	})

	assert.Equal(t, int64(1), s.SalesMetrics.TotalOrders)
	assert.InDelta(t, 100, toFloat64(s.TotalRevenue), 1e-9)
}
