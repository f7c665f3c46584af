package accounting

import (
	"sort"

	"github.com/storeops/backend/internal/domain/finance"
	"github.com/storeops/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var thirty = decimal.NewFromInt(30)
var hundred = decimal.NewFromInt(100)

// Input carries everything the aggregation needs, already fetched. A nil
// Orders slice or nil Accounting snapshot means the collection never loaded
// and the whole computation degrades to the zero Summary.
type Input struct {
	Orders        []order.Order
	Expenses      []finance.Expense
	Settlements   []finance.SettlementInvoice
	LedgerEntries []finance.ProfitLedgerEntry
	Accounting    *finance.Accounting
	Range         TimeRange
	EmployeeID    *uuid.UUID
}

// CashFlow is the inflow/outflow/net triple for the period
type CashFlow struct {
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
	Net     decimal.Decimal
}

// SalesMetrics summarizes order funnel performance for the period
type SalesMetrics struct {
	TotalOrders       int64
	DeliveredOrders   int64
	ConversionRate    decimal.Decimal
	AverageOrderValue decimal.Decimal
}

// ChartPoint is one day of the revenue/orders/profit series
type ChartPoint struct {
	Date    string
	Revenue decimal.Decimal
	Orders  int64
	Profit  decimal.Decimal
}

// Liquidity captures cash position and runway
type Liquidity struct {
	CurrentCash decimal.Decimal
	BurnRate    decimal.Decimal
	RunwayDays  decimal.Decimal
}

// ProfitSplit divides an employee's realized and unrealized profit into what
// has been paid out against the ledger and what is still owed
type ProfitSplit struct {
	Settled decimal.Decimal
	Pending decimal.Decimal
}

// Summary is the full derived financial picture for one period. Every field
// is recomputed from scratch on each call; there is no cached state.
type Summary struct {
	TotalRevenue         decimal.Decimal
	DeliveryFees         decimal.Decimal
	SalesWithoutDelivery decimal.Decimal
	COGS                 decimal.Decimal
	GrossProfit          decimal.Decimal
	GrossProfitMargin    decimal.Decimal
	OperatingExpenses    decimal.Decimal
	EmployeeExpenses     decimal.Decimal
	PurchaseExpenses     decimal.Decimal
	TotalExpenses        decimal.Decimal
	NetProfit            decimal.Decimal
	NetProfitMargin      decimal.Decimal
	ROI                  decimal.Decimal
	CashFlow             CashFlow
	SalesMetrics         SalesMetrics
	ChartData            []ChartPoint
	Liquidity            Liquidity
	UserPersonalProfit   decimal.Decimal
	PersonalProfitSplit  ProfitSplit
	TotalSettledDues     decimal.Decimal
}

// zeroSummary returns the all-zero, empty-series Summary
func zeroSummary() Summary {
	return Summary{ChartData: make([]ChartPoint, 0)}
}

// Aggregate computes the full financial summary for the input window. It is
// a pure function over the supplied collections: no I/O, no memoization.
//
// Revenue recognition is strict: only orders that are both delivered and
// receipt-confirmed contribute to revenue, COGS and profit. Delivered orders
// still waiting on their delivery-partner receipt count as pending profit
// instead.
func Aggregate(in Input) Summary {
	if in.Orders == nil || in.Accounting == nil {
		return zeroSummary()
	}

	s := zeroSummary()

	var inPeriod, counted []order.Order
	for _, o := range in.Orders {
		if !in.Range.Contains(o.CreatedAt) {
			continue
		}
		inPeriod = append(inPeriod, o)
		if o.CountsTowardRevenue() {
			counted = append(counted, o)
		}
	}

	for _, o := range counted {
		s.TotalRevenue = s.TotalRevenue.Add(o.Revenue())
		s.DeliveryFees = s.DeliveryFees.Add(o.DeliveryFee)
		s.COGS = s.COGS.Add(o.COGS())
	}
	s.SalesWithoutDelivery = s.TotalRevenue.Sub(s.DeliveryFees)
	s.GrossProfit = s.SalesWithoutDelivery.Sub(s.COGS)
	s.GrossProfitMargin = ratioPercent(s.GrossProfit, s.TotalRevenue)

	for _, e := range in.Expenses {
		if !in.Range.Contains(e.TransactionDate) {
			continue
		}
		switch e.Bucket() {
		case finance.BucketEmployee:
			s.EmployeeExpenses = s.EmployeeExpenses.Add(e.Amount)
		case finance.BucketPurchase:
			s.PurchaseExpenses = s.PurchaseExpenses.Add(e.Amount)
		default:
			s.OperatingExpenses = s.OperatingExpenses.Add(e.Amount)
		}
	}
	s.TotalExpenses = s.OperatingExpenses.Add(s.EmployeeExpenses).Add(s.PurchaseExpenses)

	// Merchandise purchases are capitalized as inventory cost, not expensed
	// against the period, so net profit subtracts only the other two buckets.
	s.NetProfit = s.GrossProfit.Sub(s.OperatingExpenses).Sub(s.EmployeeExpenses)
	s.NetProfitMargin = ratioPercent(s.NetProfit, s.TotalRevenue)
	s.ROI = ratioPercent(s.NetProfit, in.Accounting.Capital)

	s.CashFlow = CashFlow{
		Inflow:  s.TotalRevenue,
		Outflow: s.TotalExpenses,
		Net:     s.TotalRevenue.Sub(s.TotalExpenses),
	}

	s.SalesMetrics = salesMetrics(s.TotalRevenue, int64(len(inPeriod)), int64(len(counted)))
	s.ChartData = dailySeries(counted)
	s.Liquidity = liquidity(in.Accounting.Capital, s.TotalExpenses)

	for _, si := range in.Settlements {
		if in.Range.Contains(si.SettlementDate) {
			s.TotalSettledDues = s.TotalSettledDues.Add(si.TotalAmount)
		}
	}

	if in.EmployeeID != nil {
		s.UserPersonalProfit, s.PersonalProfitSplit = employeeProfit(inPeriod, in.LedgerEntries, *in.EmployeeID)
	}

	return s
}

// ratioPercent returns num/den*100, or zero when the denominator is not
// positive. Division by zero must never surface as NaN on a dashboard.
func ratioPercent(num, den decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred)
}

func salesMetrics(revenue decimal.Decimal, inPeriodCount, countedCount int64) SalesMetrics {
	m := SalesMetrics{
		TotalOrders:     inPeriodCount,
		DeliveredOrders: countedCount,
	}
	if inPeriodCount > 0 {
		m.ConversionRate = decimal.NewFromInt(countedCount).
			Div(decimal.NewFromInt(inPeriodCount)).Mul(hundred)
	}
	if countedCount > 0 {
		m.AverageOrderValue = revenue.Div(decimal.NewFromInt(countedCount))
	}
	return m
}

// dailySeries groups counted orders by the date portion of their activity
// timestamp (last update, falling back to creation time) and accumulates
// per-day revenue, order count and item-level profit.
func dailySeries(counted []order.Order) []ChartPoint {
	byDate := make(map[string]*ChartPoint)
	for _, o := range counted {
		date := o.ActivityDate().Format("2006-01-02")
		point, ok := byDate[date]
		if !ok {
			point = &ChartPoint{Date: date}
			byDate[date] = point
		}
		point.Revenue = point.Revenue.Add(o.Revenue())
		point.Orders++
		point.Profit = point.Profit.Add(o.ItemsProfit())
	}

	series := make([]ChartPoint, 0, len(byDate))
	for _, point := range byDate {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}

func liquidity(capital, totalExpenses decimal.Decimal) Liquidity {
	l := Liquidity{
		CurrentCash: capital.Sub(totalExpenses),
		BurnRate:    totalExpenses.Div(thirty),
	}
	if l.BurnRate.IsPositive() {
		l.RunwayDays = capital.Div(l.BurnRate)
	}
	return l
}

// employeeProfit isolates one employee's in-period profit and splits it into
// settled and pending. Realized profit (delivered and receipted) is settled
// only when a ledger entry exists for the order; without one it is treated
// as still owed. Delivered-but-unreceipted profit is always pending.
func employeeProfit(inPeriod []order.Order, entries []finance.ProfitLedgerEntry, employeeID uuid.UUID) (decimal.Decimal, ProfitSplit) {
	settledOrders := make(map[uuid.UUID]bool, len(entries))
	for _, entry := range entries {
		settledOrders[entry.OrderID] = true
	}

	personal := decimal.Zero
	var split ProfitSplit
	for _, o := range inPeriod {
		if o.CreatedBy != employeeID {
			continue
		}
		if o.CountsTowardRevenue() {
			profit := o.ItemsProfit()
			personal = personal.Add(profit)
			if settledOrders[o.ID] {
				split.Settled = split.Settled.Add(profit)
			} else {
				split.Pending = split.Pending.Add(profit)
			}
			continue
		}
		// Delivered but not yet receipted: candidate profit that cannot have
		// a settlement record.
		if o.Status == order.StatusDelivered {
			split.Pending = split.Pending.Add(o.ItemsProfit())
		}
	}
	return personal, split
}
