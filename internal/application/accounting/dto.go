package accounting

import "github.com/shopspring/decimal"

// SummaryResponse is the wire shape of the financial summary. All amounts are
// plain numbers; formatting (currency, locale, color) belongs to the client.
type SummaryResponse struct {
	TotalRevenue         float64              `json:"total_revenue"`
	DeliveryFees         float64              `json:"delivery_fees"`
	SalesWithoutDelivery float64              `json:"sales_without_delivery"`
	COGS                 float64              `json:"cogs"`
	GrossProfit          float64              `json:"gross_profit"`
	GrossProfitMargin    float64              `json:"gross_profit_margin"`
	OperatingExpenses    float64              `json:"operating_expenses"`
	EmployeeExpenses     float64              `json:"employee_expenses"`
	PurchaseExpenses     float64              `json:"purchase_expenses"`
	TotalExpenses        float64              `json:"total_expenses"`
	NetProfit            float64              `json:"net_profit"`
	NetProfitMargin      float64              `json:"net_profit_margin"`
	ROI                  float64              `json:"roi"`
	CashFlow             CashFlowResponse     `json:"cash_flow"`
	SalesMetrics         SalesMetricsResponse `json:"sales_metrics"`
	ChartData            []ChartPointResponse `json:"chart_data"`
	Liquidity            LiquidityResponse    `json:"liquidity"`
	UserPersonalProfit   float64              `json:"user_personal_profit"`
	TotalSettledDues     float64              `json:"total_settled_dues"`
}

// CashFlowResponse is the period cash flow triple
type CashFlowResponse struct {
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
	Net     float64 `json:"net"`
}

// SalesMetricsResponse summarizes the order funnel
type SalesMetricsResponse struct {
	TotalOrders       int64   `json:"total_orders"`
	DeliveredOrders   int64   `json:"delivered_orders"`
	ConversionRate    float64 `json:"conversion_rate"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// ChartPointResponse is one day of the dashboard time series
type ChartPointResponse struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
	Profit  float64 `json:"profit"`
}

// LiquidityResponse captures cash position and runway
type LiquidityResponse struct {
	CurrentCash float64 `json:"current_cash"`
	BurnRate    float64 `json:"burn_rate"`
	RunwayDays  float64 `json:"runway_days"`
}

// EmployeeProfitResponse is the employee-scoped profit breakdown
type EmployeeProfitResponse struct {
	EmployeeID     string  `json:"employee_id"`
	PersonalProfit float64 `json:"personal_profit"`
	SettledProfit  float64 `json:"settled_profit"`
	PendingProfit  float64 `json:"pending_profit"`
	SettledDues    float64 `json:"settled_dues"`
}

// ToResponse converts an aggregated Summary to its wire shape
func (s Summary) ToResponse() SummaryResponse {
	chart := make([]ChartPointResponse, len(s.ChartData))
	for i, point := range s.ChartData {
		chart[i] = ChartPointResponse{
			Date:    point.Date,
			Revenue: toFloat64(point.Revenue),
			Orders:  point.Orders,
			Profit:  toFloat64(point.Profit),
		}
	}
	return SummaryResponse{
		TotalRevenue:         toFloat64(s.TotalRevenue),
		DeliveryFees:         toFloat64(s.DeliveryFees),
		SalesWithoutDelivery: toFloat64(s.SalesWithoutDelivery),
		COGS:                 toFloat64(s.COGS),
		GrossProfit:          toFloat64(s.GrossProfit),
		GrossProfitMargin:    toFloat64(s.GrossProfitMargin),
		OperatingExpenses:    toFloat64(s.OperatingExpenses),
		EmployeeExpenses:     toFloat64(s.EmployeeExpenses),
		PurchaseExpenses:     toFloat64(s.PurchaseExpenses),
		TotalExpenses:        toFloat64(s.TotalExpenses),
		NetProfit:            toFloat64(s.NetProfit),
		NetProfitMargin:      toFloat64(s.NetProfitMargin),
		ROI:                  toFloat64(s.ROI),
		CashFlow: CashFlowResponse{
			Inflow:  toFloat64(s.CashFlow.Inflow),
			Outflow: toFloat64(s.CashFlow.Outflow),
			Net:     toFloat64(s.CashFlow.Net),
		},
		SalesMetrics: SalesMetricsResponse{
			TotalOrders:       s.SalesMetrics.TotalOrders,
			DeliveredOrders:   s.SalesMetrics.DeliveredOrders,
			ConversionRate:    toFloat64(s.SalesMetrics.ConversionRate),
			AverageOrderValue: toFloat64(s.SalesMetrics.AverageOrderValue),
		},
		ChartData: chart,
		Liquidity: LiquidityResponse{
			CurrentCash: toFloat64(s.Liquidity.CurrentCash),
			BurnRate:    toFloat64(s.Liquidity.BurnRate),
			RunwayDays:  toFloat64(s.Liquidity.RunwayDays),
		},
		UserPersonalProfit: toFloat64(s.UserPersonalProfit),
		TotalSettledDues:   toFloat64(s.TotalSettledDues),
	}
}

// toFloat64 converts decimal to float64 for JSON serialization
func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
