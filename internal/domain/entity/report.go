package entity

import "github.com/shopspring/decimal"

// MonthSummary carries the aggregated figures of one month.
type MonthSummary struct {
	Period
	Profit   decimal.Decimal `json:"profit"`
	Expense  decimal.Decimal `json:"expense"`
	Realized decimal.Decimal `json:"realized"`
}

// SummaryReport is the result of a summary query over one month, one year or a month range.
type SummaryReport struct {
	Title    string          `json:"title"`
	From     Period          `json:"from"`
	To       Period          `json:"to"`
	Months   []MonthSummary  `json:"months"`
	Profit   decimal.Decimal `json:"total_profit"`
	Expense  decimal.Decimal `json:"total_expense"`
	Realized decimal.Decimal `json:"realized_profit"`
	HasData  bool            `json:"has_data"`
}

// SalesLine is one sales entry valued against the SKU entry of the same period.
type SalesLine struct {
	SKU           string          `json:"sku"`
	UnitsSold     int             `json:"units_sold"`
	Matched       bool            `json:"matched"`
	ProfitPerUnit decimal.Decimal `json:"profit_per_unit"`
	LineProfit    decimal.Decimal `json:"line_profit"`
}

// SalesReport lists the sales of one channel for one period.
type SalesReport struct {
	Channel     Channel         `json:"channel"`
	Period      Period          `json:"period"`
	Lines       []SalesLine     `json:"lines"`
	TotalProfit decimal.Decimal `json:"total_profit"`
}
