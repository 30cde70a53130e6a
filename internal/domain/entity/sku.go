package entity

import "github.com/shopspring/decimal"

// SKUEntry holds the pricing inputs of one SKU for a period and the figures derived from them.
type SKUEntry struct {
	Period
	SKU                   string          `json:"sku"`
	Category              string          `json:"category"`
	SoldPriceAfterVAT     decimal.Decimal `json:"sold_price_after_vat"`
	SoldPriceBeforeVAT    decimal.Decimal `json:"sold_price_before_vat"`
	CostOfItem            decimal.Decimal `json:"cost_of_item"`
	Packaging             string          `json:"packaging"`
	TransactionFeePercent decimal.Decimal `json:"transaction_fee_percent"`
	TransactionFeeFlat    decimal.Decimal `json:"transaction_fee_flat"`
	TransactionFee        decimal.Decimal `json:"transaction_fee"`
	Delivery              decimal.Decimal `json:"delivery"`
	TotalExpenses         decimal.Decimal `json:"total_expenses"`
	ProfitMargin          decimal.Decimal `json:"profit_margin"`
	Profit                decimal.Decimal `json:"profit"`
}

// PeriodOf returns the period the entry belongs to.
func (e SKUEntry) PeriodOf() Period { return e.Period }

// Identity returns the secondary key of the entry within its period.
func (e SKUEntry) Identity() string { return e.SKU }

// InPeriod returns a copy of the entry moved to p.
func (e SKUEntry) InPeriod(p Period) SKUEntry {
	e.Period = p
	return e
}

// SalesEntry records how many units of a SKU were sold in a period.
type SalesEntry struct {
	Period
	SKU       string `json:"sku"`
	UnitsSold int    `json:"units_sold"`
}

// CategoryGroup lists the SKUs filed under one category for a period.
type CategoryGroup struct {
	Category string   `json:"category"`
	SKUs     []string `json:"skus"`
}
