package entity

import "github.com/shopspring/decimal"

// B2BEntry is a business-to-business transaction recorded directly as expense and profit.
type B2BEntry struct {
	Period
	BusinessName string          `json:"business_name"`
	Expense      decimal.Decimal `json:"expense"`
	Profit       decimal.Decimal `json:"profit"`
}

func (e B2BEntry) PeriodOf() Period { return e.Period }

func (e B2BEntry) Identity() string { return e.BusinessName }

func (e B2BEntry) InPeriod(p Period) B2BEntry {
	e.Period = p
	return e
}
