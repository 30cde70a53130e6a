package entity

import "github.com/shopspring/decimal"

// CostEntry is a named recurring cost. Packaging specifications reference it by name.
type CostEntry struct {
	Period
	CostName  string          `json:"cost_name"`
	CostValue decimal.Decimal `json:"cost_value"`
}

func (e CostEntry) PeriodOf() Period { return e.Period }

func (e CostEntry) Identity() string { return e.CostName }

func (e CostEntry) InPeriod(p Period) CostEntry {
	e.Period = p
	return e
}

// ArchiveFlag marks a period as closed for edits.
type ArchiveFlag struct {
	Period
	Archived bool `json:"archived"`
}
