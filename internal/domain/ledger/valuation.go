package ledger

import (
	"strings"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var (
	vatDivisor = decimal.RequireFromString("1.2")
	hundred    = decimal.NewFromInt(100)
)

// CostLookup maps a cost name to its value for a single period.
type CostLookup map[string]decimal.Decimal

// NewCostLookup collects the cost entries of period p.
func NewCostLookup(costs []entity.CostEntry, p entity.Period) CostLookup {
	lookup := make(CostLookup)
	for _, c := range costs {
		if c.Period == p {
			lookup[c.CostName] = c.CostValue
		}
	}
	return lookup
}

// ValuationInput is one SKU form submission with numeric fields already coerced.
type ValuationInput struct {
	AfterVAT   decimal.Decimal
	ItemCost   decimal.Decimal
	Packaging  string
	FeePercent decimal.Decimal
	FeeFlat    decimal.Decimal
	Delivery   decimal.Decimal
}

// Valuation holds the derived figures of a SKU entry, rounded to two decimals.
type Valuation struct {
	BeforeVAT      decimal.Decimal
	TransactionFee decimal.Decimal
	PackagingTotal decimal.Decimal
	TotalExpenses  decimal.Decimal
	Profit         decimal.Decimal
	ProfitMargin   decimal.Decimal
}

// ResolvePackaging sums a comma separated packaging specification. Numeric tokens are
// added as-is, other tokens are looked up by cost name. Tokens that are neither are
// returned as unresolved and contribute zero.
func ResolvePackaging(spec string, costs CostLookup) (decimal.Decimal, []string) {
	total := decimal.Zero
	var unresolved []string
	for _, raw := range strings.Split(spec, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		if v, ok := parseNumber(token); ok {
			total = total.Add(v)
			continue
		}
		if v, ok := costs[token]; ok {
			total = total.Add(v)
			continue
		}
		unresolved = append(unresolved, token)
	}
	return total, unresolved
}

// Valuate applies the fixed pricing formula:
//
//	before_vat      = round(after_vat / 1.2, 2), 0 when after_vat is 0
//	transaction_fee = after_vat * fee_percent/100 + fee_flat
//	total_expenses  = item_cost + transaction_fee + packaging + delivery
//	profit          = before_vat - total_expenses
//	profit_margin   = profit / before_vat * 100, 0 when before_vat is 0
func Valuate(in ValuationInput, costs CostLookup) (Valuation, []string) {
	beforeVAT := decimal.Zero
	if !in.AfterVAT.IsZero() {
		beforeVAT = in.AfterVAT.Div(vatDivisor).Round(2)
	}

	fee := in.AfterVAT.Mul(in.FeePercent.Div(hundred)).Add(in.FeeFlat)
	packaging, unresolved := ResolvePackaging(in.Packaging, costs)
	total := in.ItemCost.Add(fee).Add(packaging).Add(in.Delivery)
	profit := beforeVAT.Sub(total)

	margin := decimal.Zero
	if !beforeVAT.IsZero() {
		margin = profit.Div(beforeVAT).Mul(hundred)
	}

	return Valuation{
		BeforeVAT:      beforeVAT,
		TransactionFee: Round2(fee),
		PackagingTotal: Round2(packaging),
		TotalExpenses:  Round2(total),
		Profit:         Round2(profit),
		ProfitMargin:   Round2(margin),
	}, unresolved
}

// BuildSKUEntry combines the form inputs and their valuation into a storable entry.
func BuildSKUEntry(p entity.Period, sku, category string, in ValuationInput, v Valuation) entity.SKUEntry {
	return entity.SKUEntry{
		Period:                p,
		SKU:                   sku,
		Category:              category,
		SoldPriceAfterVAT:     Round2(in.AfterVAT),
		SoldPriceBeforeVAT:    v.BeforeVAT,
		CostOfItem:            Round2(in.ItemCost),
		Packaging:             strings.TrimSpace(in.Packaging),
		TransactionFeePercent: in.FeePercent,
		TransactionFeeFlat:    in.FeeFlat,
		TransactionFee:        v.TransactionFee,
		Delivery:              Round2(in.Delivery),
		TotalExpenses:         v.TotalExpenses,
		ProfitMargin:          v.ProfitMargin,
		Profit:                v.Profit,
	}
}

// UpsertSKU replaces the entry sharing period and SKU with e, or appends e.
func UpsertSKU(entries []entity.SKUEntry, e entity.SKUEntry) []entity.SKUEntry {
	for i := range entries {
		if entries[i].Period == e.Period && entries[i].SKU == e.SKU {
			entries[i] = e
			return entries
		}
	}
	return append(entries, e)
}
