package ledger

import (
	"sort"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Totals accumulates profit and expense for a scope.
type Totals struct {
	Profit  decimal.Decimal
	Expense decimal.Decimal
}

// Realized is profit minus expense.
func (t Totals) Realized() decimal.Decimal {
	return t.Profit.Sub(t.Expense)
}

func (t Totals) add(o Totals) Totals {
	return Totals{Profit: t.Profit.Add(o.Profit), Expense: t.Expense.Add(o.Expense)}
}

// Collections is everything the aggregator reads.
type Collections struct {
	SKUs  map[entity.Channel][]entity.SKUEntry
	Sales map[entity.Channel][]entity.SalesEntry
	B2B   []entity.B2BEntry
}

// MonthlyTotals maps a period to its accumulated totals.
type MonthlyTotals map[entity.Period]Totals

type skuKey struct {
	period entity.Period
	sku    string
}

func profitIndex(skus []entity.SKUEntry) map[skuKey]decimal.Decimal {
	idx := make(map[skuKey]decimal.Decimal, len(skus))
	for _, s := range skus {
		idx[skuKey{period: s.Period, sku: s.SKU}] = s.Profit
	}
	return idx
}

// Aggregate sums per-period profit and expense. Channel sales contribute stored profit
// per unit times units sold when a SKU entry exists for the same period; B2B entries
// contribute their profit and expense directly.
func Aggregate(c Collections) MonthlyTotals {
	totals := make(MonthlyTotals)
	for _, ch := range entity.Channels {
		idx := profitIndex(c.SKUs[ch])
		for _, s := range c.Sales[ch] {
			perUnit, ok := idx[skuKey{period: s.Period, sku: s.SKU}]
			if !ok {
				continue
			}
			line := perUnit.Mul(decimal.NewFromInt(int64(s.UnitsSold)))
			totals[s.Period] = totals[s.Period].add(Totals{Profit: line})
		}
	}
	for _, b := range c.B2B {
		totals[b.Period] = totals[b.Period].add(Totals{Profit: b.Profit, Expense: b.Expense})
	}
	return totals
}

// Has reports whether any record contributed to p.
func (m MonthlyTotals) Has(p entity.Period) bool {
	_, ok := m[p]
	return ok
}

// Month returns the totals of a single period; an absent period is zero activity.
func (m MonthlyTotals) Month(p entity.Period) Totals {
	return m[p].normalize()
}

// Year sums the twelve months of year.
func (m MonthlyTotals) Year(year int) Totals {
	return m.Range(entity.NewPeriod(year, 1), entity.NewPeriod(year, 12))
}

// Range sums every month from from to to inclusive. An inverted range is empty.
func (m MonthlyTotals) Range(from, to entity.Period) Totals {
	var t Totals
	for _, p := range Months(from, to) {
		t = t.add(m.Month(p))
	}
	return t.normalize()
}

// Periods returns the periods with activity in chronological order.
func (m MonthlyTotals) Periods() []entity.Period {
	out := make([]entity.Period, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func (t Totals) normalize() Totals {
	// zero-value decimals carry a nil big.Int; normalize so callers can compare safely
	return Totals{Profit: decimal.Zero.Add(t.Profit), Expense: decimal.Zero.Add(t.Expense)}
}

// Months walks from..to inclusive, rolling month 13 over to January of the next year.
func Months(from, to entity.Period) []entity.Period {
	var out []entity.Period
	for p := from; !to.Before(p); p = p.Next() {
		out = append(out, p)
	}
	return out
}

// Summarize builds a report with one row per month of the scope.
func Summarize(title string, m MonthlyTotals, from, to entity.Period) entity.SummaryReport {
	report := entity.SummaryReport{Title: title, From: from, To: to}
	var total Totals
	for _, p := range Months(from, to) {
		t := m.Month(p)
		if m.Has(p) {
			report.HasData = true
		}
		report.Months = append(report.Months, entity.MonthSummary{
			Period:   p,
			Profit:   t.Profit,
			Expense:  t.Expense,
			Realized: t.Realized(),
		})
		total = total.add(t)
	}
	total = total.normalize()
	report.Profit = total.Profit
	report.Expense = total.Expense
	report.Realized = total.Realized()
	return report
}

// BuildSalesReport values every sales entry of a channel in period p.
func BuildSalesReport(ch entity.Channel, p entity.Period, skus []entity.SKUEntry, sales []entity.SalesEntry) entity.SalesReport {
	profits := make(map[string]decimal.Decimal)
	for _, s := range skus {
		if s.Period == p {
			profits[s.SKU] = s.Profit
		}
	}

	report := entity.SalesReport{Channel: ch, Period: p, TotalProfit: decimal.Zero}
	for _, s := range sales {
		if s.Period != p {
			continue
		}
		line := entity.SalesLine{SKU: s.SKU, UnitsSold: s.UnitsSold}
		if perUnit, ok := profits[s.SKU]; ok {
			line.Matched = true
			line.ProfitPerUnit = perUnit
			line.LineProfit = perUnit.Mul(decimal.NewFromInt(int64(s.UnitsSold)))
			report.TotalProfit = report.TotalProfit.Add(line.LineProfit)
		}
		report.Lines = append(report.Lines, line)
	}
	return report
}
