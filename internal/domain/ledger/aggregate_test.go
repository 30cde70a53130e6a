package ledger

import (
	"math/rand"
	"testing"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCollections() Collections {
	jan := entity.NewPeriod(2025, 1)
	mar := entity.NewPeriod(2025, 3)
	dec := entity.NewPeriod(2024, 12)
	return Collections{
		SKUs: map[entity.Channel][]entity.SKUEntry{
			entity.ChannelEbay: {
				{Period: jan, SKU: "A", Profit: amt("3.10")},
				{Period: dec, SKU: "A", Profit: amt("2.00")},
			},
			entity.ChannelWoo: {
				{Period: jan, SKU: "W", Profit: amt("1.50")},
			},
		},
		Sales: map[entity.Channel][]entity.SalesEntry{
			entity.ChannelEbay: {
				{Period: jan, SKU: "A", UnitsSold: 10},
				{Period: jan, SKU: "GHOST", UnitsSold: 4},
				{Period: dec, SKU: "A", UnitsSold: 1},
			},
			entity.ChannelWoo: {
				{Period: jan, SKU: "W", UnitsSold: 2},
				{Period: jan, SKU: "A", UnitsSold: 100},
			},
		},
		B2B: []entity.B2BEntry{
			{Period: mar, BusinessName: "Acme", Expense: amt("50"), Profit: amt("200")},
		},
	}
}

func TestAggregate(t *testing.T) {
	totals := Aggregate(sampleCollections())

	jan := totals.Month(entity.NewPeriod(2025, 1))
	// eBay A 3.10*10 + Woo W 1.50*2; unmatched sales and other-channel SKUs add nothing
	assert.Equal(t, "34.00", jan.Profit.StringFixed(2))
	assert.Equal(t, "0.00", jan.Expense.StringFixed(2))

	mar := totals.Month(entity.NewPeriod(2025, 3))
	assert.Equal(t, "200.00", mar.Profit.StringFixed(2))
	assert.Equal(t, "50.00", mar.Expense.StringFixed(2))
	assert.Equal(t, "150.00", mar.Realized().StringFixed(2))

	empty := totals.Month(entity.NewPeriod(2025, 7))
	assert.True(t, empty.Profit.IsZero())
	assert.False(t, totals.Has(entity.NewPeriod(2025, 7)))
}

func TestAggregateYearAndRange(t *testing.T) {
	totals := Aggregate(sampleCollections())

	year := totals.Year(2025)
	assert.Equal(t, "234.00", year.Profit.StringFixed(2))
	assert.Equal(t, "50.00", year.Expense.StringFixed(2))
	assert.Equal(t, "184.00", year.Realized().StringFixed(2))

	span := totals.Range(entity.NewPeriod(2024, 12), entity.NewPeriod(2025, 1))
	assert.Equal(t, "36.00", span.Profit.StringFixed(2))

	inverted := totals.Range(entity.NewPeriod(2025, 3), entity.NewPeriod(2025, 1))
	assert.True(t, inverted.Profit.IsZero())
}

func TestPeriodsAreChronological(t *testing.T) {
	totals := Aggregate(sampleCollections())

	assert.Equal(t, []entity.Period{
		entity.NewPeriod(2024, 12),
		entity.NewPeriod(2025, 1),
		entity.NewPeriod(2025, 3),
	}, totals.Periods())
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	base := sampleCollections()
	want := Aggregate(base)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := sampleCollections()
		for _, ch := range entity.Channels {
			sales := shuffled.Sales[ch]
			rng.Shuffle(len(sales), func(a, b int) { sales[a], sales[b] = sales[b], sales[a] })
		}
		got := Aggregate(shuffled)
		require.Len(t, got, len(want))
		for p, w := range want {
			assert.True(t, w.Profit.Equal(got[p].Profit), "period %s", p)
			assert.True(t, w.Expense.Equal(got[p].Expense), "period %s", p)
		}
	}
}

func TestMonthsRollsOverYear(t *testing.T) {
	months := Months(entity.NewPeriod(2024, 11), entity.NewPeriod(2025, 2))
	assert.Equal(t, []entity.Period{
		{Year: 2024, Month: 11},
		{Year: 2024, Month: 12},
		{Year: 2025, Month: 1},
		{Year: 2025, Month: 2},
	}, months)

	assert.Empty(t, Months(entity.NewPeriod(2025, 2), entity.NewPeriod(2025, 1)))
}

func TestSummarize(t *testing.T) {
	totals := Aggregate(sampleCollections())
	report := Summarize("2025", totals, entity.NewPeriod(2025, 1), entity.NewPeriod(2025, 12))

	assert.Len(t, report.Months, 12)
	assert.True(t, report.HasData)
	assert.Equal(t, "234.00", report.Profit.StringFixed(2))
	assert.Equal(t, "184.00", report.Realized.StringFixed(2))
	assert.Equal(t, "150.00", report.Months[2].Realized.StringFixed(2))

	none := Summarize("2030", totals, entity.NewPeriod(2030, 1), entity.NewPeriod(2030, 1))
	assert.False(t, none.HasData)
	assert.True(t, none.Realized.IsZero())
}

func TestBuildSalesReport(t *testing.T) {
	c := sampleCollections()
	jan := entity.NewPeriod(2025, 1)

	report := BuildSalesReport(entity.ChannelEbay, jan, c.SKUs[entity.ChannelEbay], c.Sales[entity.ChannelEbay])
	require.Len(t, report.Lines, 2)
	assert.True(t, report.Lines[0].Matched)
	assert.Equal(t, "31.00", report.Lines[0].LineProfit.StringFixed(2))
	assert.False(t, report.Lines[1].Matched)
	assert.Equal(t, "GHOST", report.Lines[1].SKU)
	assert.Equal(t, "31.00", report.TotalProfit.StringFixed(2))
}
