package ledger

import (
	"testing"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestCarryOverCopiesMissingKeys(t *testing.T) {
	jan := entity.NewPeriod(2025, 1)
	feb := entity.NewPeriod(2025, 2)
	rows := []entity.SKUEntry{
		{Period: jan, SKU: "X", Category: "jan"},
		{Period: jan, SKU: "Y", Category: "jan"},
		{Period: feb, SKU: "X", Category: "feb"},
	}

	out, n := CarryOver(rows, feb)
	assert.Equal(t, 1, n)
	assert.Len(t, out, 4)

	assert.Equal(t, entity.SKUEntry{Period: feb, SKU: "X", Category: "feb"}, out[2])
	assert.Equal(t, entity.SKUEntry{Period: feb, SKU: "Y", Category: "jan"}, out[3])
	assert.Equal(t, jan, out[1].Period, "source rows stay in place")
}

func TestCarryOverIsIdempotent(t *testing.T) {
	mar := entity.NewPeriod(2025, 3)
	apr := entity.NewPeriod(2025, 4)
	rows := []entity.CostEntry{
		{Period: mar, CostName: "BoxFee", CostValue: amt("0.50")},
		{Period: mar, CostName: "Tape", CostValue: amt("0.05")},
	}

	once, n := CarryOver(rows, apr)
	assert.Equal(t, 2, n)

	twice, n := CarryOver(once, apr)
	assert.Equal(t, 0, n)
	assert.Equal(t, once, twice)
}

func TestCarryOverJanuaryReadsDecember(t *testing.T) {
	rows := []entity.B2BEntry{
		{Period: entity.NewPeriod(2024, 12), BusinessName: "Acme", Profit: amt("200")},
		{Period: entity.NewPeriod(2025, 12), BusinessName: "Later", Profit: amt("1")},
	}

	out, n := CarryOver(rows, entity.NewPeriod(2025, 1))
	assert.Equal(t, 1, n)
	assert.Equal(t, "Acme", out[2].BusinessName)
	assert.Equal(t, entity.NewPeriod(2025, 1), out[2].Period)
}

func TestCarryOverEmptySource(t *testing.T) {
	rows := []entity.CostEntry{{Period: entity.NewPeriod(2025, 6), CostName: "BoxFee"}}

	out, n := CarryOver(rows, entity.NewPeriod(2025, 6))
	assert.Equal(t, 0, n)
	assert.Equal(t, rows, out)
}
