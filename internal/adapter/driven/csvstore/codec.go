package csvstore

import (
	"strconv"
	"strings"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/diillson/profit-tracker-go/internal/domain/ledger"
)

var (
	skuHeader = []string{
		"month", "year", "sku", "category",
		"sold_price_after_vat", "sold_price_before_vat",
		"cost_of_item", "packaging",
		"transaction_fee", "delivery",
		"total_expenses", "profit_margin", "profit",
		"transaction_fee_percent", "transaction_fee_flat",
	}
	salesHeader  = []string{"month", "year", "sku", "units_sold"}
	b2bHeader    = []string{"month", "year", "business_name", "expense", "profit"}
	costHeader   = []string{"month", "year", "cost_name", "cost_value"}
	statusHeader = []string{"year", "month", "archived"}
)

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func decodePeriod(r record) entity.Period {
	return entity.NewPeriod(atoi(r["year"]), atoi(r["month"]))
}

func encodePeriod(r record, p entity.Period) {
	r["year"] = strconv.Itoa(p.Year)
	r["month"] = strconv.Itoa(p.Month)
}

func decodeSKU(r record) entity.SKUEntry {
	return entity.SKUEntry{
		Period:                decodePeriod(r),
		SKU:                   r["sku"],
		Category:              r["category"],
		SoldPriceAfterVAT:     ledger.ParseAmount(r["sold_price_after_vat"]),
		SoldPriceBeforeVAT:    ledger.ParseAmount(r["sold_price_before_vat"]),
		CostOfItem:            ledger.ParseAmount(r["cost_of_item"]),
		Packaging:             r["packaging"],
		TransactionFeePercent: ledger.ParseAmount(r["transaction_fee_percent"]),
		TransactionFeeFlat:    ledger.ParseAmount(r["transaction_fee_flat"]),
		TransactionFee:        ledger.ParseAmount(r["transaction_fee"]),
		Delivery:              ledger.ParseAmount(r["delivery"]),
		TotalExpenses:         ledger.ParseAmount(r["total_expenses"]),
		ProfitMargin:          ledger.ParseAmount(r["profit_margin"]),
		Profit:                ledger.ParseAmount(r["profit"]),
	}
}

func encodeSKU(e entity.SKUEntry) record {
	r := record{
		"sku":                     e.SKU,
		"category":                e.Category,
		"sold_price_after_vat":    ledger.FormatAmount(e.SoldPriceAfterVAT),
		"sold_price_before_vat":   ledger.FormatAmount(e.SoldPriceBeforeVAT),
		"cost_of_item":            ledger.FormatAmount(e.CostOfItem),
		"packaging":               e.Packaging,
		"transaction_fee":         ledger.FormatAmount(e.TransactionFee),
		"delivery":                ledger.FormatAmount(e.Delivery),
		"total_expenses":          ledger.FormatAmount(e.TotalExpenses),
		"profit_margin":           ledger.FormatAmount(e.ProfitMargin),
		"profit":                  ledger.FormatAmount(e.Profit),
		"transaction_fee_percent": e.TransactionFeePercent.String(),
		"transaction_fee_flat":    e.TransactionFeeFlat.String(),
	}
	encodePeriod(r, e.Period)
	return r
}

func decodeSales(r record) entity.SalesEntry {
	return entity.SalesEntry{
		Period:    decodePeriod(r),
		SKU:       r["sku"],
		UnitsSold: ledger.ParseUnits(r["units_sold"]),
	}
}

func encodeSales(e entity.SalesEntry) record {
	r := record{
		"sku":        e.SKU,
		"units_sold": strconv.Itoa(e.UnitsSold),
	}
	encodePeriod(r, e.Period)
	return r
}

func decodeB2B(r record) entity.B2BEntry {
	return entity.B2BEntry{
		Period:       decodePeriod(r),
		BusinessName: r["business_name"],
		Expense:      ledger.ParseAmount(r["expense"]),
		Profit:       ledger.ParseAmount(r["profit"]),
	}
}

func encodeB2B(e entity.B2BEntry) record {
	r := record{
		"business_name": e.BusinessName,
		"expense":       ledger.FormatAmount(e.Expense),
		"profit":        ledger.FormatAmount(e.Profit),
	}
	encodePeriod(r, e.Period)
	return r
}

func decodeCost(r record) entity.CostEntry {
	return entity.CostEntry{
		Period:    decodePeriod(r),
		CostName:  r["cost_name"],
		CostValue: ledger.ParseAmount(r["cost_value"]),
	}
}

func encodeCost(e entity.CostEntry) record {
	r := record{
		"cost_name":  e.CostName,
		"cost_value": ledger.FormatAmount(e.CostValue),
	}
	encodePeriod(r, e.Period)
	return r
}

func decodeFlag(r record) entity.ArchiveFlag {
	return entity.ArchiveFlag{
		Period:   decodePeriod(r),
		Archived: r["archived"] == "True",
	}
}

func encodeFlag(f entity.ArchiveFlag) record {
	archived := "False"
	if f.Archived {
		archived = "True"
	}
	r := record{"archived": archived}
	encodePeriod(r, f.Period)
	return r
}

func decodeAll[T any](rows []record, decode func(record) T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, decode(r))
	}
	return out
}

func encodeAll[T any](entries []T, encode func(T) record) []record {
	out := make([]record, 0, len(entries))
	for _, e := range entries {
		out = append(out, encode(e))
	}
	return out
}
