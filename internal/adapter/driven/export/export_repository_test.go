package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
)

func fixedRepo() *ExportRepositoryImpl {
	return &ExportRepositoryImpl{
		currency: "£",
		now:      func() time.Time { return time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC) },
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleSummary() entity.SummaryReport {
	jan := entity.NewPeriod(2025, 1)
	feb := entity.NewPeriod(2025, 2)
	return entity.SummaryReport{
		Title: "Summary from 2025-01 to 2025-02",
		From:  jan,
		To:    feb,
		Months: []entity.MonthSummary{
			{Period: jan, Profit: d("34"), Expense: d("0"), Realized: d("34")},
			{Period: feb, Profit: d("200"), Expense: d("50"), Realized: d("150")},
		},
		Profit:   d("234"),
		Expense:  d("50"),
		Realized: d("184"),
		HasData:  true,
	}
}

func sampleSales() entity.SalesReport {
	return entity.SalesReport{
		Channel: entity.ChannelEbay,
		Period:  entity.NewPeriod(2025, 1),
		Lines: []entity.SalesLine{
			{SKU: "ABC123", UnitsSold: 10, Matched: true, ProfitPerUnit: d("3.1"), LineProfit: d("31")},
			{SKU: "GHOST", UnitsSold: 4},
		},
		TotalProfit: d("31"),
	}
}

func TestGenerateFilename(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	name, err := fixedRepo().generateFilename("summary", dir, "csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "summary_20250401_093000.csv"), name)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestExportSummaryToCSV(t *testing.T) {
	path, err := fixedRepo().ExportSummaryToCSV(sampleSummary(), "summary", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{
		"Month,Profit,Expense,Realized Profit",
		"2025-01,34.00,0.00,34.00",
		"2025-02,200.00,50.00,150.00",
		"Total,234.00,50.00,184.00",
	}, lines)
}

func TestExportSummaryToJSON(t *testing.T) {
	path, err := fixedRepo().ExportSummaryToJSON(sampleSummary(), "summary", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got summaryJSON
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "2025-01", got.From)
	assert.Equal(t, "184.00", got.Realized)
	assert.Equal(t, "£", got.Currency)
	require.Len(t, got.Months, 2)
	assert.Equal(t, "150.00", got.Months[1].Realized)
}

func TestExportSummaryToXLSX(t *testing.T) {
	path, err := fixedRepo().ExportSummaryToXLSX(sampleSummary(), "summary", t.TempDir())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Month", rows[0][0])
	assert.Equal(t, "2025-02", rows[2][0])
	assert.Equal(t, "Total", rows[3][0])
}

func TestExportPDFs(t *testing.T) {
	dir := t.TempDir()
	repo := fixedRepo()

	summaryPath, err := repo.ExportSummaryToPDF(sampleSummary(), "summary", dir)
	require.NoError(t, err)
	salesPath, err := repo.ExportSalesReportToPDF(sampleSales(), "sales", dir)
	require.NoError(t, err)

	for _, p := range []string{summaryPath, salesPath} {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "%PDF"), p)
	}
}

func TestExportSalesReportToCSVAndJSON(t *testing.T) {
	dir := t.TempDir()
	repo := fixedRepo()

	csvPath, err := repo.ExportSalesReportToCSV(sampleSales(), "sales", dir)
	require.NoError(t, err)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ABC123,10,3.10,31.00")
	assert.Contains(t, string(data), "GHOST,4,unmatched,")
	assert.Contains(t, string(data), "Total,,,31.00")

	jsonPath, err := repo.ExportSalesReportToJSON(sampleSales(), "sales", dir)
	require.NoError(t, err)
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)

	var got salesJSON
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "ebay", got.Channel)
	require.Len(t, got.Lines, 2)
	assert.Empty(t, got.Lines[1].LineProfit)
	assert.Equal(t, "31.00", got.TotalProfit)
}
