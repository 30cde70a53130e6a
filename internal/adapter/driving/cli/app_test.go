package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diillson/profit-tracker-go/internal/adapter/driven/config"
	"github.com/diillson/profit-tracker-go/internal/adapter/driven/csvstore"
	"github.com/diillson/profit-tracker-go/internal/adapter/driven/export"
	"github.com/diillson/profit-tracker-go/internal/application/usecase"
	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/diillson/profit-tracker-go/internal/domain/repository/mocks"
	"github.com/diillson/profit-tracker-go/internal/shared/types"
	"github.com/diillson/profit-tracker-go/pkg/console"
	"github.com/diillson/profit-tracker-go/pkg/logger"
)

// run executa um comando em uma aplicação nova; o cobra guarda valores de flags entre execuções.
func run(t *testing.T, dataDir string, args ...string) error {
	t.Helper()
	backupRepo := mocks.NewMockBackupRepository(gomock.NewController(t))

	factory := func(a types.CLIArgs, log logger.Logger) (*UseCases, error) {
		store, err := csvstore.Open(a.DataDir)
		if err != nil {
			return nil, err
		}
		c := console.NewConsole()
		return &UseCases{
			Ledger:  usecase.NewLedgerUseCase(store, store, c, log, a.Currency),
			Reports: usecase.NewReportUseCase(store, export.NewExportRepository(a.Currency), c, log, a.Currency),
			Backup:  usecase.NewBackupUseCase(backupRepo, store, c, log),
		}, nil
	}

	app := NewCLIApp("test", config.NewConfigRepository(), console.NewConsole(), factory)
	app.getenv = func(string) string { return "" }
	app.rootCmd.SetArgs(append(args, "--data-dir", dataDir))
	return app.Execute()
}

func readData(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestSKUSaveThroughCLI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "cost", "save", "--year", "2025", "--month", "1", "--name", "BoxFee", "--value", "0.50"))
	require.NoError(t, run(t, dir, "sku", "save", "--year", "2025", "--month", "1",
		"--sku", "ABC123", "--category", "Mugs", "--price", "12.00", "--cost", "3.00",
		"--packaging", "1.50, BoxFee", "--fee-percent", "5", "--fee-flat", "0.30", "--delivery", "1.00"))

	content := readData(t, dir, csvstore.EbaySKUFile)
	assert.Contains(t, content, `1,2025,ABC123,Mugs,12.00,10.00,3.00,"1.50, BoxFee",0.90,1.00,6.90,31.00,3.10`)
	assert.NotContains(t, readData(t, dir, csvstore.WooSKUFile), "ABC123")

	require.NoError(t, run(t, dir, "sku", "edit", "--year", "2025", "--month", "1", "--sku", "ABC123", "--price", "24"))
	assert.Contains(t, readData(t, dir, csvstore.EbaySKUFile), "ABC123,Mugs,24.00,20.00")
}

func TestArchivedPeriodRejectedThroughCLI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "b2b", "save", "--year", "2025", "--month", "2", "--name", "Acme", "--expense", "10", "--profit", "40"))
	require.NoError(t, run(t, dir, "period", "archive", "--year", "2025", "--month", "2"))

	before := readData(t, dir, csvstore.B2BFile)
	err := run(t, dir, "b2b", "save", "--year", "2025", "--month", "2", "--name", "Acme", "--expense", "0", "--profit", "0")
	assert.ErrorIs(t, err, types.ErrPeriodArchived)
	assert.Equal(t, before, readData(t, dir, csvstore.B2BFile))

	require.NoError(t, run(t, dir, "period", "unarchive", "--year", "2025", "--month", "2"))
	assert.NoError(t, run(t, dir, "b2b", "delete", "--year", "2025", "--month", "2", "--name", "Acme"))
}

func TestSalesSetAndCarryOverThroughCLI(t *testing.T) {
	dir := t.TempDir()
	salesFile := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(salesFile, []byte("sku,units\nA,3\nB,lots\n"), 0644))

	require.NoError(t, run(t, dir, "sales", "set", "--channel", "woo", "--year", "2024", "--month", "12", "--file", salesFile))
	sales := readData(t, dir, csvstore.WooSalesFile)
	assert.Contains(t, sales, "12,2024,A,3")
	assert.Contains(t, sales, "12,2024,B,0")

	require.NoError(t, run(t, dir, "sku", "save", "--channel", "woo", "--year", "2024", "--month", "12", "--sku", "A", "--price", "6"))
	require.NoError(t, run(t, dir, "period", "carry-over", "--year", "2025", "--month", "1"))
	require.NoError(t, run(t, dir, "period", "carry-over", "--year", "2025", "--month", "1", "--kind", "woo"))

	skus := readData(t, dir, csvstore.WooSKUFile)
	assert.Equal(t, 1, strings.Count(skus, "1,2025,A,"))
	assert.NotContains(t, readData(t, dir, csvstore.WooSalesFile), "2025")
}

func TestSummaryExportThroughCLI(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	require.NoError(t, run(t, dir, "b2b", "save", "--year", "2025", "--month", "3", "--name", "Acme", "--expense", "50", "--profit", "200"))
	require.NoError(t, run(t, dir, "summary", "--year", "2025", "--trend",
		"--report-name", "year", "--report-type", "csv,json", "--dir", out))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestInvalidInputsThroughCLI(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorIs(t, run(t, dir, "sku", "list", "--channel", "amazon"), types.ErrInvalidChannel)
	assert.ErrorIs(t, run(t, dir, "cost", "list", "--month", "13"), types.ErrInvalidPeriod)
	assert.ErrorIs(t, run(t, dir, "sku", "save", "--year", "2025", "--month", "1"), types.ErrEmptySKU)
	assert.Error(t, run(t, dir, "summary", "--from", "2025-01"))
	assert.ErrorIs(t, run(t, dir, "backup"), types.ErrNoBackupBucket)
}

func TestParsePeriodLabel(t *testing.T) {
	p, err := parsePeriodLabel("2024-12")
	require.NoError(t, err)
	assert.Equal(t, entity.NewPeriod(2024, 12), p)

	p, err = parsePeriodLabel(" 3/2025 ")
	require.NoError(t, err)
	assert.Equal(t, entity.NewPeriod(2025, 3), p)

	for _, bad := range []string{"2025", "2025-13", "march-2025", ""} {
		_, err := parsePeriodLabel(bad)
		assert.ErrorIs(t, err, types.ErrInvalidPeriod, bad)
	}
}

func TestReadSalesPairs(t *testing.T) {
	skus, units, err := readSalesPairs(strings.NewReader("SKU,units\nA, 2\nB\n\nC,5,extra\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, skus)
	assert.Equal(t, []string{"2", "", "5"}, units)
}
