package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/diillson/profit-tracker-go/internal/shared/types"
)

type fakeConsole struct {
	out      strings.Builder
	warnings []string
	errors   []string
	success  []string
	bars     [][]types.MonthlyFigure
}

func (c *fakeConsole) Print(a ...interface{}) { fmt.Fprint(&c.out, a...) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.out, format, a...) }
func (c *fakeConsole) Println(a ...interface{}) { fmt.Fprintln(&c.out, a...) }

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	fmt.Fprintf(&c.out, format+"\n", a...)
}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(string) types.StatusHandle { return fakeHandle{} }
func (c *fakeConsole) ProgressWithTotal(int) types.ProgressHandle { return fakeHandle{} }
func (c *fakeConsole) CreateTable() types.TableInterface { return &fakeTable{} }

func (c *fakeConsole) DisplayMonthlyBars(_ string, months []types.MonthlyFigure) {
	c.bars = append(c.bars, months)
}

type fakeHandle struct{}

func (fakeHandle) Update(string) {}
func (fakeHandle) Increment() {}
func (fakeHandle) Stop() {}

type fakeTable struct {
	rows []string
}

func (t *fakeTable) AddColumn(string, ...interface{}) {}

func (t *fakeTable) AddRow(cells ...interface{}) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, strings.Join(parts, " | "))
}

func (t *fakeTable) Render() string {
	return strings.Join(t.rows, "\n") + "\n"
}

type fakeExporter struct {
	calls []string
}

func (e *fakeExporter) record(kind, name, dir string) (string, error) {
	e.calls = append(e.calls, kind)
	return dir + "/" + name + "." + kind, nil
}

func (e *fakeExporter) ExportSummaryToCSV(_ entity.SummaryReport, name, dir string) (string, error) {
	return e.record("summary.csv", name, dir)
}

func (e *fakeExporter) ExportSummaryToJSON(_ entity.SummaryReport, name, dir string) (string, error) {
	return e.record("summary.json", name, dir)
}

func (e *fakeExporter) ExportSummaryToPDF(_ entity.SummaryReport, name, dir string) (string, error) {
	return e.record("summary.pdf", name, dir)
}

func (e *fakeExporter) ExportSummaryToXLSX(_ entity.SummaryReport, name, dir string) (string, error) {
	return e.record("summary.xlsx", name, dir)
}

func (e *fakeExporter) ExportSalesReportToCSV(_ entity.SalesReport, name, dir string) (string, error) {
	return e.record("sales.csv", name, dir)
}

func (e *fakeExporter) ExportSalesReportToJSON(_ entity.SalesReport, name, dir string) (string, error) {
	return e.record("sales.json", name, dir)
}

func (e *fakeExporter) ExportSalesReportToPDF(_ entity.SalesReport, name, dir string) (string, error) {
	return e.record("sales.pdf", name, dir)
}
