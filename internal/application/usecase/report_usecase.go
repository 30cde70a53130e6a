package usecase

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/diillson/profit-tracker-go/internal/domain/ledger"
	"github.com/diillson/profit-tracker-go/internal/domain/repository"
	"github.com/diillson/profit-tracker-go/internal/shared/types"
	"github.com/diillson/profit-tracker-go/pkg/logger"
)

// SummaryMode selects the scope of a summary query.
type SummaryMode int

const (
	SummaryMonth SummaryMode = iota
	SummaryYear
	SummaryRange
)

// SummaryQuery describes one summary request.
type SummaryQuery struct {
	Mode  SummaryMode
	Year  int
	Month int
	From  entity.Period
	To    entity.Period
}

// Scope resolves the inclusive month range and the title of the query.
func (q SummaryQuery) Scope() (entity.Period, entity.Period, string, error) {
	switch q.Mode {
	case SummaryMonth:
		p := entity.NewPeriod(q.Year, q.Month)
		if !p.Valid() {
			return entity.Period{}, entity.Period{}, "", fmt.Errorf("%w (got %d)", types.ErrInvalidPeriod, q.Month)
		}
		return p, p, fmt.Sprintf("Summary for %s", p.Label()), nil
	case SummaryYear:
		return entity.NewPeriod(q.Year, 1), entity.NewPeriod(q.Year, 12), fmt.Sprintf("Summary for %d", q.Year), nil
	case SummaryRange:
		if !q.From.Valid() || !q.To.Valid() {
			return entity.Period{}, entity.Period{}, "", types.ErrInvalidPeriod
		}
		return q.From, q.To, fmt.Sprintf("Summary from %s to %s", q.From.Label(), q.To.Label()), nil
	}
	return entity.Period{}, entity.Period{}, "", fmt.Errorf("unknown summary mode %d", q.Mode)
}

// ReportUseCase reads every collection and produces summaries and sales reports.
type ReportUseCase struct {
	ledgerRepo repository.LedgerRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	log        logger.Logger
	currency   string
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	ledgerRepo repository.LedgerRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	log logger.Logger,
	currency string,
) *ReportUseCase {
	return &ReportUseCase{
		ledgerRepo: ledgerRepo,
		exportRepo: exportRepo,
		console:    console,
		log:        log,
		currency:   currency,
	}
}

func (uc *ReportUseCase) loadCollections() (ledger.Collections, error) {
	c := ledger.Collections{
		SKUs:  make(map[entity.Channel][]entity.SKUEntry),
		Sales: make(map[entity.Channel][]entity.SalesEntry),
	}
	for _, ch := range entity.Channels {
		skus, err := uc.ledgerRepo.LoadSKUs(ch)
		if err != nil {
			return c, err
		}
		sales, err := uc.ledgerRepo.LoadSales(ch)
		if err != nil {
			return c, err
		}
		c.SKUs[ch] = skus
		c.Sales[ch] = sales
	}
	b2b, err := uc.ledgerRepo.LoadB2B()
	if err != nil {
		return c, err
	}
	c.B2B = b2b
	return c, nil
}

// Summary aggregates every collection over the scope of the query.
func (uc *ReportUseCase) Summary(q SummaryQuery) (entity.SummaryReport, error) {
	from, to, title, err := q.Scope()
	if err != nil {
		return entity.SummaryReport{}, err
	}
	c, err := uc.loadCollections()
	if err != nil {
		return entity.SummaryReport{}, err
	}
	totals := ledger.Aggregate(c)
	report := ledger.Summarize(title, totals, from, to)

	uc.log.WithFields(logger.Fields{"from": from.Label(), "to": to.Label()}).
		Debugf("summary over %d months, has data: %t", len(report.Months), report.HasData)
	return report, nil
}

// SalesReport values the sales of one channel for one period.
func (uc *ReportUseCase) SalesReport(ch entity.Channel, p entity.Period) (entity.SalesReport, error) {
	if !p.Valid() {
		return entity.SalesReport{}, fmt.Errorf("%w (got %d)", types.ErrInvalidPeriod, p.Month)
	}
	skus, err := uc.ledgerRepo.LoadSKUs(ch)
	if err != nil {
		return entity.SalesReport{}, err
	}
	sales, err := uc.ledgerRepo.LoadSales(ch)
	if err != nil {
		return entity.SalesReport{}, err
	}
	return ledger.BuildSalesReport(ch, p, skus, sales), nil
}

func (uc *ReportUseCase) money(v decimal.Decimal) string {
	return uc.currency + v.StringFixed(2)
}

// RunSummary executa o resumo, exibe a tabela mensal e exporta os relatórios pedidos.
func (uc *ReportUseCase) RunSummary(q SummaryQuery, args *types.CLIArgs, trend bool) error {
	status := uc.console.Status("Aggregating ledger...")
	report, err := uc.Summary(q)
	status.Stop()
	if err != nil {
		return err
	}

	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprint(report.Title))

	table := uc.console.CreateTable()
	table.AddColumn("Month")
	table.AddColumn("Profit")
	table.AddColumn("Expense")
	table.AddColumn("Realized Profit")
	for _, m := range report.Months {
		table.AddRow(m.Label(), uc.money(m.Profit), uc.money(m.Expense), uc.money(m.Realized))
	}
	uc.console.Print(table.Render())

	uc.console.Printf("Total Profit: %s\n", uc.money(report.Profit))
	uc.console.Printf("Total Expense: %s\n", uc.money(report.Expense))
	uc.console.Printf("Realized Profit: %s\n", uc.money(report.Realized))

	if !report.HasData {
		uc.console.LogWarning("No sales or B2B activity recorded between %s and %s", report.From.Label(), report.To.Label())
	}

	if trend {
		figures := make([]types.MonthlyFigure, len(report.Months))
		for i, m := range report.Months {
			figures[i] = types.MonthlyFigure{
				Month:   m.Label(),
				Profit:  m.Profit.InexactFloat64(),
				Expense: m.Expense.InexactFloat64(),
			}
		}
		uc.console.DisplayMonthlyBars(report.Title, figures)
	}

	if args != nil && args.ReportName != "" {
		for _, reportType := range args.ReportType {
			switch reportType {
			case "csv":
				path, err := uc.exportRepo.ExportSummaryToCSV(report, args.ReportName, args.Dir)
				uc.reportExport("CSV", path, err)
			case "json":
				path, err := uc.exportRepo.ExportSummaryToJSON(report, args.ReportName, args.Dir)
				uc.reportExport("JSON", path, err)
			case "pdf":
				path, err := uc.exportRepo.ExportSummaryToPDF(report, args.ReportName, args.Dir)
				uc.reportExport("PDF", path, err)
			case "xlsx":
				path, err := uc.exportRepo.ExportSummaryToXLSX(report, args.ReportName, args.Dir)
				uc.reportExport("XLSX", path, err)
			default:
				uc.console.LogWarning("Unsupported report type '%s'", reportType)
			}
		}
	}

	return nil
}

// RunSalesReport exibe as vendas de um canal no período e exporta se pedido.
func (uc *ReportUseCase) RunSalesReport(ch entity.Channel, p entity.Period, args *types.CLIArgs) error {
	report, err := uc.SalesReport(ch, p)
	if err != nil {
		return err
	}

	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprintf("%s sales for %s", ch.DisplayName(), p.Label()))

	if len(report.Lines) == 0 {
		uc.console.LogInfo("No sales recorded for %s in %s", ch.DisplayName(), p.Label())
	} else {
		table := uc.console.CreateTable()
		table.AddColumn("SKU")
		table.AddColumn("Units Sold")
		table.AddColumn("Profit / Unit")
		table.AddColumn("Line Profit")
		for _, line := range report.Lines {
			if !line.Matched {
				table.AddRow(line.SKU, line.UnitsSold, "unmatched", "-")
				continue
			}
			table.AddRow(line.SKU, line.UnitsSold, uc.money(line.ProfitPerUnit), uc.money(line.LineProfit))
		}
		uc.console.Print(table.Render())
	}
	uc.console.Printf("Total Profit: %s\n", uc.money(report.TotalProfit))

	if args != nil && args.ReportName != "" {
		for _, reportType := range args.ReportType {
			switch reportType {
			case "csv":
				path, err := uc.exportRepo.ExportSalesReportToCSV(report, args.ReportName, args.Dir)
				uc.reportExport("CSV", path, err)
			case "json":
				path, err := uc.exportRepo.ExportSalesReportToJSON(report, args.ReportName, args.Dir)
				uc.reportExport("JSON", path, err)
			case "pdf":
				path, err := uc.exportRepo.ExportSalesReportToPDF(report, args.ReportName, args.Dir)
				uc.reportExport("PDF", path, err)
			default:
				uc.console.LogWarning("Report type '%s' is not available for sales reports", reportType)
			}
		}
	}
	return nil
}

func (uc *ReportUseCase) reportExport(kind, path string, err error) {
	if err != nil {
		uc.console.LogError("Failed to export to %s: %s", kind, err)
		uc.log.WithError(err).Errorf("export to %s failed", kind)
		return
	}
	uc.console.LogSuccess("Successfully exported to %s: %s", kind, path)
}
