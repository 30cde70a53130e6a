package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/diillson/profit-tracker-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	currency string
	now      func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository(currency string) repository.ExportRepository {
	return &ExportRepositoryImpl{currency: currency, now: time.Now}
}

// --- Resumo mensal ---

var summaryHeader = []string{"Month", "Profit", "Expense", "Realized Profit"}

func (r *ExportRepositoryImpl) ExportSummaryToCSV(report entity.SummaryReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(summaryHeader); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, m := range report.Months {
		record := []string{m.Label(), m.Profit.StringFixed(2), m.Expense.StringFixed(2), m.Realized.StringFixed(2)}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}
	total := []string{"Total", report.Profit.StringFixed(2), report.Expense.StringFixed(2), report.Realized.StringFixed(2)}
	if err := writer.Write(total); err != nil {
		return "", fmt.Errorf("error writing CSV record: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

type monthJSON struct {
	Month    string `json:"month"`
	Profit   string `json:"profit"`
	Expense  string `json:"expense"`
	Realized string `json:"realized_profit"`
}

type summaryJSON struct {
	Title    string      `json:"title"`
	From     string      `json:"from"`
	To       string      `json:"to"`
	Currency string      `json:"currency"`
	Months   []monthJSON `json:"months"`
	Profit   string      `json:"total_profit"`
	Expense  string      `json:"total_expense"`
	Realized string      `json:"realized_profit"`
	HasData  bool        `json:"has_data"`
}

func (r *ExportRepositoryImpl) ExportSummaryToJSON(report entity.SummaryReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	out := summaryJSON{
		Title:    report.Title,
		From:     report.From.Label(),
		To:       report.To.Label(),
		Currency: r.currency,
		Months:   make([]monthJSON, 0, len(report.Months)),
		Profit:   report.Profit.StringFixed(2),
		Expense:  report.Expense.StringFixed(2),
		Realized: report.Realized.StringFixed(2),
		HasData:  report.HasData,
	}
	for _, m := range report.Months {
		out.Months = append(out.Months, monthJSON{
			Month:    m.Label(),
			Profit:   m.Profit.StringFixed(2),
			Expense:  m.Expense.StringFixed(2),
			Realized: m.Realized.StringFixed(2),
		})
	}

	if err := writeJSON(outputFilename, out); err != nil {
		return "", err
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSummaryToPDF(report entity.SummaryReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	r.drawHeader(pdf, tr, report.Title, fmt.Sprintf("  Period: %s to %s", report.From.Label(), report.To.Label()))

	drawSectionTitle(pdf, tr, "Totals")
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(95, 7, tr("Total Profit"), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, tr(r.money(report.Profit.StringFixed(2))), "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 7, tr("Total Expense"), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, tr(r.money(report.Expense.StringFixed(2))), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	if report.Realized.IsNegative() {
		pdf.SetTextColor(192, 0, 0)
	} else {
		pdf.SetTextColor(0, 128, 0)
	}
	pdf.CellFormat(95, 9, tr("Realized Profit"), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 9, tr(r.money(report.Realized.StringFixed(2))), "", 1, "R", false, 0, "")
	pdf.Ln(8)

	if len(report.Months) > 0 {
		drawSectionTitle(pdf, tr, "Monthly Breakdown")
		widths := []float64{40, 50, 50, 50}
		drawTableHeader(pdf, tr, summaryHeader, widths)
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for _, m := range report.Months {
			pdf.CellFormat(widths[0], 6, tr(m.Label()), "B", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], 6, tr(r.money(m.Profit.StringFixed(2))), "B", 0, "R", false, 0, "")
			pdf.CellFormat(widths[2], 6, tr(r.money(m.Expense.StringFixed(2))), "B", 0, "R", false, 0, "")
			pdf.CellFormat(widths[3], 6, tr(r.money(m.Realized.StringFixed(2))), "B", 1, "R", false, 0, "")
		}
	}

	r.drawFooter(pdf, tr, "Profit summary", 1)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSummaryToXLSX(report entity.SummaryReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := make([]interface{}, len(summaryHeader))
	for i, h := range summaryHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", fmt.Errorf("error writing XLSX header: %w", err)
	}

	row := 2
	for _, m := range report.Months {
		excelRow := []interface{}{
			m.Label(),
			m.Profit.InexactFloat64(),
			m.Expense.InexactFloat64(),
			m.Realized.InexactFloat64(),
		}
		if err := setRow(f, sheet, row, excelRow); err != nil {
			return "", err
		}
		row++
	}
	totalRow := []interface{}{
		"Total",
		report.Profit.InexactFloat64(),
		report.Expense.InexactFloat64(),
		report.Realized.InexactFloat64(),
	}
	if err := setRow(f, sheet, row, totalRow); err != nil {
		return "", err
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err == nil {
		_ = f.SetCellStyle(sheet, "B2", "D"+strconv.Itoa(row), style)
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Relatório de vendas ---

var salesHeader = []string{"SKU", "Units Sold", "Profit Per Unit", "Line Profit"}

func (r *ExportRepositoryImpl) ExportSalesReportToCSV(report entity.SalesReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(salesHeader); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, line := range report.Lines {
		perUnit, lineProfit := "unmatched", ""
		if line.Matched {
			perUnit = line.ProfitPerUnit.StringFixed(2)
			lineProfit = line.LineProfit.StringFixed(2)
		}
		if err := writer.Write([]string{line.SKU, strconv.Itoa(line.UnitsSold), perUnit, lineProfit}); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}
	if err := writer.Write([]string{"Total", "", "", report.TotalProfit.StringFixed(2)}); err != nil {
		return "", fmt.Errorf("error writing CSV record: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

type salesLineJSON struct {
	SKU           string `json:"sku"`
	UnitsSold     int    `json:"units_sold"`
	Matched       bool   `json:"matched"`
	ProfitPerUnit string `json:"profit_per_unit,omitempty"`
	LineProfit    string `json:"line_profit,omitempty"`
}

type salesJSON struct {
	Channel     string          `json:"channel"`
	Period      string          `json:"period"`
	Currency    string          `json:"currency"`
	Lines       []salesLineJSON `json:"lines"`
	TotalProfit string          `json:"total_profit"`
}

func (r *ExportRepositoryImpl) ExportSalesReportToJSON(report entity.SalesReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	out := salesJSON{
		Channel:     string(report.Channel),
		Period:      report.Period.Label(),
		Currency:    r.currency,
		Lines:       make([]salesLineJSON, 0, len(report.Lines)),
		TotalProfit: report.TotalProfit.StringFixed(2),
	}
	for _, line := range report.Lines {
		l := salesLineJSON{SKU: line.SKU, UnitsSold: line.UnitsSold, Matched: line.Matched}
		if line.Matched {
			l.ProfitPerUnit = line.ProfitPerUnit.StringFixed(2)
			l.LineProfit = line.LineProfit.StringFixed(2)
		}
		out.Lines = append(out.Lines, l)
	}

	if err := writeJSON(outputFilename, out); err != nil {
		return "", err
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSalesReportToPDF(report entity.SalesReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	r.drawHeader(pdf, tr,
		fmt.Sprintf("%s Sales Report", report.Channel.DisplayName()),
		fmt.Sprintf("  Period: %s", report.Period.Label()))

	drawSectionTitle(pdf, tr, "Sales")
	widths := []float64{70, 30, 45, 45}
	drawTableHeader(pdf, tr, salesHeader, widths)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	for _, line := range report.Lines {
		perUnit, lineProfit := "unmatched", "-"
		if line.Matched {
			perUnit = r.money(line.ProfitPerUnit.StringFixed(2))
			lineProfit = r.money(line.LineProfit.StringFixed(2))
		}
		pdf.CellFormat(widths[0], 6, tr(line.SKU), "B", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, strconv.Itoa(line.UnitsSold), "B", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(perUnit), "B", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, tr(lineProfit), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(145, 8, tr("Total Profit"), "", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, tr(r.money(report.TotalProfit.StringFixed(2))), "", 1, "R", false, 0, "")

	r.drawFooter(pdf, tr, "Sales report", 1)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

var (
	headerColor       = [3]int{40, 40, 40}
	headerTextColor   = [3]int{255, 255, 255}
	sectionTitleColor = [3]int{0, 0, 0}
	bodyTextColor     = [3]int{50, 50, 50}
	lineColor         = [3]int{200, 200, 200}
)

func (r *ExportRepositoryImpl) money(amount string) string {
	return r.currency + amount
}

func (r *ExportRepositoryImpl) drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, title, subtitle string) {
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  "+title), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(subtitle), "", 1, "L", true, 0, "")
	pdf.Ln(10)
}

func drawSectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
	pdf.Cell(0, 8, tr(title))
	pdf.Ln(7)

	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)
}

func drawTableHeader(pdf *gofpdf.Fpdf, tr func(string) string, columns []string, widths []float64) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	for i, col := range columns {
		align := "R"
		if i == 0 {
			align = "L"
		}
		ln := 0
		if i == len(columns)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 7, tr(col), "B", ln, align, false, 0, "")
	}
}

func (r *ExportRepositoryImpl) drawFooter(pdf *gofpdf.Fpdf, tr func(string) string, label string, page int) {
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("%s | Generated by Profit Tracker | %s", label, r.now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", page)), "", 0, "R", false, 0, "")
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("error resolving XLSX cell: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("error writing XLSX row: %w", err)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("error encoding JSON data: %w", err)
	}
	return nil
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
