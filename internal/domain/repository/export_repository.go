package repository

import (
	"github.com/diillson/profit-tracker-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportSummaryToCSV(report entity.SummaryReport, filename, outputDir string) (string, error)
	ExportSummaryToJSON(report entity.SummaryReport, filename, outputDir string) (string, error)
	ExportSummaryToPDF(report entity.SummaryReport, filename, outputDir string) (string, error)
	ExportSummaryToXLSX(report entity.SummaryReport, filename, outputDir string) (string, error)

	// Sales report
	ExportSalesReportToCSV(report entity.SalesReport, filename, outputDir string) (string, error)
	ExportSalesReportToJSON(report entity.SalesReport, filename, outputDir string) (string, error)
	ExportSalesReportToPDF(report entity.SalesReport, filename, outputDir string) (string, error)
}
