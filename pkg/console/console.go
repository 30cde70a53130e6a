package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/diillson/profit-tracker-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct {
	currency string
}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{currency: "£"}
}

// SetCurrency define o símbolo usado nos gráficos.
func (c *Console) SetCurrency(symbol string) {
	if symbol != "" {
		c.currency = symbol
	}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BoldRed     = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightCyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

func (c *Console) ProgressWithTotal(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Uploading ledger files").
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(false).
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayMonthlyBars exibe barras de lucro e despesa por mês, mais o resultado realizado.
func (c *Console) DisplayMonthlyBars(title string, months []types.MonthlyFigure) {
	maxValue := 0.0
	for _, m := range months {
		maxValue = math.Max(maxValue, math.Max(math.Abs(m.Profit), math.Abs(m.Expense)))
	}

	if maxValue == 0 {
		pterm.Warning.Printfln("All figures are %s0.00 for this period", c.currency)
		return
	}

	tableData := pterm.TableData{
		{"Month", "Profit", "", "Expenses", "", "Realized"},
	}

	yearTotal := 0.0
	for _, m := range months {
		profitBar := strings.Repeat("█", int((math.Abs(m.Profit)/maxValue)*30))
		expenseBar := strings.Repeat("█", int((m.Expense/maxValue)*30))
		if m.Expense < 0 {
			expenseBar = ""
		}

		realized := m.Profit - m.Expense
		yearTotal += realized

		realizedText := pterm.FgGreen.Sprintf("%s%.2f", c.currency, realized)
		profitColored := pterm.FgGreen.Sprint(profitBar)
		if realized < 0 {
			realizedText = pterm.FgRed.Sprintf("%s%.2f", c.currency, realized)
		}
		if m.Profit < 0 {
			profitColored = pterm.FgRed.Sprint(profitBar)
		}

		tableData = append(tableData, []string{
			m.Month,
			fmt.Sprintf("%s%.2f", c.currency, m.Profit),
			profitColored,
			fmt.Sprintf("%s%.2f", c.currency, m.Expense),
			pterm.FgYellow.Sprint(expenseBar),
			realizedText,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	footer := fmt.Sprintf("\nTotal realized: %s", BrightCyan(fmt.Sprintf("%s%.2f", c.currency, yearTotal)))
	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable + footer)

	fmt.Println("\n" + panel)
}
