package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/diillson/profit-tracker-go/internal/adapter/driven/config"
	"github.com/diillson/profit-tracker-go/internal/application/usecase"
	"github.com/diillson/profit-tracker-go/internal/domain/repository"
	"github.com/diillson/profit-tracker-go/internal/shared/types"
	"github.com/diillson/profit-tracker-go/pkg/logger"
	"github.com/diillson/profit-tracker-go/pkg/version"
)

// UseCases agrupa os casos de uso montados para um diretório de dados.
type UseCases struct {
	Ledger  *usecase.LedgerUseCase
	Reports *usecase.ReportUseCase
	Backup  *usecase.BackupUseCase
}

// UseCaseFactory monta os casos de uso a partir dos argumentos já resolvidos.
type UseCaseFactory func(args types.CLIArgs, log logger.Logger) (*UseCases, error)

// CurrencyConsole é um console que aceita o símbolo de moeda configurado.
type CurrencyConsole interface {
	types.ConsoleInterface
	SetCurrency(symbol string)
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	console    CurrencyConsole
	factory    UseCaseFactory
	getenv     func(string) string
	version    string

	args     *types.CLIArgs
	useCases *UseCases
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, console CurrencyConsole, factory UseCaseFactory) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
		console:    console,
		factory:    factory,
		getenv:     os.Getenv,
		version:    versionStr,
	}

	rootCmd := &cobra.Command{
		Use:               "profit-tracker",
		Short:             "Profit and expense ledger for eBay, WooCommerce and B2B sales",
		Version:           version.FormatVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			displayWelcomeBanner(app.version)
			return cmd.Help()
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "Profit Tracker version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("data-dir", "D", "", "Directory holding the ledger CSV files (default: current directory)")
	rootCmd.PersistentFlags().String("log-level", "", "Operational log level: debug, info, warn, error (default: warn)")
	rootCmd.PersistentFlags().String("currency", "", "Currency symbol used in output (default: £)")

	rootCmd.AddCommand(
		app.newSKUCommand(),
		app.newSalesCommand(),
		app.newB2BCommand(),
		app.newCostCommand(),
		app.newPeriodCommand(),
		app.newSummaryCommand(),
		app.newBackupCommand(),
	)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs lê as flags globais e, quando presentes no comando, as de relatório e backup.
func (app *CLIApp) parseArgs(cmd *cobra.Command) types.CLIArgs {
	flags := cmd.Flags()
	str := func(name string) string {
		v, _ := flags.GetString(name)
		return v
	}
	reportType, _ := flags.GetStringSlice("report-type")

	return types.CLIArgs{
		ConfigFile: str("config-file"),
		DataDir:    str("data-dir"),
		Currency:   str("currency"),
		LogLevel:   str("log-level"),
		ReportName: str("report-name"),
		ReportType: reportType,
		Dir:        str("dir"),
		Backup: types.BackupConfig{
			Bucket:  str("bucket"),
			Prefix:  str("prefix"),
			Profile: str("profile"),
			Region:  str("region"),
		},
	}
}

// setup resolve a configuração e monta os casos de uso antes de cada subcomando.
func (app *CLIApp) setup(cmd *cobra.Command, _ []string) error {
	if skipSetup(cmd) {
		return nil
	}
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	args, err := config.ResolveArgs(app.configRepo, app.parseArgs(cmd), app.getenv)
	if err != nil {
		return err
	}

	log := logger.New(args.LogLevel)
	log.WithFields(logger.Fields{"command": cmd.CommandPath(), "data_dir": args.DataDir}).Debugf("starting")

	app.console.SetCurrency(args.Currency)

	useCases, err := app.factory(args, log)
	if err != nil {
		return err
	}

	app.args = &args
	app.useCases = useCases
	return nil
}

func skipSetup(cmd *cobra.Command) bool {
	if !cmd.HasParent() || cmd.Name() == "help" {
		return true
	}
	return cmd.Parent().Name() == "completion"
}
