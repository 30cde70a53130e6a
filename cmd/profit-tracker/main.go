package main

import (
	"fmt"
	"os"

	"github.com/diillson/profit-tracker-go/internal/adapter/driven/aws"
	"github.com/diillson/profit-tracker-go/internal/adapter/driven/config"
	"github.com/diillson/profit-tracker-go/internal/adapter/driven/csvstore"
	"github.com/diillson/profit-tracker-go/internal/adapter/driven/export"
	"github.com/diillson/profit-tracker-go/internal/adapter/driving/cli"
	"github.com/diillson/profit-tracker-go/internal/application/usecase"
	"github.com/diillson/profit-tracker-go/internal/shared/types"
	"github.com/diillson/profit-tracker-go/pkg/console"
	"github.com/diillson/profit-tracker-go/pkg/logger"
	"github.com/diillson/profit-tracker-go/pkg/version"
)

func main() {
	// Inicializa os repositórios independentes do diretório de dados
	configRepo := config.NewConfigRepository()
	backupRepo := aws.NewBackupRepository()
	consoleImpl := console.NewConsole()

	// Os casos de uso dependem do diretório de dados resolvido em tempo de execução
	factory := func(args types.CLIArgs, log logger.Logger) (*cli.UseCases, error) {
		store, err := csvstore.Open(args.DataDir)
		if err != nil {
			return nil, err
		}
		exportRepo := export.NewExportRepository(args.Currency)

		return &cli.UseCases{
			Ledger:  usecase.NewLedgerUseCase(store, store, consoleImpl, log, args.Currency),
			Reports: usecase.NewReportUseCase(store, exportRepo, consoleImpl, log, args.Currency),
			Backup:  usecase.NewBackupUseCase(backupRepo, store, consoleImpl, log),
		}, nil
	}

	app := cli.NewCLIApp(version.Version, configRepo, consoleImpl, factory)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
