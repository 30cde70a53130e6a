package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/diillson/profit-tracker-go/internal/application/usecase"
	"github.com/diillson/profit-tracker-go/internal/shared/types"
)

func (app *CLIApp) newSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show profit, expense and realized profit for a month, a year or a month range",
		Example: `  profit-tracker summary --year 2025 --month 3
  profit-tracker summary --year 2025 --trend
  profit-tracker summary --from 2024-11 --to 2025-02 --report-name q1 --report-type pdf,xlsx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := readSummaryQuery(cmd)
			if err != nil {
				return err
			}
			trend, _ := cmd.Flags().GetBool("trend")
			return app.useCases.Reports.RunSummary(query, app.args, trend)
		},
	}
	t := now()
	cmd.Flags().IntP("year", "Y", t.Year(), "Year to summarize")
	cmd.Flags().IntP("month", "M", 0, "Month to summarize (default: whole year)")
	cmd.Flags().String("from", "", "First month of a range, YYYY-MM")
	cmd.Flags().String("to", "", "Last month of a range, YYYY-MM")
	cmd.Flags().Bool("trend", false, "Display monthly profit and expense as bars")
	addReportFlags(cmd, "csv, json, pdf, xlsx")
	return cmd
}

func readSummaryQuery(cmd *cobra.Command) (usecase.SummaryQuery, error) {
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	fromRaw, _ := cmd.Flags().GetString("from")
	toRaw, _ := cmd.Flags().GetString("to")

	if fromRaw != "" || toRaw != "" {
		if fromRaw == "" || toRaw == "" {
			return usecase.SummaryQuery{}, fmt.Errorf("--from and --to must be used together")
		}
		from, err := parsePeriodLabel(fromRaw)
		if err != nil {
			return usecase.SummaryQuery{}, err
		}
		to, err := parsePeriodLabel(toRaw)
		if err != nil {
			return usecase.SummaryQuery{}, err
		}
		return usecase.SummaryQuery{Mode: usecase.SummaryRange, From: from, To: to}, nil
	}

	if month != 0 {
		return usecase.SummaryQuery{Mode: usecase.SummaryMonth, Year: year, Month: month}, nil
	}
	return usecase.SummaryQuery{Mode: usecase.SummaryYear, Year: year}, nil
}

func (app *CLIApp) newBackupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Upload every ledger file to s3://bucket/prefix/<timestamp>/",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			opts := types.BackupOptions{
				Bucket:  app.args.Backup.Bucket,
				Prefix:  app.args.Backup.Prefix,
				Profile: app.args.Backup.Profile,
				Region:  app.args.Backup.Region,
			}
			_, err := app.useCases.Backup.RunBackup(ctx, opts)
			return err
		},
	}
	cmd.Flags().String("bucket", "", "Destination S3 bucket")
	cmd.Flags().String("prefix", "", "Key prefix inside the bucket")
	cmd.Flags().String("profile", "", "AWS profile to use (default: SDK default chain)")
	cmd.Flags().String("region", "", "AWS region of the bucket")
	return cmd
}
