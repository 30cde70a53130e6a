package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (app *CLIApp) newSalesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Record units sold and report channel sales",
	}
	cmd.AddCommand(app.newSalesSetCommand(), app.newSalesReportCommand())
	return cmd
}

func (app *CLIApp) newSalesSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set units sold for SKUs in the period",
		Long: "Set units sold for SKUs in the period. Pairs come from repeated --sku/--units flags " +
			"or from a two-column file (sku,units). Pairs are matched in order and extra values are ignored.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ch, err := readChannel(cmd)
			if err != nil {
				return err
			}
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}

			skus, _ := cmd.Flags().GetStringArray("sku")
			units, _ := cmd.Flags().GetStringArray("units")
			if file, _ := cmd.Flags().GetString("file"); file != "" {
				fileSKUs, fileUnits, err := readSalesFile(file)
				if err != nil {
					return err
				}
				skus = append(skus, fileSKUs...)
				units = append(units, fileUnits...)
			}
			if len(skus) == 0 {
				return fmt.Errorf("no sales given: use --sku/--units or --file")
			}

			count, err := app.useCases.Ledger.SaveSales(ch, p, skus, units)
			if err != nil {
				return err
			}
			app.console.LogSuccess("%d sales entries processed for %s (%s)", count, p.Label(), ch.DisplayName())
			return nil
		},
	}
	cmd.Flags().StringArrayP("sku", "s", nil, "SKU identifier (repeatable)")
	cmd.Flags().StringArrayP("units", "u", nil, "Units sold, paired with --sku in order (repeatable)")
	cmd.Flags().StringP("file", "f", "", "Two-column file of sku,units pairs")
	addChannelFlag(cmd)
	addPeriodFlags(cmd)
	return cmd
}

func (app *CLIApp) newSalesReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show sales of a channel for the period, valued at the stored profit per unit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ch, err := readChannel(cmd)
			if err != nil {
				return err
			}
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			return app.useCases.Reports.RunSalesReport(ch, p, app.args)
		},
	}
	addChannelFlag(cmd)
	addPeriodFlags(cmd)
	addReportFlags(cmd, "csv, json, pdf")
	return cmd
}
