package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/diillson/profit-tracker-go/internal/shared/types"
	"github.com/diillson/profit-tracker-go/pkg/console"
)

var skuFieldFlags = []struct {
	name  string
	usage string
}{
	{"category", "Category of the SKU"},
	{"price", "Sold price after VAT"},
	{"cost", "Cost of the item"},
	{"packaging", "Packaging: comma-separated amounts or cost names of the same period"},
	{"fee-percent", "Transaction fee percentage of the price after VAT"},
	{"fee-flat", "Flat transaction fee"},
	{"delivery", "Delivery cost"},
}

func (app *CLIApp) newSKUCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sku",
		Short: "Manage SKU valuations per channel and month",
	}
	cmd.AddCommand(
		app.newSKUSaveCommand(),
		app.newSKUEditCommand(),
		app.newSKUListCommand(),
		app.newSKUCategoriesCommand(),
		app.newSKUDeleteCommand(),
		app.newSKUMoveCommand(),
	)
	return cmd
}

func addSKUFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("sku", "s", "", "SKU identifier")
	for _, f := range skuFieldFlags {
		cmd.Flags().String(f.name, "", f.usage)
	}
	addChannelFlag(cmd)
	addPeriodFlags(cmd)
}

func (app *CLIApp) newSKUSaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Value a SKU and save it for the period (replaces an existing entry)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ch, err := readChannel(cmd)
			if err != nil {
				return err
			}
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			get := func(name string) string {
				v, _ := cmd.Flags().GetString(name)
				return v
			}
			in := types.SKUInput{
				SKU:           get("sku"),
				Category:      get("category"),
				PriceAfterVAT: get("price"),
				CostOfItem:    get("cost"),
				Packaging:     get("packaging"),
				FeePercent:    get("fee-percent"),
				FeeFlat:       get("fee-flat"),
				Delivery:      get("delivery"),
			}
			entry, _, err := app.useCases.Ledger.SaveSKU(ch, p, in)
			if err != nil {
				return err
			}
			app.printSKUs([]entity.SKUEntry{entry})
			app.console.LogSuccess("SKU '%s' saved for %s (%s)", entry.SKU, p.Label(), ch.DisplayName())
			return nil
		},
	}
	addSKUFieldFlags(cmd)
	return cmd
}

func (app *CLIApp) newSKUEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change fields of a saved SKU and recompute its valuation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ch, err := readChannel(cmd)
			if err != nil {
				return err
			}
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			sku, _ := cmd.Flags().GetString("sku")

			changed := func(name string) *string {
				if !cmd.Flags().Changed(name) {
					return nil
				}
				v, _ := cmd.Flags().GetString(name)
				return &v
			}
			edit := types.SKUEdit{
				Category:      changed("category"),
				PriceAfterVAT: changed("price"),
				CostOfItem:    changed("cost"),
				Packaging:     changed("packaging"),
				FeePercent:    changed("fee-percent"),
				FeeFlat:       changed("fee-flat"),
				Delivery:      changed("delivery"),
			}

			entry, _, err := app.useCases.Ledger.EditSKU(ch, p, sku, edit)
			if err != nil {
				return err
			}
			app.printSKUs([]entity.SKUEntry{entry})
			app.console.LogSuccess("SKU '%s' updated for %s (%s)", entry.SKU, p.Label(), ch.DisplayName())
			return nil
		},
	}
	addSKUFieldFlags(cmd)
	return cmd
}

func (app *CLIApp) newSKUListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the SKUs of a period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ch, err := readChannel(cmd)
			if err != nil {
				return err
			}
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			category, _ := cmd.Flags().GetString("category")

			entries, err := app.useCases.Ledger.ListSKUs(ch, p, category)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				app.console.LogInfo("No %s SKUs recorded for %s", ch.DisplayName(), p.Label())
				return nil
			}
			app.printSKUs(entries)
			return nil
		},
	}
	cmd.Flags().String("category", "All", "Only list this category")
	addChannelFlag(cmd)
	addPeriodFlags(cmd)
	return cmd
}

func (app *CLIApp) newSKUCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the categories of a period and their SKUs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ch, err := readChannel(cmd)
			if err != nil {
				return err
			}
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			groups, err := app.useCases.Ledger.Categories(ch, p)
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				app.console.LogInfo("No %s SKUs recorded for %s", ch.DisplayName(), p.Label())
				return nil
			}

			table := app.console.CreateTable()
			table.AddColumn("Category")
			table.AddColumn("SKUs")
			for _, g := range groups {
				name := g.Category
				if name == "" {
					name = "(none)"
				}
				table.AddRow(console.BrightCyan(name), strings.Join(g.SKUs, ", "))
			}
			app.console.Print(table.Render())
			return nil
		},
	}
	addChannelFlag(cmd)
	addPeriodFlags(cmd)
	return cmd
}

func (app *CLIApp) newSKUDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a SKU of a category from the period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ch, err := readChannel(cmd)
			if err != nil {
				return err
			}
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			sku, _ := cmd.Flags().GetString("sku")
			category, _ := cmd.Flags().GetString("category")

			removed, err := app.useCases.Ledger.DeleteSKU(ch, p, sku, category)
			if err != nil {
				return err
			}
			if removed == 0 {
				app.console.LogWarning("No SKU '%s' in category '%s' for %s", sku, category, p.Label())
				return nil
			}
			app.console.LogSuccess("Deleted SKU '%s' from '%s' for %s", sku, category, p.Label())
			return nil
		},
	}
	cmd.Flags().StringP("sku", "s", "", "SKU identifier")
	cmd.Flags().String("category", "", "Category the SKU is filed under")
	addChannelFlag(cmd)
	addPeriodFlags(cmd)
	return cmd
}

func (app *CLIApp) newSKUMoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a SKU to another category within the period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ch, err := readChannel(cmd)
			if err != nil {
				return err
			}
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			sku, _ := cmd.Flags().GetString("sku")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			moved, err := app.useCases.Ledger.MoveSKUCategory(ch, p, sku, from, to)
			if err != nil {
				return err
			}
			if moved == 0 {
				app.console.LogWarning("No SKU '%s' in category '%s' for %s", sku, from, p.Label())
				return nil
			}
			app.console.LogSuccess("Moved SKU '%s' from '%s' to '%s'", sku, from, to)
			return nil
		},
	}
	cmd.Flags().StringP("sku", "s", "", "SKU identifier")
	cmd.Flags().String("from", "", "Current category")
	cmd.Flags().String("to", "", "New category")
	addChannelFlag(cmd)
	addPeriodFlags(cmd)
	return cmd
}

func (app *CLIApp) printSKUs(entries []entity.SKUEntry) {
	table := app.console.CreateTable()
	for _, col := range []string{"SKU", "Category", "Price", "Before VAT", "Item Cost", "Packaging", "Fee", "Delivery", "Expenses", "Margin %", "Profit"} {
		table.AddColumn(col)
	}
	for _, e := range entries {
		profit := app.money(e.Profit.StringFixed(2))
		if e.Profit.IsNegative() {
			profit = console.BoldRed(profit)
		} else {
			profit = console.BrightGreen(profit)
		}
		table.AddRow(
			e.SKU,
			e.Category,
			app.money(e.SoldPriceAfterVAT.StringFixed(2)),
			app.money(e.SoldPriceBeforeVAT.StringFixed(2)),
			app.money(e.CostOfItem.StringFixed(2)),
			e.Packaging,
			app.money(e.TransactionFee.StringFixed(2)),
			app.money(e.Delivery.StringFixed(2)),
			app.money(e.TotalExpenses.StringFixed(2)),
			e.ProfitMargin.StringFixed(2),
			profit,
		)
	}
	app.console.Print(table.Render())
}

func (app *CLIApp) money(amount string) string {
	return app.args.Currency + amount
}
