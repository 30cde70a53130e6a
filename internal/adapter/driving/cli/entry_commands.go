package cli

import (
	"github.com/spf13/cobra"
)

func (app *CLIApp) newB2BCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "b2b",
		Short: "Manage business-to-business transactions",
	}

	save := &cobra.Command{
		Use:   "save",
		Short: "Save a B2B transaction for the period (replaces an existing one)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("name")
			expense, _ := cmd.Flags().GetString("expense")
			profit, _ := cmd.Flags().GetString("profit")

			entry, err := app.useCases.Ledger.SaveB2B(p, name, expense, profit)
			if err != nil {
				return err
			}
			app.console.LogSuccess("B2B entry '%s' saved for %s: profit %s, expense %s",
				entry.BusinessName, p.Label(),
				app.money(entry.Profit.StringFixed(2)), app.money(entry.Expense.StringFixed(2)))
			return nil
		},
	}
	save.Flags().String("name", "", "Business name")
	save.Flags().String("expense", "", "Expense of the transaction")
	save.Flags().String("profit", "", "Profit of the transaction")
	addPeriodFlags(save)

	list := &cobra.Command{
		Use:   "list",
		Short: "List B2B transactions of the period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			entries, err := app.useCases.Ledger.ListB2B(p)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				app.console.LogInfo("No B2B transactions recorded for %s", p.Label())
				return nil
			}
			table := app.console.CreateTable()
			table.AddColumn("Business")
			table.AddColumn("Expense")
			table.AddColumn("Profit")
			for _, e := range entries {
				table.AddRow(e.BusinessName, app.money(e.Expense.StringFixed(2)), app.money(e.Profit.StringFixed(2)))
			}
			app.console.Print(table.Render())
			return nil
		},
	}
	addPeriodFlags(list)

	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete a B2B transaction from the period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("name")
			removed, err := app.useCases.Ledger.DeleteB2B(p, name)
			if err != nil {
				return err
			}
			if removed == 0 {
				app.console.LogWarning("No B2B transaction '%s' for %s", name, p.Label())
				return nil
			}
			app.console.LogSuccess("Deleted B2B transaction '%s' for %s", name, p.Label())
			return nil
		},
	}
	del.Flags().String("name", "", "Business name")
	addPeriodFlags(del)

	cmd.AddCommand(save, list, del)
	return cmd
}

func (app *CLIApp) newCostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Manage named costs used by packaging specs",
	}

	save := &cobra.Command{
		Use:   "save",
		Short: "Save a named cost for the period (replaces an existing one)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("name")
			value, _ := cmd.Flags().GetString("value")

			entry, err := app.useCases.Ledger.SaveCost(p, name, value)
			if err != nil {
				return err
			}
			app.console.LogSuccess("Cost '%s' saved for %s: %s", entry.CostName, p.Label(), app.money(entry.CostValue.StringFixed(2)))
			return nil
		},
	}
	save.Flags().String("name", "", "Cost name")
	save.Flags().String("value", "", "Cost value")
	addPeriodFlags(save)

	list := &cobra.Command{
		Use:   "list",
		Short: "List named costs of the period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			entries, err := app.useCases.Ledger.ListCosts(p)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				app.console.LogInfo("No costs recorded for %s", p.Label())
				return nil
			}
			table := app.console.CreateTable()
			table.AddColumn("Cost")
			table.AddColumn("Value")
			for _, e := range entries {
				table.AddRow(e.CostName, app.money(e.CostValue.StringFixed(2)))
			}
			app.console.Print(table.Render())
			return nil
		},
	}
	addPeriodFlags(list)

	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete a named cost from the period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("name")
			removed, err := app.useCases.Ledger.DeleteCost(p, name)
			if err != nil {
				return err
			}
			if removed == 0 {
				app.console.LogWarning("No cost '%s' for %s", name, p.Label())
				return nil
			}
			app.console.LogSuccess("Deleted cost '%s' for %s", name, p.Label())
			return nil
		},
	}
	del.Flags().String("name", "", "Cost name")
	addPeriodFlags(del)

	cmd.AddCommand(save, list, del)
	return cmd
}
