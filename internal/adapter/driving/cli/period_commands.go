package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/diillson/profit-tracker-go/internal/application/usecase"
	"github.com/diillson/profit-tracker-go/pkg/console"
)

func (app *CLIApp) newPeriodCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Archive, reopen and carry over monthly periods",
	}

	archive := &cobra.Command{
		Use:   "archive",
		Short: "Mark the period as done; it can no longer be changed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			if err := app.useCases.Ledger.ArchivePeriod(p); err != nil {
				return err
			}
			app.console.LogSuccess("%s archived", p.Label())
			return nil
		},
	}
	addPeriodFlags(archive)

	unarchive := &cobra.Command{
		Use:   "unarchive",
		Short: "Reopen an archived period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			if err := app.useCases.Ledger.UnarchivePeriod(p); err != nil {
				return err
			}
			app.console.LogSuccess("%s reopened", p.Label())
			return nil
		},
	}
	addPeriodFlags(unarchive)

	status := &cobra.Command{
		Use:   "status",
		Short: "Show whether the period is archived, or every flagged period with --all",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if all, _ := cmd.Flags().GetBool("all"); all {
				flags, err := app.useCases.Ledger.ArchiveFlags()
				if err != nil {
					return err
				}
				if len(flags) == 0 {
					app.console.LogInfo("No period has been archived yet")
					return nil
				}
				table := app.console.CreateTable()
				table.AddColumn("Period")
				table.AddColumn("Status")
				for _, f := range flags {
					table.AddRow(f.Period.Label(), statusText(f.Archived))
				}
				app.console.Print(table.Render())
				return nil
			}

			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			archived, err := app.useCases.Ledger.PeriodStatus(p)
			if err != nil {
				return err
			}
			app.console.Printf("%s: %s\n", p.Label(), statusText(archived))
			return nil
		},
	}
	status.Flags().Bool("all", false, "List every period with an archive flag")
	addPeriodFlags(status)

	carry := &cobra.Command{
		Use:   "carry-over",
		Short: "Copy SKUs, B2B entries and costs of the previous month into the period",
		Long: "Copy SKUs, B2B entries and costs of the previous month into the period. Rows already " +
			"present in the period are kept, so running it again adds nothing. Sales are never copied.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := readPeriod(cmd)
			if err != nil {
				return err
			}
			rawKinds, _ := cmd.Flags().GetStringSlice("kind")
			kinds := make([]usecase.CarryKind, 0, len(rawKinds))
			for _, raw := range rawKinds {
				kind, err := usecase.ParseCarryKind(raw)
				if err != nil {
					return err
				}
				kinds = append(kinds, kind)
			}

			result, err := app.useCases.Ledger.CarryOver(p, kinds...)
			if err != nil {
				return err
			}

			table := app.console.CreateTable()
			table.AddColumn("Collection")
			table.AddColumn("Rows Carried")
			for _, kind := range usecase.AllCarryKinds {
				if n, ok := result.Carried[kind]; ok {
					table.AddRow(string(kind), n)
				}
			}
			app.console.Print(table.Render())

			if result.Total() == 0 {
				app.console.LogInfo("Nothing to carry from %s into %s", result.Source.Label(), result.Target.Label())
				return nil
			}
			app.console.LogSuccess("Carried %d rows from %s into %s", result.Total(), result.Source.Label(), result.Target.Label())
			return nil
		},
	}
	carry.Flags().StringSlice("kind", nil, "Collections to carry: "+strings.Join(kindNames(), ", ")+" (default: all)")
	addPeriodFlags(carry)

	cmd.AddCommand(archive, unarchive, status, carry)
	return cmd
}

func kindNames() []string {
	names := make([]string, len(usecase.AllCarryKinds))
	for i, k := range usecase.AllCarryKinds {
		names[i] = string(k)
	}
	return names
}

func statusText(archived bool) string {
	if archived {
		return console.BoldRed("archived")
	}
	return console.BrightGreen("open")
}
