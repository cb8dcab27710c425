package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"budgena/internal/cli"
	"budgena/internal/model"
	"budgena/internal/summary"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, most recent first",
		Long: `Display recorded transactions, most recent first.

Examples:
  # Everything
  budgena list

  # Only the current month
  budgena list --period month

  # Last month, at most 10 rows
  budgena list --period last-month --limit 10`,
		RunE: runList,
	}

	cmd.Flags().StringP("period", "p", string(summary.PeriodAll), "period filter (month, last-month, all)")
	cmd.Flags().IntP("limit", "l", 0, "maximum number of rows (0 = no limit)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	ws, cleanup, err := loadWorkingSet(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := requireOnboarded(ws); err != nil {
		return err
	}

	periodRaw, _ := cmd.Flags().GetString("period")
	limit, _ := cmd.Flags().GetInt("limit")

	period, err := summary.ParsePeriod(periodRaw)
	if err != nil {
		return err
	}

	transactions := summary.FilterByPeriod(ws.Transactions(), period, time.Now())
	if limit > 0 && len(transactions) > limit {
		transactions = transactions[:limit]
	}

	if len(transactions) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions recorded yet. Use 'budgena add' to create one."))
		return nil
	}

	symbol := currencySymbol(ws)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.BoldStyle.Render("Date"),
		cli.BoldStyle.Render("Category"),
		cli.BoldStyle.Render("Amount"),
		cli.BoldStyle.Render("Notes"),
		cli.BoldStyle.Render("ID"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 10),
		strings.Repeat("-", 14),
		strings.Repeat("-", 10),
		strings.Repeat("-", 24),
		strings.Repeat("-", 36))

	for _, txn := range transactions {
		cat := model.CategoryByID(txn.Category)
		notes := txn.Notes
		if notes == "" {
			notes = cli.SubtleStyle.Render("(none)")
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
			txn.Date.Format("2006-01-02"),
			cat.Icon,
			cat.Name,
			cli.FormatAmount(symbol, txn.Amount, txn.Type),
			notes,
			cli.SubtleStyle.Render(txn.ID))
	}

	return nil
}
