package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"budgena/internal/cli"
	"budgena/internal/model"
	"budgena/internal/summary"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals and top spending categories",
		Long: `Show income, expenses, and balance for a period, with the top
spending categories ranked by share of total expenses.

Examples:
  # The current month
  budgena summary

  # All time, top five categories
  budgena summary --period all --top 5`,
		RunE: runSummary,
	}

	cmd.Flags().StringP("period", "p", string(summary.PeriodCurrentMonth), "period filter (month, last-month, all)")
	cmd.Flags().IntP("top", "t", 3, "number of top spending categories to show")

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
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
	topN, _ := cmd.Flags().GetInt("top")

	period, err := summary.ParsePeriod(periodRaw)
	if err != nil {
		return err
	}

	transactions := summary.FilterByPeriod(ws.Transactions(), period, time.Now())
	totals := summary.ComputeTotals(transactions)
	top := summary.TopCategories(transactions, topN)
	symbol := currencySymbol(ws)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s%s\n",
		cli.IncomeStyle.Render("Income:"),
		symbol,
		cli.FormatMoney(totals.Income))
	fmt.Fprintf(&b, "%s %s%s\n",
		cli.ExpenseStyle.Render("Expenses:"),
		symbol,
		cli.FormatMoney(totals.Expenses))

	balanceStyle := cli.SuccessStyle
	if totals.Balance < 0 {
		balanceStyle = cli.ErrorStyle
	}
	fmt.Fprintf(&b, "%s  %s\n",
		cli.BoldStyle.Render("Balance:"),
		balanceStyle.Render(symbol+cli.FormatMoney(totals.Balance)))

	if len(top) > 0 {
		fmt.Fprintf(&b, "\n%s\n", cli.BoldStyle.Render("Top spending"))
		for _, entry := range top {
			cat := model.CategoryByID(entry.Category)
			fmt.Fprintf(&b, "%s %-14s %s %5.1f%%  %s%s\n",
				cat.Icon,
				cat.Name,
				cli.PercentBar(entry.Percentage, 20),
				entry.Percentage,
				symbol,
				cli.FormatMoney(entry.Amount))
		}
	}

	fmt.Println(cli.RenderBox(periodTitle(period), strings.TrimRight(b.String(), "\n")))
	return nil
}

func periodTitle(period summary.Period) string {
	switch period {
	case summary.PeriodCurrentMonth:
		return "This month"
	case summary.PeriodPreviousMonth:
		return "Last month"
	default:
		return "All time"
	}
}
