package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"budgena/internal/cli"
	"budgena/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record an income or expense transaction.

Examples:
  # A quick expense, dated today
  budgena add --amount 25.50 --category food --notes "Lunch"

  # Income on a specific date
  budgena add --amount 2500 --type income --category salary --date 2024-03-01`,
		RunE: runAdd,
	}

	cmd.Flags().Float64P("amount", "a", 0, "transaction amount (required, positive)")
	cmd.Flags().StringP("type", "t", string(model.TypeExpense), "transaction type (income, expense)")
	cmd.Flags().StringP("category", "c", string(model.CategoryOther), "category id")
	cmd.Flags().StringP("date", "d", "", "transaction date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringP("notes", "n", "", "free-form note")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	ws, cleanup, err := loadWorkingSet(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := requireOnboarded(ws); err != nil {
		return err
	}

	amount, _ := cmd.Flags().GetFloat64("amount")
	txTypeRaw, _ := cmd.Flags().GetString("type")
	categoryRaw, _ := cmd.Flags().GetString("category")
	dateRaw, _ := cmd.Flags().GetString("date")
	notes, _ := cmd.Flags().GetString("notes")

	txType := model.TransactionType(txTypeRaw)
	if !txType.Valid() {
		return fmt.Errorf("invalid type %q, expected income or expense", txTypeRaw)
	}

	category := model.CategoryID(categoryRaw)
	if !model.KnownCategory(category) {
		return fmt.Errorf("unknown category %q, see 'budgena settings categories'", categoryRaw)
	}

	date, err := parseDate(dateRaw)
	if err != nil {
		return err
	}

	txn := model.Transaction{
		Amount:   amount,
		Type:     txType,
		Category: category,
		Date:     date,
		Notes:    notes,
		Currency: ws.Settings().CurrencyCode,
	}

	stored, err := ws.Add(ctx, txn)
	if err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	cat := model.CategoryByID(stored.Category)
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s %s (%s)",
		cat.Icon,
		cat.Name,
		cli.FormatAmount(currencySymbol(ws), stored.Amount, stored.Type),
		stored.ID)))

	return nil
}
