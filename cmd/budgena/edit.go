package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"budgena/internal/cli"
	"budgena/internal/common"
	"budgena/internal/model"
)

func editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing transaction",
		Long: `Change fields of an existing transaction. Only the flags you pass
are modified; everything else is kept.

Examples:
  budgena edit 4f1c... --amount 30
  budgena edit 4f1c... --category transport --notes "Monthly pass"`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().Float64P("amount", "a", 0, "new amount")
	cmd.Flags().StringP("type", "t", "", "new type (income, expense)")
	cmd.Flags().StringP("category", "c", "", "new category id")
	cmd.Flags().StringP("date", "d", "", "new date as YYYY-MM-DD")
	cmd.Flags().StringP("notes", "n", "", "new note")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	ws, cleanup, err := loadWorkingSet(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := requireOnboarded(ws); err != nil {
		return err
	}

	var txn *model.Transaction
	for i := range ws.Transactions() {
		if ws.Transactions()[i].ID == id {
			copied := ws.Transactions()[i]
			txn = &copied
			break
		}
	}
	if txn == nil {
		return common.NewUserError(fmt.Sprintf("no transaction with id %s", id), common.ErrNotFound)
	}

	if cmd.Flags().Changed("amount") {
		txn.Amount, _ = cmd.Flags().GetFloat64("amount")
	}
	if cmd.Flags().Changed("type") {
		raw, _ := cmd.Flags().GetString("type")
		txType := model.TransactionType(raw)
		if !txType.Valid() {
			return fmt.Errorf("invalid type %q, expected income or expense", raw)
		}
		txn.Type = txType
	}
	if cmd.Flags().Changed("category") {
		raw, _ := cmd.Flags().GetString("category")
		category := model.CategoryID(raw)
		if !model.KnownCategory(category) {
			return fmt.Errorf("unknown category %q, see 'budgena settings categories'", raw)
		}
		txn.Category = category
	}
	if cmd.Flags().Changed("date") {
		raw, _ := cmd.Flags().GetString("date")
		date, err := parseDate(raw)
		if err != nil {
			return err
		}
		txn.Date = date
	}
	if cmd.Flags().Changed("notes") {
		txn.Notes, _ = cmd.Flags().GetString("notes")
	}

	updated, err := ws.Update(ctx, *txn)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated %s %s",
		updated.ID,
		cli.FormatAmount(currencySymbol(ws), updated.Amount, updated.Type))))

	return nil
}
