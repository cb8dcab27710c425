package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"budgena/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long: `Remove a transaction permanently. Deleting an id that does not
exist is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := ws.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %s", id)))
	return nil
}
