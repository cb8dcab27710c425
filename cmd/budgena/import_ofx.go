package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"budgena/internal/cli"
	"budgena/internal/common"
	"budgena/internal/model"
	"budgena/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from
your bank. Records carry their bank-assigned id, so re-importing the
same file skips everything already stored.

Examples:
  # Import a single file
  budgena import-ofx ~/Downloads/checking_jan_2024.qfx

  # Import everything in a directory
  budgena import-ofx ~/Downloads/*.qfx

  # Preview without saving
  budgena import-ofx --dry-run ~/Downloads/checking_jan_2024.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "preview import without saving")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	ws, cleanup, err := loadWorkingSet(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := requireOnboarded(ws); err != nil {
		return err
	}

	parser := ofx.NewParser()
	var parsed []model.Transaction

	for _, filePath := range allFiles {
		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file", "file", filePath, "error", err)
			continue
		}

		transactions, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse OFX file", "file", filePath, "error", err)
			continue
		}

		if len(transactions) == 0 {
			slog.Warn("No transactions found in file", "file", filepath.Base(filePath))
			continue
		}

		parsed = append(parsed, transactions...)
	}

	if len(parsed) == 0 {
		fmt.Println(cli.FormatWarning("No transactions found in any file"))
		return nil
	}

	if dryRun {
		for _, txn := range parsed {
			fmt.Printf("%s  %s  %s\n",
				txn.Date.Format("2006-01-02"),
				cli.FormatAmount(currencySymbol(ws), txn.Amount, txn.Type),
				txn.Notes)
		}
		fmt.Println(cli.FormatWarning(fmt.Sprintf("Dry run: %d transactions, nothing saved", len(parsed))))
		return nil
	}

	bar := progressbar.NewOptions(len(parsed),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing transactions..."),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	var added, duplicates, failed int
	for _, txn := range parsed {
		_, err := ws.Add(ctx, txn)
		switch {
		case err == nil:
			added++
		case errors.Is(err, common.ErrDuplicateEntry):
			duplicates++
		default:
			failed++
			slog.Error("Failed to store transaction", "id", txn.ID, "error", err)
		}
		_ = bar.Add(1)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions (%d already present, %d failed)",
		added, duplicates, failed)))
	return nil
}
