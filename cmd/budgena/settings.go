package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"budgena/internal/cli"
	"budgena/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage application settings",
		Long:  `Inspect and change the per-installation settings record.`,
	}

	cmd.AddCommand(onboardCmd())
	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setSettingsCmd())
	cmd.AddCommand(countriesCmd())
	cmd.AddCommand(categoriesCmd())

	return cmd
}

func onboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Run first-time setup",
		Long: `Create the settings record. The currency is derived from the
chosen country. Until this runs, every other command is locked.

Example:
  budgena settings onboard --language en --country US`,
		RunE: runOnboard,
	}

	cmd.Flags().String("language", "en", "interface language code")
	cmd.Flags().String("country", "", "two-letter country code (required)")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

func runOnboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	ws, cleanup, err := loadWorkingSet(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	language, _ := cmd.Flags().GetString("language")
	countryCode, _ := cmd.Flags().GetString("country")
	countryCode = strings.ToUpper(countryCode)

	country, ok := model.CountryByCode(countryCode)
	if !ok {
		return fmt.Errorf("unknown country %q, see 'budgena settings countries'", countryCode)
	}

	settings := model.Settings{
		Language:     language,
		CountryCode:  country.Code,
		CurrencyCode: country.Currency,
		IsOnboarded:  true,
	}
	if existing := ws.Settings(); existing != nil {
		// Re-running onboarding keeps the security flags.
		settings.PINEnabled = existing.PINEnabled
		settings.BiometricEnabled = existing.BiometricEnabled
	}

	if err := ws.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Welcome! Tracking in %s (%s%s)",
		country.Name, country.CurrencySymbol, country.Currency)))
	return nil
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := loadWorkingSet(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			settings := ws.Settings()
			if settings == nil {
				fmt.Println(cli.SubtleStyle.Render("Not onboarded yet. Run 'budgena settings onboard' first."))
				return nil
			}

			country, _ := model.CountryByCode(settings.CountryCode)

			var b strings.Builder
			fmt.Fprintf(&b, "Language:  %s\n", settings.Language)
			fmt.Fprintf(&b, "Country:   %s (%s)\n", country.Name, settings.CountryCode)
			fmt.Fprintf(&b, "Currency:  %s %s\n", settings.CurrencyCode, country.CurrencySymbol)
			fmt.Fprintf(&b, "PIN:       %s\n", onOff(settings.PINEnabled))
			fmt.Fprintf(&b, "Biometric: %s", onOff(settings.BiometricEnabled))

			fmt.Println(cli.RenderBox("Settings", b.String()))
			return nil
		},
	}
}

func setSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings fields",
		Long: `Change individual settings fields. Only the flags you pass are
modified. Changing the country also switches the currency.

Examples:
  budgena settings set --pin=true
  budgena settings set --country FR`,
		RunE: runSetSettings,
	}

	cmd.Flags().String("language", "", "interface language code")
	cmd.Flags().String("country", "", "two-letter country code")
	cmd.Flags().Bool("pin", false, "require a PIN to open the app")
	cmd.Flags().Bool("biometric", false, "allow biometric unlock")

	return cmd
}

func runSetSettings(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	ws, cleanup, err := loadWorkingSet(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := requireOnboarded(ws); err != nil {
		return err
	}

	settings := *ws.Settings()

	if cmd.Flags().Changed("language") {
		settings.Language, _ = cmd.Flags().GetString("language")
	}
	if cmd.Flags().Changed("country") {
		raw, _ := cmd.Flags().GetString("country")
		country, ok := model.CountryByCode(strings.ToUpper(raw))
		if !ok {
			return fmt.Errorf("unknown country %q, see 'budgena settings countries'", raw)
		}
		settings.CountryCode = country.Code
		settings.CurrencyCode = country.Currency
	}
	if cmd.Flags().Changed("pin") {
		settings.PINEnabled, _ = cmd.Flags().GetBool("pin")
	}
	if cmd.Flags().Changed("biometric") {
		settings.BiometricEnabled, _ = cmd.Flags().GetBool("biometric")
	}

	if err := ws.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println(cli.FormatSuccess("Settings updated"))
	return nil
}

func countriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List supported countries and currencies",
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("Code"),
				cli.BoldStyle.Render("Country"),
				cli.BoldStyle.Render("Currency"))
			for _, country := range model.Countries {
				fmt.Fprintf(w, "%s\t%s\t%s %s\n",
					country.Code, country.Name, country.Currency, country.CurrencySymbol)
			}
			return nil
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"))
			for _, cat := range model.Categories {
				fmt.Fprintf(w, "%s\t%s %s\n", cat.ID, cat.Icon, cat.Name)
			}
			return nil
		},
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
