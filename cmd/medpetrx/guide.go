package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/cli"
	"github.com/shouniet/medpetrx/internal/model"
)

func guideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Browse the common veterinary medications guide",
		Long: `Browse reference information on common veterinary medications. The guide
is cached locally; run 'medpetrx guide sync' to refresh it from the backend,
after which list and search work offline.`,
	}

	cmd.AddCommand(syncGuideCmd())
	cmd.AddCommand(listGuideCmd())
	cmd.AddCommand(searchGuideCmd())

	return cmd
}

func syncGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh the local guide cache from the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			meds, err := client.ListCommonMedications(cmd.Context())
			if err != nil {
				return err
			}

			if err := store.ReplaceCommonMedications(cmd.Context(), meds); err != nil {
				return fmt.Errorf("failed to update guide cache: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Cached %d medications", len(meds))))
			return nil
		},
	}
}

func listGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all cached guide entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			meds, err := store.ListCommonMedications(cmd.Context())
			if err != nil {
				return err
			}

			if len(meds) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Guide cache is empty. Run 'medpetrx guide sync' first."))
				return nil
			}

			for _, m := range meds {
				printGuideEntry(m)
			}
			return nil
		},
	}
}

func searchGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the guide by drug name or class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			meds, err := store.SearchCommonMedications(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if len(meds) == 0 {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("No guide entries match %q.", args[0])))
				return nil
			}

			for _, m := range meds {
				printGuideEntry(m)
			}
			return nil
		},
	}
}

func printGuideEntry(m model.CommonMedication) {
	var b strings.Builder
	fmt.Fprintf(&b, "Class: %s\n", m.DrugClass)
	fmt.Fprintf(&b, "Species: %s\n", strings.Join(m.Species, ", "))
	fmt.Fprintf(&b, "Indications: %s\n", m.CommonIndications)
	fmt.Fprintf(&b, "Typical dose: %s (%s)\n", m.TypicalDose, m.Route)
	if len(m.CommonSideEffects) > 0 {
		fmt.Fprintf(&b, "Side effects: %s\n", strings.Join(m.CommonSideEffects, ", "))
	}
	if m.Warnings != "" {
		fmt.Fprintf(&b, "%s", cli.WarningStyle.Render(cli.WarningIcon+" "+m.Warnings))
	}

	fmt.Println(cli.RenderBox(m.DrugName, strings.TrimRight(b.String(), "\n")))
}
