package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/cli"
	"github.com/shouniet/medpetrx/internal/model"
)

func interactionsCmd() *cobra.Command {
	var drugs []string
	var allPets bool

	cmd := &cobra.Command{
		Use:     "interactions [pet-id]",
		Aliases: []string{"ddi"},
		Short:   "Check drug-drug interactions",
		Long: `Check a pet's active medications (or an explicit drug list) for known
drug-drug interactions. With --all-pets, every pet's active medications are
checked in one pass.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			var report *model.InteractionReport
			switch {
			case allPets:
				report, err = client.CheckInteractionsAllPets(cmd.Context())
			case len(args) == 1:
				petID, petErr := parsePetID(args[0])
				if petErr != nil {
					return petErr
				}
				report, err = client.CheckInteractions(cmd.Context(), petID, drugs)
			default:
				return fmt.Errorf("provide a pet id or --all-pets")
			}
			if err != nil {
				return err
			}

			if len(report.DrugsChecked) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No active medications to check."))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Checked %d drugs", len(report.DrugsChecked))))

			if len(report.Interactions) == 0 {
				fmt.Println(cli.FormatSuccess("No known interactions found"))
			}
			for _, in := range report.Interactions {
				header := fmt.Sprintf("%s + %s", in.DrugA, in.DrugB)
				if in.Severity != "" {
					header += fmt.Sprintf(" [%s]", in.Severity)
				}
				fmt.Println(cli.FormatAlert(header))
				fmt.Println("  " + in.Description)
			}

			// The disclaimer is part of the report contract; always verbatim.
			if report.Disclaimer != "" {
				fmt.Println()
				fmt.Println(cli.WarningStyle.Render(report.Disclaimer))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&drugs, "drug", nil, "drug to check instead of active medications (repeatable)")
	cmd.Flags().BoolVar(&allPets, "all-pets", false, "check every pet's active medications")

	return cmd
}
