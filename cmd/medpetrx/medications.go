package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/api"
	"github.com/shouniet/medpetrx/internal/cli"
)

func medicationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "medications",
		Aliases: []string{"meds"},
		Short:   "Manage a pet's medications",
	}

	cmd.AddCommand(listMedicationsCmd())
	cmd.AddCommand(addMedicationCmd())
	cmd.AddCommand(deactivateMedicationCmd())

	return cmd
}

func listMedicationsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list <pet-id>",
		Short: "List a pet's medications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			meds, err := client.ListMedications(cmd.Context(), petID, !all)
			if err != nil {
				return err
			}

			if len(meds) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No medications on file."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "ID\tDrug\tStrength\tDirections\tStart\tStatus\n")
			for _, m := range meds {
				status := cli.SuccessStyle.Render("active")
				if !m.IsActive {
					status = cli.SubtleStyle.Render("inactive")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					m.ID, m.DrugName, m.Strength, m.Directions, m.StartDate.String(), status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include inactive medications")

	return cmd
}

func addMedicationCmd() *cobra.Command {
	var req api.MedicationCreate
	var startDate, stopDate, refillDate string

	cmd := &cobra.Command{
		Use:   "add <pet-id>",
		Short: "Add a medication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}
			if req.DrugName == "" {
				return fmt.Errorf("--drug is required")
			}
			if req.StartDate, err = parseDateFlag(startDate, "start"); err != nil {
				return err
			}
			if req.StopDate, err = parseDateFlag(stopDate, "stop"); err != nil {
				return err
			}
			if req.RefillReminderDate, err = parseDateFlag(refillDate, "refill-reminder"); err != nil {
				return err
			}
			req.IsActive = true

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			result, err := client.CreateMedication(cmd.Context(), petID, req)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s (id %d)", result.Medication.DrugName, result.Medication.ID)))

			// The save succeeded; conflicts come back after the fact and
			// must not be buried in normal output.
			for _, warning := range result.AllergyWarnings {
				fmt.Println(cli.FormatAlert(fmt.Sprintf("ALLERGY CONFLICT: %s conflicts with recorded allergy to %s (%s)",
					warning.DrugName, warning.AllergySubstance, warning.Severity)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.DrugName, "drug", "", "drug name (required)")
	cmd.Flags().StringVar(&req.Strength, "strength", "", "strength, e.g. 75mg")
	cmd.Flags().StringVar(&req.Directions, "directions", "", "dosing directions")
	cmd.Flags().StringVar(&req.Indication, "indication", "", "what it treats")
	cmd.Flags().StringVar(&req.Prescriber, "prescriber", "", "prescribing vet")
	cmd.Flags().StringVar(&req.Pharmacy, "pharmacy", "", "dispensing pharmacy")
	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&stopDate, "stop", "", "stop date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&refillDate, "refill-reminder", "", "refill reminder date (YYYY-MM-DD)")

	return cmd
}

func deactivateMedicationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <pet-id> <medication-id>",
		Short: "Mark a medication inactive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}
			medID, err := parseID(args[1], "medication")
			if err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if err := client.DeactivateMedication(cmd.Context(), petID, medID); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Medication %d marked inactive", medID)))
			return nil
		},
	}
}
