package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/api"
	"github.com/shouniet/medpetrx/internal/cli"
	"github.com/shouniet/medpetrx/internal/model"
)

func allergiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allergies",
		Short: "Manage a pet's allergies and adverse reactions",
	}

	cmd.AddCommand(listAllergiesCmd())
	cmd.AddCommand(addAllergyCmd())

	return cmd
}

func listAllergiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <pet-id>",
		Short: "List a pet's allergies",
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

			allergies, err := client.ListAllergies(cmd.Context(), petID)
			if err != nil {
				return err
			}

			if len(allergies) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No known allergies."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "ID\tSubstance\tType\tSeverity\tVerified\n")
			for _, a := range allergies {
				verified := ""
				if a.VetVerified {
					verified = cli.SuccessStyle.Render("vet verified")
				}
				severity := a.Severity
				if severity == "severe" {
					severity = cli.ErrorStyle.Render(severity)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", a.ID, a.SubstanceName, a.AllergyType, severity, verified)
			}
			return nil
		},
	}
}

func addAllergyCmd() *cobra.Command {
	var req api.AllergyCreate
	var allergyType, dateNoticed string

	cmd := &cobra.Command{
		Use:   "add <pet-id>",
		Short: "Add an allergy record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}
			if req.SubstanceName == "" {
				return fmt.Errorf("--substance is required")
			}

			switch model.AllergyType(allergyType) {
			case model.AllergyTypeDrug, model.AllergyTypeFood, model.AllergyTypeEnvironmental, model.AllergyTypeVaccine:
				req.AllergyType = model.AllergyType(allergyType)
			default:
				return fmt.Errorf("invalid --type %q: expected Drug, Food, Environmental, or Vaccine", allergyType)
			}

			if req.DateNoticed, err = parseDateFlag(dateNoticed, "noticed"); err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			allergy, err := client.CreateAllergy(cmd.Context(), petID, req)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added allergy to %s (id %d)", allergy.SubstanceName, allergy.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.SubstanceName, "substance", "", "substance name (required)")
	cmd.Flags().StringVar(&allergyType, "type", "Drug", "allergy type (Drug, Food, Environmental, Vaccine)")
	cmd.Flags().StringVar(&req.ReactionDesc, "reaction", "", "reaction description")
	cmd.Flags().StringVar(&req.Severity, "severity", "", "severity (mild, moderate, severe)")
	cmd.Flags().StringVar(&dateNoticed, "noticed", "", "date first noticed (YYYY-MM-DD)")

	return cmd
}
