package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/cli"
	"github.com/shouniet/medpetrx/internal/model"
)

func insuranceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insurance",
		Short: "View and update a pet's insurance policy",
	}

	cmd.AddCommand(showInsuranceCmd())
	cmd.AddCommand(setInsuranceCmd())

	return cmd
}

func showInsuranceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <pet-id>",
		Short: "Show a pet's insurance details",
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

			ins, err := client.GetInsurance(cmd.Context(), petID)
			if err != nil {
				return err
			}

			if !ins.HasInsurance {
				fmt.Println(cli.SubtleStyle.Render("No insurance on file."))
				return nil
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Policy: %s\n", ins.PolicyNumber)
			if ins.GroupNumber != "" {
				fmt.Fprintf(&b, "Group: %s\n", ins.GroupNumber)
			}
			if ins.CoverageType != "" {
				fmt.Fprintf(&b, "Coverage: %s\n", ins.CoverageType)
			}
			if ins.Deductible > 0 {
				fmt.Fprintf(&b, "Deductible: $%.2f\n", ins.Deductible)
			}
			if ins.CoPayPercent > 0 {
				fmt.Fprintf(&b, "Co-pay: %.0f%%\n", ins.CoPayPercent)
			}
			if ins.AnnualLimit > 0 {
				fmt.Fprintf(&b, "Annual limit: $%.2f\n", ins.AnnualLimit)
			}
			if ins.Phone != "" {
				fmt.Fprintf(&b, "Phone: %s\n", ins.Phone)
			}
			fmt.Fprintf(&b, "Effective: %s → %s", ins.EffectiveDate.String(), ins.ExpirationDate.String())

			fmt.Println(cli.RenderBox(ins.ProviderName, b.String()))
			return nil
		},
	}
}

func setInsuranceCmd() *cobra.Command {
	var ins model.Insurance
	var effective, expiration string

	cmd := &cobra.Command{
		Use:   "set <pet-id>",
		Short: "Set or replace a pet's insurance details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}
			if ins.ProviderName == "" {
				return fmt.Errorf("--provider is required")
			}
			if ins.EffectiveDate, err = parseDateFlag(effective, "effective"); err != nil {
				return err
			}
			if ins.ExpirationDate, err = parseDateFlag(expiration, "expires"); err != nil {
				return err
			}
			ins.HasInsurance = true

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			updated, err := client.PutInsurance(cmd.Context(), petID, ins)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Insurance set to %s", updated.ProviderName)))
			return nil
		},
	}

	cmd.Flags().StringVar(&ins.ProviderName, "provider", "", "insurance provider (required)")
	cmd.Flags().StringVar(&ins.PolicyNumber, "policy", "", "policy number")
	cmd.Flags().StringVar(&ins.GroupNumber, "group", "", "group number")
	cmd.Flags().StringVar(&ins.Phone, "phone", "", "provider phone")
	cmd.Flags().StringVar(&ins.CoverageType, "coverage", "", "coverage type")
	cmd.Flags().Float64Var(&ins.Deductible, "deductible", 0, "annual deductible")
	cmd.Flags().Float64Var(&ins.CoPayPercent, "copay", 0, "co-pay percentage")
	cmd.Flags().Float64Var(&ins.AnnualLimit, "limit", 0, "annual limit")
	cmd.Flags().StringVar(&effective, "effective", "", "effective date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&expiration, "expires", "", "expiration date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ins.Notes, "notes", "", "notes")

	return cmd
}
