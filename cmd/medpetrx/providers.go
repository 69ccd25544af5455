package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/cli"
	"github.com/shouniet/medpetrx/internal/model"
)

func providersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "Manage your veterinary providers",
	}

	cmd.AddCommand(listProvidersCmd())
	cmd.AddCommand(addProviderCmd())

	return cmd
}

func listProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your veterinary providers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			providers, err := client.ListProviders(cmd.Context())
			if err != nil {
				return err
			}

			if len(providers) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No providers yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "ID\tClinic\tVeterinarian\tPhone\tSpecialty\tPrimary\n")
			for _, p := range providers {
				primary := ""
				if p.IsPrimary {
					primary = cli.SuccessStyle.Render("primary")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.ClinicName, p.VeterinarianName, p.Phone, p.Specialty, primary)
			}
			return nil
		},
	}
}

func addProviderCmd() *cobra.Command {
	var provider model.VetProvider

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a veterinary provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if provider.ClinicName == "" {
				return fmt.Errorf("--clinic is required")
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			created, err := client.CreateProvider(cmd.Context(), provider)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s (id %d)", created.ClinicName, created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&provider.ClinicName, "clinic", "", "clinic name (required)")
	cmd.Flags().StringVar(&provider.VeterinarianName, "vet", "", "veterinarian name")
	cmd.Flags().StringVar(&provider.Phone, "phone", "", "phone")
	cmd.Flags().StringVar(&provider.Email, "email", "", "email")
	cmd.Flags().StringVar(&provider.Address, "address", "", "address")
	cmd.Flags().StringVar(&provider.Website, "website", "", "website")
	cmd.Flags().StringVar(&provider.Specialty, "specialty", "", "specialty")
	cmd.Flags().BoolVar(&provider.IsPrimary, "primary", false, "mark as primary provider")

	return cmd
}
