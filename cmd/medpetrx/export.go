package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/api"
	"github.com/shouniet/medpetrx/internal/cli"
	"github.com/shouniet/medpetrx/internal/config"
	"github.com/shouniet/medpetrx/internal/sheets"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export pet health summaries",
	}

	cmd.AddCommand(exportSummaryCmd())
	cmd.AddCommand(exportAllCmd())
	cmd.AddCommand(exportSheetsCmd())

	return cmd
}

func exportSummaryCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "summary <pet-id>",
		Short: "Export one pet's summary document",
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

			data, err := client.ExportSummary(cmd.Context(), petID)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = os.Stdout.Write(data)
				return err
			}

			if err := os.WriteFile(out, data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Wrote %s (%d bytes)", out, len(data))))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")

	return cmd
}

func exportAllCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Export a summary document for every pet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			pets, err := client.ListPets(cmd.Context())
			if err != nil {
				return err
			}
			if len(pets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No pets to export."))
				return nil
			}

			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}

			bar := progressbar.Default(int64(len(pets)), "exporting")
			for _, pet := range pets {
				data, exportErr := client.ExportSummary(cmd.Context(), pet.ID)
				if exportErr != nil {
					return fmt.Errorf("failed to export %s: %w", pet.Name, exportErr)
				}

				path := filepath.Join(dir, fmt.Sprintf("%s-summary.txt", pet.Name))
				if writeErr := os.WriteFile(path, data, 0600); writeErr != nil {
					return fmt.Errorf("failed to write %s: %w", path, writeErr)
				}
				_ = bar.Add(1)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d summaries to %s", len(pets), dir)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "exports", "output directory")

	return cmd
}

func exportSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "Push every pet's records to a Google Sheets spreadsheet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sheetsConfig, err := config.LoadSheetsConfig()
			if err != nil {
				return fmt.Errorf("sheets not configured: %w", err)
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			pets, err := client.ListPets(cmd.Context())
			if err != nil {
				return err
			}
			if len(pets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No pets to export."))
				return nil
			}

			bar := progressbar.Default(int64(len(pets)), "collecting records")
			exports := make([]sheets.PetExport, 0, len(pets))
			for _, pet := range pets {
				export, collectErr := collectPetExport(cmd.Context(), client, pet.ID)
				if collectErr != nil {
					return fmt.Errorf("failed to collect records for %s: %w", pet.Name, collectErr)
				}
				export.Pet = pet
				exports = append(exports, *export)
				_ = bar.Add(1)
			}

			writer, err := sheets.NewWriter(cmd.Context(), *sheetsConfig, slog.Default())
			if err != nil {
				return err
			}

			if err := writer.Write(cmd.Context(), exports); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d pets to Google Sheets", len(exports))))
			return nil
		},
	}
}

func collectPetExport(ctx context.Context, client *api.Client, petID int64) (*sheets.PetExport, error) {
	meds, err := client.ListMedications(ctx, petID, false)
	if err != nil {
		return nil, err
	}
	vaccines, err := client.ListVaccines(ctx, petID)
	if err != nil {
		return nil, err
	}
	allergies, err := client.ListAllergies(ctx, petID)
	if err != nil {
		return nil, err
	}
	problems, err := client.ListProblems(ctx, petID)
	if err != nil {
		return nil, err
	}

	return &sheets.PetExport{
		Medications: meds,
		Vaccines:    vaccines,
		Allergies:   allergies,
		Problems:    problems,
	}, nil
}
