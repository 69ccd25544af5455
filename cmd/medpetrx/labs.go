package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/api"
	"github.com/shouniet/medpetrx/internal/cli"
	"github.com/shouniet/medpetrx/internal/model"
)

func labsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labs",
		Short: "Manage a pet's lab results",
	}

	cmd.AddCommand(listLabsCmd())
	cmd.AddCommand(addLabCmd())

	return cmd
}

func listLabsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <pet-id>",
		Short: "List a pet's lab panels",
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

			labs, err := client.ListLabs(cmd.Context(), petID)
			if err != nil {
				return err
			}

			if len(labs) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No lab results on file."))
				return nil
			}

			for _, lab := range labs {
				label := model.LabTypeLabels[lab.LabType]
				if label == "" {
					label = string(lab.LabType)
				}
				title := fmt.Sprintf("%s — %s", label, lab.LabDate.String())

				keys := make([]string, 0, len(lab.Results))
				for k := range lab.Results {
					keys = append(keys, k)
				}
				sort.Strings(keys)

				var lines []string
				for _, k := range keys {
					lines = append(lines, fmt.Sprintf("%s: %s", cli.SubtleStyle.Render(k), lab.Results[k]))
				}
				if lab.Notes != "" {
					lines = append(lines, cli.SubtleStyle.Render("notes: ")+lab.Notes)
				}
				if len(lines) == 0 {
					lines = append(lines, cli.SubtleStyle.Render("(no values recorded)"))
				}

				fmt.Println(cli.RenderBox(title, strings.Join(lines, "\n")))
			}
			return nil
		},
	}
}

func addLabCmd() *cobra.Command {
	var labType, labDate string
	var results []string
	var req api.LabCreate

	cmd := &cobra.Command{
		Use:   "add <pet-id>",
		Short: "Add a lab panel",
		Long: `Add a lab panel result. Analyte values are passed as repeated
--result key=value flags, e.g. --result BUN=24 --result CREA=1.1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}

			req.LabType = model.LabType(labType)
			if _, ok := model.LabTypeLabels[req.LabType]; !ok {
				return fmt.Errorf("invalid --type %q", labType)
			}
			if req.LabDate, err = parseDateFlag(labDate, "date"); err != nil {
				return err
			}

			req.Results = make(map[string]string, len(results))
			for _, r := range results {
				key, value, found := strings.Cut(r, "=")
				if !found || key == "" {
					return fmt.Errorf("invalid --result %q: expected key=value", r)
				}
				req.Results[key] = value
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			lab, err := client.CreateLab(cmd.Context(), petID, req)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s panel (id %d)", lab.LabType, lab.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&labType, "type", "chemistry", "panel type (chemistry, electrolytes, cbc, nsaid_screen, urinalysis, thyroid, other)")
	cmd.Flags().StringVar(&labDate, "date", "", "collection date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&results, "result", nil, "analyte value as key=value (repeatable)")
	cmd.Flags().StringVar(&req.Veterinarian, "vet", "", "ordering veterinarian")
	cmd.Flags().StringVar(&req.Clinic, "clinic", "", "clinic")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")

	return cmd
}
