package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/api"
	"github.com/shouniet/medpetrx/internal/cli"
)

func vaccinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vaccines",
		Short: "Manage a pet's vaccine history",
	}

	cmd.AddCommand(listVaccinesCmd())
	cmd.AddCommand(addVaccineCmd())

	return cmd
}

func listVaccinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <pet-id>",
		Short: "List a pet's vaccines",
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

			vaccines, err := client.ListVaccines(cmd.Context(), petID)
			if err != nil {
				return err
			}

			if len(vaccines) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No vaccines on file."))
				return nil
			}

			now := time.Now()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "ID\tVaccine\tGiven\tNext Due\tClinic\n")
			for _, v := range vaccines {
				due := v.NextDueDate.String()
				if v.IsOverdue(now) {
					due = cli.ErrorStyle.Render(due + " (overdue)")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", v.ID, v.Name, v.DateGiven.String(), due, v.Clinic)
			}
			return nil
		},
	}
}

func addVaccineCmd() *cobra.Command {
	var req api.VaccineCreate
	var dateGiven, nextDue string

	cmd := &cobra.Command{
		Use:   "add <pet-id>",
		Short: "Add a vaccine record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}
			if req.Name == "" {
				return fmt.Errorf("--name is required")
			}
			if req.DateGiven, err = parseDateFlag(dateGiven, "given"); err != nil {
				return err
			}
			if req.NextDueDate, err = parseDateFlag(nextDue, "next-due"); err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			vaccine, err := client.CreateVaccine(cmd.Context(), petID, req)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s (id %d)", vaccine.Name, vaccine.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "vaccine name (required)")
	cmd.Flags().StringVar(&req.Clinic, "clinic", "", "administering clinic")
	cmd.Flags().StringVar(&req.LotNumber, "lot", "", "lot number")
	cmd.Flags().StringVar(&dateGiven, "given", "", "date given (YYYY-MM-DD)")
	cmd.Flags().StringVar(&nextDue, "next-due", "", "next due date (YYYY-MM-DD)")

	return cmd
}
