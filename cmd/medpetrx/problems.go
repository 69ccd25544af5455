package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/api"
	"github.com/shouniet/medpetrx/internal/cli"
)

func problemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problems",
		Short: "Manage a pet's problem list",
	}

	cmd.AddCommand(listProblemsCmd())
	cmd.AddCommand(addProblemCmd())

	return cmd
}

func listProblemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <pet-id>",
		Short: "List a pet's diagnosed conditions",
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

			problems, err := client.ListProblems(cmd.Context(), petID)
			if err != nil {
				return err
			}

			if len(problems) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Problem list is empty."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "ID\tCondition\tOnset\tStatus\n")
			for _, p := range problems {
				status := cli.SuccessStyle.Render("active")
				if !p.IsActive {
					status = cli.SubtleStyle.Render("resolved")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.ConditionName, p.OnsetDate.String(), status)
			}
			return nil
		},
	}
}

func addProblemCmd() *cobra.Command {
	var req api.ProblemCreate
	var onset string

	cmd := &cobra.Command{
		Use:   "add <pet-id>",
		Short: "Add a condition to the problem list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}
			if req.ConditionName == "" {
				return fmt.Errorf("--condition is required")
			}
			if req.OnsetDate, err = parseDateFlag(onset, "onset"); err != nil {
				return err
			}
			req.IsActive = true

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			problem, err := client.CreateProblem(cmd.Context(), petID, req)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s (id %d)", problem.ConditionName, problem.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ConditionName, "condition", "", "condition name (required)")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")
	cmd.Flags().StringVar(&onset, "onset", "", "onset date (YYYY-MM-DD)")

	return cmd
}
