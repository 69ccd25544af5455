package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/api"
	"github.com/shouniet/medpetrx/internal/cli"
	"github.com/shouniet/medpetrx/internal/model"
)

func appointmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"appts"},
		Short:   "Manage a pet's vet appointments",
	}

	cmd.AddCommand(listAppointmentsCmd())
	cmd.AddCommand(addAppointmentCmd())
	cmd.AddCommand(setAppointmentStatusCmd())

	return cmd
}

func listAppointmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <pet-id>",
		Short: "List a pet's appointments",
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

			appts, err := client.ListAppointments(cmd.Context(), petID)
			if err != nil {
				return err
			}

			if len(appts) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No appointments."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "ID\tWhen\tTitle\tClinic\tStatus\n")
			for _, a := range appts {
				status := string(a.Status)
				switch a.Status {
				case model.AppointmentCompleted:
					status = cli.SuccessStyle.Render(status)
				case model.AppointmentCancelled:
					status = cli.SubtleStyle.Render(status)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					a.ID, a.AppointmentDate.Format("2006-01-02 15:04"), a.Title, a.Clinic, status)
			}
			return nil
		},
	}
}

func addAppointmentCmd() *cobra.Command {
	var req api.AppointmentCreate
	var when string

	cmd := &cobra.Command{
		Use:   "add <pet-id>",
		Short: "Schedule an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}
			if req.Title == "" {
				return fmt.Errorf("--title is required")
			}

			req.AppointmentDate, err = time.Parse("2006-01-02 15:04", when)
			if err != nil {
				return fmt.Errorf("invalid --when %q: expected \"YYYY-MM-DD HH:MM\"", when)
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			appt, err := client.CreateAppointment(cmd.Context(), petID, req)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Scheduled %q for %s (id %d)",
				appt.Title, appt.AppointmentDate.Format("2006-01-02 15:04"), appt.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "appointment title (required)")
	cmd.Flags().StringVar(&when, "when", "", "date and time, \"YYYY-MM-DD HH:MM\" (required)")
	cmd.Flags().StringVar(&req.Clinic, "clinic", "", "clinic")
	cmd.Flags().StringVar(&req.Veterinarian, "vet", "", "veterinarian")
	cmd.Flags().StringVar(&req.Reason, "reason", "", "reason for the visit")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")
	cmd.Flags().Int64Var(&req.VetProviderID, "provider", 0, "vet provider id")

	return cmd
}

func setAppointmentStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <pet-id> <appointment-id> <scheduled|completed|cancelled>",
		Short: "Update an appointment's status",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}
			apptID, err := parseID(args[1], "appointment")
			if err != nil {
				return err
			}

			status := model.AppointmentStatus(args[2])
			switch status {
			case model.AppointmentScheduled, model.AppointmentCompleted, model.AppointmentCancelled:
			default:
				return fmt.Errorf("invalid status %q", args[2])
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			appt, err := client.SetAppointmentStatus(cmd.Context(), petID, apptID, status)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%q is now %s", appt.Title, appt.Status)))
			return nil
		},
	}
}
