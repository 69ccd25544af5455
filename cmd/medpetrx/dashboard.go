package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/cli"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show reminders across all pets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			summary, err := client.GetDashboard(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Dashboard"))

			empty := true

			if len(summary.OverdueVaccines) > 0 {
				empty = false
				var lines []string
				for _, v := range summary.OverdueVaccines {
					lines = append(lines, fmt.Sprintf("%s: %s was due %s", v.PetName, v.Name, v.NextDueDate.String()))
				}
				fmt.Println(cli.RenderBox(cli.ErrorStyle.Render("Overdue vaccines"), strings.Join(lines, "\n")))
			}

			if len(summary.UpcomingVaccines) > 0 {
				empty = false
				var lines []string
				for _, v := range summary.UpcomingVaccines {
					lines = append(lines, fmt.Sprintf("%s: %s due %s", v.PetName, v.Name, v.NextDueDate.String()))
				}
				fmt.Println(cli.RenderBox("Upcoming vaccines", strings.Join(lines, "\n")))
			}

			if len(summary.RefillReminders) > 0 {
				empty = false
				var lines []string
				for _, r := range summary.RefillReminders {
					lines = append(lines, fmt.Sprintf("%s: refill %s by %s", r.PetName, r.DrugName, r.RefillReminderDate.String()))
				}
				fmt.Println(cli.RenderBox("Medication refills", strings.Join(lines, "\n")))
			}

			if len(summary.UpcomingAppointments) > 0 {
				empty = false
				var lines []string
				for _, a := range summary.UpcomingAppointments {
					lines = append(lines, fmt.Sprintf("%s: %s on %s", a.PetName, a.Title, a.AppointmentDate.Format("2006-01-02 15:04")))
				}
				fmt.Println(cli.RenderBox("Upcoming appointments", strings.Join(lines, "\n")))
			}

			if empty {
				fmt.Println(cli.FormatSuccess("Nothing due. All pets are up to date."))
			}
			return nil
		},
	}
}
