package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/api"
	"github.com/shouniet/medpetrx/internal/cli"
)

func vitalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vitals",
		Short: "Record and list home vitals",
	}

	cmd.AddCommand(listVitalsCmd())
	cmd.AddCommand(addVitalCmd())

	return cmd
}

func listVitalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <pet-id>",
		Short: "List a pet's recorded vitals",
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

			vitals, err := client.ListVitals(cmd.Context(), petID)
			if err != nil {
				return err
			}

			if len(vitals) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No vitals recorded."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "Date\tWeight\tTemp\tHeart\tResp\tNotes\n")
			for _, v := range vitals {
				weight := ""
				if v.WeightKg > 0 {
					weight = fmt.Sprintf("%.1f kg", v.WeightKg)
				}
				temp := ""
				if v.TemperatureF > 0 {
					temp = fmt.Sprintf("%.1f°F", v.TemperatureF)
				}
				heart := ""
				if v.HeartRateBPM > 0 {
					heart = fmt.Sprintf("%d bpm", v.HeartRateBPM)
				}
				resp := ""
				if v.RespiratoryRate > 0 {
					resp = fmt.Sprintf("%d/min", v.RespiratoryRate)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					v.RecordedDate.String(), weight, temp, heart, resp, v.Notes)
			}
			return nil
		},
	}
}

func addVitalCmd() *cobra.Command {
	var req api.VitalCreate
	var recordedDate string

	cmd := &cobra.Command{
		Use:   "add <pet-id>",
		Short: "Record a set of vitals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}
			if req.RecordedDate, err = parseDateFlag(recordedDate, "date"); err != nil {
				return err
			}
			if req.RecordedDate.IsZero() {
				return fmt.Errorf("--date is required")
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			vital, err := client.CreateVital(cmd.Context(), petID, req)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded vitals for %s", vital.RecordedDate.String())))
			return nil
		},
	}

	cmd.Flags().StringVar(&recordedDate, "date", "", "recording date (YYYY-MM-DD, required)")
	cmd.Flags().Float64Var(&req.WeightKg, "weight-kg", 0, "weight in kilograms")
	cmd.Flags().Float64Var(&req.TemperatureF, "temp-f", 0, "temperature in °F")
	cmd.Flags().IntVar(&req.HeartRateBPM, "heart-rate", 0, "heart rate in bpm")
	cmd.Flags().IntVar(&req.RespiratoryRate, "resp-rate", 0, "respiratory rate per minute")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")

	return cmd
}
