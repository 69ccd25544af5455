package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/cli"
)

func emergencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emergency",
		Short: "Share a pet's emergency summary",
	}

	cmd.AddCommand(createEmergencyShareCmd())
	cmd.AddCommand(showEmergencySummaryCmd())

	return cmd
}

func createEmergencyShareCmd() *cobra.Command {
	var expiresHours int
	var accessType string

	cmd := &cobra.Command{
		Use:   "share <pet-id>",
		Short: "Create a time-limited emergency access link",
		Long: `Create a public, expiring link to a pet's emergency summary (active
medications, allergies, and problems) for a sitter or emergency clinic.
Links expire after 1 to 168 hours.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			share, err := client.CreateEmergencyShare(cmd.Context(), petID, accessType, expiresHours)
			if err != nil {
				return err
			}

			content := fmt.Sprintf("URL: %s\nToken: %s\nExpires: %s",
				share.URL, share.Token, share.ExpiresAt.Format("2006-01-02 15:04 MST"))
			fmt.Println(cli.RenderBox("Emergency access link", content))
			return nil
		},
	}

	cmd.Flags().IntVar(&expiresHours, "expires", 24, "hours until the link expires (1-168)")
	cmd.Flags().StringVar(&accessType, "access", "full", "access type (full or summary)")

	return cmd
}

func showEmergencySummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <token>",
		Short: "View the emergency summary behind a share token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			summary, err := client.GetEmergencySummary(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			title := fmt.Sprintf("%s %s (%s)", cli.PawIcon, summary.PetName, summary.Species)

			var b strings.Builder
			writeEmergencySection(&b, "Active medications", summary.ActiveMedications, "drug_name")
			writeEmergencySection(&b, "Allergies", summary.Allergies, "substance_name")
			writeEmergencySection(&b, "Active problems", summary.ActiveProblems, "condition_name")

			fmt.Println(cli.RenderBox(title, strings.TrimRight(b.String(), "\n")))

			if summary.Disclaimer != "" {
				fmt.Println(cli.WarningStyle.Render(summary.Disclaimer))
			}
			return nil
		},
	}
}

func writeEmergencySection(b *strings.Builder, heading string, items []map[string]any, nameKey string) {
	fmt.Fprintf(b, "%s\n", cli.TitleStyle.UnsetMargins().Render(heading))
	if len(items) == 0 {
		fmt.Fprintf(b, "  %s\n", cli.SubtleStyle.Render("none"))
		return
	}
	for _, item := range items {
		name, _ := item[nameKey].(string)
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(b, "  • %s\n", name)
	}
}
