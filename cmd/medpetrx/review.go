package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/api"
	"github.com/shouniet/medpetrx/internal/cli"
	"github.com/shouniet/medpetrx/internal/common"
	"github.com/shouniet/medpetrx/internal/model"
	"github.com/shouniet/medpetrx/internal/review"
	"github.com/shouniet/medpetrx/internal/service"
	"github.com/shouniet/medpetrx/internal/tui"
)

func reviewCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "review <pet-id> <document-id>",
		Short: "Review a document's extracted records before saving",
		Long: `Walk through every record the AI extracted from an uploaded document and
approve, edit, or reject each one. Nothing is saved until you confirm the
whole batch; a failed confirmation saves nothing and keeps your decisions.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}
			docID, err := parseID(args[1], "document")
			if err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			// The local log is best-effort; a broken cache must not block
			// a review session.
			store, storeErr := initStore(cmd.Context())
			if storeErr != nil {
				slog.Warn("Local database unavailable, confirmations will not be logged", "error", storeErr)
			} else {
				defer func() { _ = store.Close() }()
			}

			if plain {
				return runPlainReview(cmd.Context(), client, store, petID, docID)
			}
			return runReviewSession(cmd.Context(), client, store, petID, docID)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "line-based prompts instead of the full-screen session")

	cmd.AddCommand(reviewHistoryCmd())

	return cmd
}

func runReviewSession(ctx context.Context, client *api.Client, store service.ReferenceStore, petID, docID int64) error {
	petName := ""
	if pet, err := client.GetPet(ctx, petID); err == nil {
		petName = pet.Name
	}

	result, err := tui.Run(ctx, tui.Config{
		Backend:    client,
		Store:      store,
		PetName:    petName,
		PetID:      petID,
		DocumentID: docID,
	})
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Println(cli.SubtleStyle.Render("Review cancelled; nothing was saved."))
		return nil
	}

	printConfirmResult(result)
	return nil
}

func runPlainReview(ctx context.Context, client *api.Client, store service.ReferenceStore, petID, docID int64) error {
	doc, err := client.GetDocument(ctx, docID)
	if err != nil {
		return err
	}

	switch doc.ExtractionStatus {
	case model.ExtractionCompleted:
	case model.ExtractionFailed:
		return common.NewUserError(
			fmt.Sprintf("Extraction failed for %s; upload it again.", doc.Filename),
			common.ErrNoExtractionData)
	default:
		return common.NewUserError(
			fmt.Sprintf("Extraction for %s is still %s; try again shortly.", doc.Filename, doc.ExtractionStatus),
			common.ErrExtractionNotReady)
	}
	if doc.ExtractedData == nil {
		return fmt.Errorf("%w for %s", common.ErrNoExtractionData, doc.Filename)
	}

	state := review.New(doc.ExtractedData)
	if state.TotalItems() == 0 {
		fmt.Println(cli.SubtleStyle.Render("Nothing was extracted from this document."))
		return nil
	}

	prompter := cli.NewReviewPrompter(os.Stdin, os.Stdout)
	submit, err := prompter.Run(ctx, state)
	if err != nil {
		if errors.Is(err, cli.ErrInputCancelled) {
			fmt.Println(cli.SubtleStyle.Render("Review cancelled; nothing was saved."))
			return nil
		}
		return err
	}
	if !submit {
		fmt.Println(cli.SubtleStyle.Render("Not submitted; nothing was saved."))
		return nil
	}

	// One submission per explicit user action; a failure here is reported,
	// never silently retried.
	result, err := client.ConfirmExtraction(ctx, petID, docID, state.Payload())
	if err != nil {
		fmt.Println(cli.FormatError("Save failed: " + common.FormatUserError(err)))
		fmt.Println(cli.SubtleStyle.Render("Nothing was saved. Run the command again to retry."))
		return err
	}

	if store != nil {
		if logErr := store.RecordConfirmation(ctx, petID, docID, *result); logErr != nil {
			slog.Warn("Failed to log confirmation locally", "error", logErr)
		}
	}

	printConfirmResult(result)
	return nil
}

func printConfirmResult(result *model.ConfirmResult) {
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d records saved to the pet's chart", result.TotalSaved())))
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("medications %d · vaccines %d · allergies %d · problems %d",
		result.MedicationsSaved, result.VaccinesSaved, result.AllergiesSaved, result.ProblemsSaved)))

	for _, w := range result.AllergyWarnings {
		fmt.Println(cli.FormatAlert(fmt.Sprintf("ALLERGY CONFLICT: %s conflicts with recorded allergy to %s (%s)",
			w.DrugName, w.AllergySubstance, w.Severity)))
	}
}

func reviewHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent batch confirmations from this machine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.RecentConfirmations(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No confirmations logged yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "When\tPet\tDocument\tSaved\tWarnings\n")
			for _, r := range records {
				warnings := fmt.Sprintf("%d", r.WarningCount)
				if r.WarningCount > 0 {
					warnings = cli.ErrorStyle.Render(warnings)
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
					r.ConfirmedAt.Format("2006-01-02 15:04"), r.PetID, r.DocumentID, r.TotalSaved, warnings)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of confirmations to show")

	return cmd
}
