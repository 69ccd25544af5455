package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/api"
	"github.com/shouniet/medpetrx/internal/cli"
	"github.com/shouniet/medpetrx/internal/model"
)

func notesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage a pet's activity notes",
	}

	cmd.AddCommand(listNotesCmd())
	cmd.AddCommand(addNoteCmd())

	return cmd
}

func listNotesCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list <pet-id>",
		Short: "List a pet's activity notes",
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

			notes, err := client.ListNotes(cmd.Context(), petID)
			if err != nil {
				return err
			}

			shown := 0
			for _, n := range notes {
				if category != "" && string(n.Category) != category {
					continue
				}
				title := fmt.Sprintf("%s — %s [%s]", n.NoteDate.String(), n.Title, n.Category)
				body := n.Body
				if body == "" {
					body = cli.SubtleStyle.Render("(no details)")
				}
				fmt.Println(cli.RenderBox(title, body))
				shown++
			}

			if shown == 0 {
				fmt.Println(cli.SubtleStyle.Render("No notes found."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category (general, behavior, diet, symptom, exercise)")

	return cmd
}

func addNoteCmd() *cobra.Command {
	var req api.NoteCreate
	var category, noteDate string

	cmd := &cobra.Command{
		Use:   "add <pet-id>",
		Short: "Add an activity note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}
			if req.Title == "" {
				return fmt.Errorf("--title is required")
			}

			switch model.NoteCategory(category) {
			case model.NoteGeneral, model.NoteBehavior, model.NoteDiet, model.NoteSymptom, model.NoteExercise:
				req.Category = model.NoteCategory(category)
			default:
				return fmt.Errorf("invalid --category %q", category)
			}

			if req.NoteDate, err = parseDateFlag(noteDate, "date"); err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			note, err := client.CreateNote(cmd.Context(), petID, req)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added note %q (id %d)", note.Title, note.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "note title (required)")
	cmd.Flags().StringVar(&req.Body, "body", "", "note body")
	cmd.Flags().StringVar(&category, "category", "general", "category (general, behavior, diet, symptom, exercise)")
	cmd.Flags().StringVar(&noteDate, "date", "", "note date (YYYY-MM-DD)")

	return cmd
}
