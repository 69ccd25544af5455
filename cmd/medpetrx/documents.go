package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/cli"
	"github.com/shouniet/medpetrx/internal/model"
)

func documentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs"},
		Short:   "Upload vet documents and track extraction",
	}

	cmd.AddCommand(uploadDocumentCmd())
	cmd.AddCommand(listDocumentsCmd())
	cmd.AddCommand(documentStatusCmd())

	return cmd
}

func uploadDocumentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <pet-id> <file>",
		Short: "Upload a document for AI extraction",
		Long: `Upload a PDF or image of a vet record. The backend extracts candidate
medications, vaccines, allergies and problems from it; nothing reaches the
pet's chart until you run 'medpetrx review' and confirm.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(args[1]) // #nosec G304
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[1], err)
			}
			defer func() { _ = f.Close() }()

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			doc, err := client.UploadDocument(cmd.Context(), petID, filepath.Base(args[1]), f)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Uploaded %s (document %d)", doc.Filename, doc.ID)))
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
				"Extraction is %s. Check progress with 'medpetrx documents status %d', then review with 'medpetrx review %d %d'.",
				doc.ExtractionStatus, doc.ID, petID, doc.ID)))
			return nil
		},
	}
}

func listDocumentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <pet-id>",
		Short: "List a pet's uploaded documents",
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

			docs, err := client.ListDocuments(cmd.Context(), petID)
			if err != nil {
				return err
			}

			if len(docs) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No documents uploaded."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "ID\tFilename\tUploaded\tExtraction\n")
			for _, d := range docs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					d.ID, d.Filename, d.UploadDate.Format("2006-01-02"), renderExtractionStatus(d.ExtractionStatus))
			}
			return nil
		},
	}
}

func documentStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <document-id>",
		Short: "Show a document's extraction status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docID, err := parseID(args[0], "document")
			if err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			doc, err := client.GetDocument(cmd.Context(), docID)
			if err != nil {
				return err
			}

			fmt.Printf("%s: %s\n", doc.Filename, renderExtractionStatus(doc.ExtractionStatus))

			if doc.ExtractionStatus == model.ExtractionCompleted && doc.ExtractedData != nil {
				total := 0
				for _, c := range model.Categories {
					n := len(doc.ExtractedData[string(c)])
					total += n
					if n > 0 {
						fmt.Printf("  %s: %d\n", c, n)
					}
				}
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
					"%d items awaiting review: medpetrx review %d %d", total, doc.PetID, doc.ID)))
			}
			return nil
		},
	}
}

func renderExtractionStatus(status model.ExtractionStatus) string {
	switch status {
	case model.ExtractionCompleted:
		return cli.SuccessStyle.Render(string(status))
	case model.ExtractionFailed:
		return cli.ErrorStyle.Render(string(status))
	default:
		return cli.WarningStyle.Render(string(status))
	}
}
