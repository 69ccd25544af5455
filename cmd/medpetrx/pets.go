package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shouniet/medpetrx/internal/api"
	"github.com/shouniet/medpetrx/internal/cli"
)

func petsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pets",
		Short: "Manage pets on your account",
	}

	cmd.AddCommand(listPetsCmd())
	cmd.AddCommand(showPetCmd())
	cmd.AddCommand(addPetCmd())
	cmd.AddCommand(updatePetCmd())
	cmd.AddCommand(deletePetCmd())

	return cmd
}

func listPetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all pets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			pets, err := client.ListPets(cmd.Context())
			if err != nil {
				return err
			}

			if len(pets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No pets yet. Use 'medpetrx pets add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TitleStyle.UnsetMargins().Render("ID"), "Name", "Species", "Breed", "DOB")
			for _, p := range pets {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Species, p.Breed, p.DOB.String())
			}
			return nil
		},
	}
}

func showPetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <pet-id>",
		Short: "Show one pet's details",
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

			pet, err := client.GetPet(cmd.Context(), petID)
			if err != nil {
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Species: %s\n", pet.Species)
			if pet.Breed != "" {
				fmt.Fprintf(&b, "Breed: %s\n", pet.Breed)
			}
			if pet.Sex != "" {
				fmt.Fprintf(&b, "Sex: %s\n", pet.Sex)
			}
			fmt.Fprintf(&b, "DOB: %s\n", pet.DOB.String())
			if pet.MicrochipNum != "" {
				fmt.Fprintf(&b, "Microchip: %s\n", pet.MicrochipNum)
			}
			if len(pet.WeightLog) > 0 {
				latest := pet.WeightLog[len(pet.WeightLog)-1]
				fmt.Fprintf(&b, "Weight: %.1f kg (%s)\n", latest.WeightKg, latest.Date.String())
			}

			fmt.Println(cli.RenderBox(cli.PawIcon+" "+pet.Name, strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}
}

func addPetCmd() *cobra.Command {
	var req api.PetCreate
	var dob string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a pet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Name == "" || req.Species == "" {
				return fmt.Errorf("--name and --species are required")
			}

			var err error
			if req.DOB, err = parseDateFlag(dob, "dob"); err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			pet, err := client.CreatePet(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s (id %d)", pet.Name, pet.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "pet name (required)")
	cmd.Flags().StringVar(&req.Species, "species", "", "species, e.g. Dog or Cat (required)")
	cmd.Flags().StringVar(&req.Breed, "breed", "", "breed")
	cmd.Flags().StringVar(&req.Sex, "sex", "", "sex")
	cmd.Flags().StringVar(&req.MicrochipNum, "microchip", "", "microchip number")
	cmd.Flags().StringVar(&dob, "dob", "", "date of birth (YYYY-MM-DD)")

	return cmd
}

func updatePetCmd() *cobra.Command {
	var req api.PetCreate
	var dob string

	cmd := &cobra.Command{
		Use:   "update <pet-id>",
		Short: "Update a pet's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}
			if req.DOB, err = parseDateFlag(dob, "dob"); err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			pet, err := client.UpdatePet(cmd.Context(), petID, req)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated %s", pet.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "pet name")
	cmd.Flags().StringVar(&req.Species, "species", "", "species")
	cmd.Flags().StringVar(&req.Breed, "breed", "", "breed")
	cmd.Flags().StringVar(&req.Sex, "sex", "", "sex")
	cmd.Flags().StringVar(&req.MicrochipNum, "microchip", "", "microchip number")
	cmd.Flags().StringVar(&dob, "dob", "", "date of birth (YYYY-MM-DD)")

	return cmd
}

func deletePetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <pet-id>",
		Short: "Delete a pet and all its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parsePetID(args[0])
			if err != nil {
				return err
			}
			if !force {
				return fmt.Errorf("deleting a pet removes its whole chart; re-run with --force to confirm")
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if err := client.DeletePet(cmd.Context(), petID); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted pet %d", petID)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation guard")

	return cmd
}
