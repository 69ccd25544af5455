package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shouniet/medpetrx/internal/common"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "medpetrx",
		Short: "🐾 Pet health records from the terminal",
		Long: `medpetrx: a CLI client for the MedPetRx pet health record service.

Manage your pets' medications, vaccines, allergies and problem lists,
upload vet documents for AI extraction, and review the extracted records
before anything is saved to the chart.`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/medpetrx/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(petsCmd())
	rootCmd.AddCommand(medicationsCmd())
	rootCmd.AddCommand(vaccinesCmd())
	rootCmd.AddCommand(allergiesCmd())
	rootCmd.AddCommand(problemsCmd())
	rootCmd.AddCommand(labsCmd())
	rootCmd.AddCommand(vitalsCmd())
	rootCmd.AddCommand(notesCmd())
	rootCmd.AddCommand(appointmentsCmd())
	rootCmd.AddCommand(insuranceCmd())
	rootCmd.AddCommand(providersCmd())
	rootCmd.AddCommand(documentsCmd())
	rootCmd.AddCommand(reviewCmd())
	rootCmd.AddCommand(interactionsCmd())
	rootCmd.AddCommand(emergencyCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(guideCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/medpetrx", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MEDPETRX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// No config file is fine; flags and env cover everything.
	}

	if err := common.SetupLogger(viper.GetString("logging.level"), viper.GetString("logging.format")); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("medpetrx %s\n", version)
		},
	}
}
