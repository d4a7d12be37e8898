// Package cmd implements the command-line interface for pinpoint.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonesrussell/north-cloud/pinpoint/cmd/analyze"
	"github.com/jonesrussell/north-cloud/pinpoint/cmd/clean"
	"github.com/jonesrussell/north-cloud/pinpoint/cmd/httpd"
	"github.com/jonesrussell/north-cloud/pinpoint/cmd/score"
	"github.com/jonesrussell/north-cloud/pinpoint/cmd/synthesize"
	"github.com/jonesrussell/north-cloud/pinpoint/cmd/validate"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands
	Debug bool

	// rootCmd represents the root command for the pinpoint CLI.
	rootCmd = &cobra.Command{
		Use:   "pinpoint",
		Short: "Selector synthesis and reliability validation",
		Long: `pinpoint resolves a target-element hint against an HTML page, synthesizes
fallback CSS selectors for the element and scores how reliably each one will
find it again.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	// Parse flags early so --config and --debug apply to config loading
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pinpoint version %s\n", viper.GetString("app.version"))
		},
	})

	rootCmd.AddCommand(analyze.Command())
	rootCmd.AddCommand(validate.Command())
	rootCmd.AddCommand(score.Command())
	rootCmd.AddCommand(synthesize.Command())
	rootCmd.AddCommand(clean.Command())
	rootCmd.AddCommand(httpd.Command())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// A missing .env file is normal outside local development
	_ = godotenv.Load()

	config.SetDefaults(viper.GetViper())
	if err := config.BindEnv(viper.GetViper()); err != nil {
		return err
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}
	return nil
}
