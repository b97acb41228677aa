// Package root contains the root command for the application
package root

import (
	"os"

	"fjacquet/flex-csv/internal/client"
	"fjacquet/flex-csv/internal/common"
	"fjacquet/flex-csv/internal/config"
	"fjacquet/flex-csv/internal/flexparser"
	"fjacquet/flex-csv/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "flex-csv",
		Short: "A CLI tool to convert Flex query report XML files to CSV.",
		Long: `flex-csv is a CLI tool that parses Flex query response XML files into
strongly typed records and converts the report sections to CSV format.
It can also download reports directly from the Flex Web Service.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to flex-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for all packages doing their own logging
			flexparser.SetLogger(Log)
			client.SetLogger(Log)
			common.SetLogger(Log)

			// Ensure CSV delimiter is updated after env variables are loaded
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField(logging.FieldDelimiter, delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before parsing")
}
