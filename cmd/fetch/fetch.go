// Package fetch handles the Flex Web Service download command
package fetch

import (
	"os"

	"fjacquet/flex-csv/cmd/root"
	"fjacquet/flex-csv/internal/client"
	"fjacquet/flex-csv/internal/config"
	"fjacquet/flex-csv/internal/fileutils"
	"fjacquet/flex-csv/internal/logging"

	"github.com/spf13/cobra"
)

var (
	token   string
	queryID string
)

// Cmd represents the fetch command
var Cmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a Flex report from the Flex Web Service",
	Long: `Download a Flex query report from the Flex Web Service and write the raw
XML to the output file. The access token and query ID can be given as flags
or through the configuration (FLEX_TOKEN and download.query).`,
	Run: fetchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&token, "token", "t", "", "Flex Web Service access token")
	Cmd.Flags().StringVarP(&queryID, "query", "q", "", "Flex query ID")
}

func fetchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Flex report fetch command called")

	cfg, err := config.InitializeConfig()
	if err != nil {
		root.Log.Fatalf("Error loading configuration: %v", err)
	}
	if token == "" {
		token = cfg.Download.Token
	}
	if queryID == "" {
		queryID = cfg.Download.Query
	}
	if token == "" || queryID == "" {
		root.Log.Fatal("An access token and a query ID are required, set --token and --query or configure them")
	}

	c := client.New(client.Options{
		BaseRequestURL: cfg.Download.RequestURL,
		BaseStmtURL:    cfg.Download.StmtURL,
		MaxTries:       cfg.Download.MaxTries,
	})
	data, err := c.Download(cmd.Context(), token, queryID)
	if err != nil {
		root.Log.Fatalf("Error downloading report: %v", err)
	}

	if root.SharedFlags.Output == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			root.Log.Fatalf("Error writing report: %v", err)
		}
		return
	}
	if err := fileutils.WriteFile(root.SharedFlags.Output, data, 0600); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.WithField(logging.FieldFile, root.SharedFlags.Output).WithField(logging.FieldBytes, len(data)).
		Info("Report downloaded successfully!")
}
