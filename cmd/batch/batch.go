// Package batch handles batch processing of report files
package batch

import (
	"path/filepath"

	"fjacquet/flex-csv/cmd/root"
	"fjacquet/flex-csv/internal/batch"
	"fjacquet/flex-csv/internal/common"
	"fjacquet/flex-csv/internal/fileutils"
	"fjacquet/flex-csv/internal/flexparser"
	"fjacquet/flex-csv/internal/logging"
	"fjacquet/flex-csv/internal/models"
	"fjacquet/flex-csv/internal/validation"

	"github.com/spf13/cobra"
)

var dayFirst bool

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process report files from a directory",
	Long: `Batch process all Flex report XML files in the input directory and write
one consolidated trades CSV per account to the output directory. Statements
from different files that cover the same account are merged, and the output
filename carries the account and the overall reporting period.

Example:
  flex-csv batch -i input_dir/ -o output_dir/`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().BoolVar(&dayFirst, "day-first", false, "Read slashed dates as day/month instead of month/day")
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	if inputDir == "" || outputDir == "" {
		logger.Fatal("Input and output directories must be specified")
	}
	if err := validation.IsValidInputPath(inputDir); err != nil {
		logger.Fatalf("Invalid input directory: %v", err)
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		logger.Fatalf("Failed to create output directory: %v", err)
	}

	files, err := fileutils.ListFilesWithExtension(inputDir, ".xml")
	if err != nil {
		logger.Fatalf("Failed to list input files: %v", err)
	}
	if len(files) == 0 {
		logger.Warn("No XML files found in input directory")
		return
	}
	logger.Info("Found files for processing",
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	p := flexparser.New(flexparser.WithDayFirst(dayFirst))
	var stmts []*models.FlexStatement
	for _, file := range files {
		if root.SharedFlags.Validate {
			valid, err := flexparser.ValidateFormat(file)
			if err != nil {
				logger.WithError(err).Warn("Error validating file format",
					logging.Field{Key: logging.FieldFile, Value: filepath.Base(file)})
				continue
			}
			if !valid {
				logger.Debug("Skipping file without Flex response root",
					logging.Field{Key: logging.FieldFile, Value: filepath.Base(file)})
				continue
			}
		}

		resp, err := p.ParseFile(file)
		if err != nil {
			logger.WithError(err).Error("Failed to parse report file",
				logging.Field{Key: logging.FieldFile, Value: filepath.Base(file)})
			continue
		}
		stmts = append(stmts, resp.Statements()...)
	}

	aggregator := batch.NewAggregator(logger)
	count := 0
	for _, group := range aggregator.GroupStatements(stmts) {
		rows := aggregator.TradeRows(group)
		if len(rows) == 0 {
			logger.Warn("No trades found for account group",
				logging.Field{Key: logging.FieldAccount, Value: group.AccountID})
			continue
		}

		outputPath := filepath.Join(outputDir, aggregator.OutputFilename(group.AccountID, group.DateRange))
		if err := common.WriteRowsToCSV(rows, outputPath); err != nil {
			logger.WithError(err).Error("Failed to write consolidated CSV",
				logging.Field{Key: logging.FieldAccount, Value: group.AccountID},
				logging.Field{Key: logging.FieldOutput, Value: outputPath})
			continue
		}
		logger.Info("Created consolidated file",
			logging.Field{Key: logging.FieldAccount, Value: group.AccountID},
			logging.Field{Key: logging.FieldTrades, Value: len(rows)},
			logging.Field{Key: logging.FieldOutput, Value: outputPath})
		count++
	}

	root.Log.Infof("Batch processing completed. %d consolidated files created.", count)
}
