package root_test

import (
	"testing"

	"fjacquet/flex-csv/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "flex-csv", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "Flex query report XML files to CSV")
	assert.Contains(t, root.Cmd.Long, "flex-csv is a CLI tool")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	if assert.NotNil(t, inputFlag) {
		assert.Equal(t, "i", inputFlag.Shorthand)
		assert.Equal(t, "", inputFlag.DefValue)
	}

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	if assert.NotNil(t, outputFlag) {
		assert.Equal(t, "o", outputFlag.Shorthand)
		assert.Equal(t, "", outputFlag.DefValue)
	}

	validateFlag := root.Cmd.PersistentFlags().Lookup("validate")
	if assert.NotNil(t, validateFlag) {
		assert.Equal(t, "v", validateFlag.Shorthand)
		assert.Equal(t, "false", validateFlag.DefValue)
	}
}

func TestRootCommand_Run(t *testing.T) {
	cmd := &cobra.Command{}

	assert.NotPanics(t, func() {
		root.Cmd.Run(cmd, []string{})
	})
}

func TestCommonFlags_Structure(t *testing.T) {
	flags := root.CommonFlags{
		Input:    "report.xml",
		Output:   "report.csv",
		Validate: true,
	}

	assert.Equal(t, "report.xml", flags.Input)
	assert.Equal(t, "report.csv", flags.Output)
	assert.True(t, flags.Validate)
}

func TestSharedFlags_Access(t *testing.T) {
	originalInput := root.SharedFlags.Input
	originalOutput := root.SharedFlags.Output
	originalValidate := root.SharedFlags.Validate
	defer func() {
		root.SharedFlags.Input = originalInput
		root.SharedFlags.Output = originalOutput
		root.SharedFlags.Validate = originalValidate
	}()

	root.SharedFlags.Input = "modified.xml"
	root.SharedFlags.Output = "modified.csv"
	root.SharedFlags.Validate = true

	assert.Equal(t, "modified.xml", root.SharedFlags.Input)
	assert.Equal(t, "modified.csv", root.SharedFlags.Output)
	assert.True(t, root.SharedFlags.Validate)
}
