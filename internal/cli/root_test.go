package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "manifold", cmd.Use)
	assert.Contains(t, cmd.Long, "sensor chamber")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"derive", "validate", "generate", "layout", "report", "catalog"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	designFlag := cmd.PersistentFlags().Lookup("design")
	require.NotNil(t, designFlag)
	assert.Equal(t, "", designFlag.DefValue)
}

func TestGenerateCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	genCmd, _, err := cmd.Find([]string{"generate"})
	require.NoError(t, err)

	outFlag := genCmd.Flags().Lookup("out")
	require.NotNil(t, outFlag)
	assert.Equal(t, "o", outFlag.Shorthand)
	assert.Equal(t, "out", outFlag.DefValue)

	require.NotNil(t, genCmd.Flags().Lookup("resolution"))
	require.NotNil(t, genCmd.Flags().Lookup("parts"))
	require.NotNil(t, genCmd.Flags().Lookup("split-base"))
	require.NotNil(t, genCmd.Flags().Lookup("catalog"))
}

func TestReportSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	for _, sub := range []string{"pdf", "bom", "flow"} {
		subCmd, _, err := cmd.Find([]string{"report", sub})
		require.NoError(t, err)
		assert.Equal(t, sub, subCmd.Name())
	}
}

func TestCatalogSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	for _, sub := range []string{"runs", "parts"} {
		subCmd, _, err := cmd.Find([]string{"catalog", sub})
		require.NoError(t, err)
		assert.Equal(t, sub, subCmd.Name())
	}
}

func TestInvalidFormatRejected(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"derive", "--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
