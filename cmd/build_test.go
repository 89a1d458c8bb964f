package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetBuildCmd_Exists verifies getBuildCmd returns
// a valid command.
func TestGetBuildCmd_Exists(t *testing.T) {
	cmd := getBuildCmd()
	require.NotNil(t, cmd, "Build command should exist")
	assert.Equal(t, "build", cmd.Use,
		"Command name should be build")
}

// TestGetBuildCmd_Descriptions verifies short and long
// descriptions.
func TestGetBuildCmd_Descriptions(t *testing.T) {
	cmd := getBuildCmd()

	assert.NotEmpty(t, cmd.Short,
		"Short description should not be empty")
	assert.Contains(t, cmd.Short, "taxonomy cache",
		"Short description should mention taxonomy cache")

	assert.NotEmpty(t, cmd.Long,
		"Long description should not be empty")
	assert.Contains(t, cmd.Long, "interrupted",
		"Long description should mention interruption recovery")
	assert.Contains(t, cmd.Long, "no-op",
		"Long description should mention idempotent reruns")
}

// TestGetBuildCmd_HasRunE verifies run function is set.
func TestGetBuildCmd_HasRunE(t *testing.T) {
	cmd := getBuildCmd()

	assert.NotNil(t, cmd.RunE,
		"RunE should be set")
}

// TestGetBuildCmd_Flags verifies all flags exist with correct
// short forms and defaults.
func TestGetBuildCmd_Flags(t *testing.T) {
	cmd := getBuildCmd()

	tests := []struct {
		name, short, defValue string
	}{
		{"seq-file", "s", ""},
		{"db-file", "d", ""},
		{"recreate", "r", "false"},
		{"interval", "i", "0"},
	}

	for _, tt := range tests {
		flag := cmd.Flags().Lookup(tt.name)
		require.NotNil(t, flag, "--%s flag should exist", tt.name)
		assert.Equal(t, tt.short, flag.Shorthand,
			"--%s short form", tt.name)
		assert.Equal(t, tt.defValue, flag.DefValue,
			"--%s default", tt.name)
	}
}

// TestGetBuildCmd_HelpText verifies help text content.
func TestGetBuildCmd_HelpText(t *testing.T) {
	cmd := getBuildCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "--recreate",
		"Help should mention --recreate flag")
	assert.Contains(t, helpText, "protax build",
		"Help should include examples")
}

// TestGetBuildCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetBuildCmd_IndependentInstances(t *testing.T) {
	cmd1 := getBuildCmd()
	cmd2 := getBuildCmd()

	assert.NotSame(t, cmd1, cmd2,
		"Each call should return new instance")

	cmd1.Short = "test1"
	cmd2.Short = "test2"

	assert.Equal(t, "test1", cmd1.Short)
	assert.Equal(t, "test2", cmd2.Short)
}
