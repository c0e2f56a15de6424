package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestNewMigrateCommand(t *testing.T) {
	cmd := newMigrateCommand()

	assert.Equal(t, "migrate", cmd.Use)
	assert.Equal(t, "Migration commands", cmd.Short)
	assert.True(t, cmd.HasSubCommands())

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"schema", "import-db", "export-db"}, names)
}

func TestNewMigrateSyncCommands(t *testing.T) {
	for _, cmd := range []*cobra.Command{newMigrateImportDBCommand(), newMigrateExportDBCommand()} {
		t.Run(cmd.Use, func(t *testing.T) {
			dryRun := cmd.Flags().Lookup("dry-run")
			if assert.NotNil(t, dryRun) {
				assert.Equal(t, "false", dryRun.DefValue)
			}
			assert.NotNil(t, cmd.RunE)
		})
	}
}

func TestMigrateCommand_InvalidConfig(t *testing.T) {
	setConfigFile(t, setupBrokenConfigFile(t))

	for _, args := range [][]string{{"schema"}, {"import-db"}, {"export-db", "--dry-run"}} {
		t.Run(args[0], func(t *testing.T) {
			cmd := newMigrateCommand()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(args)
			err := cmd.Execute()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "configuration")
		})
	}
}
