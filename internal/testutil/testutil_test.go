package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "backend: file")
	assert.Contains(t, string(content), filepath.Join(tmpDir, NamesFile))
	assert.Contains(t, string(content), filepath.Join(tmpDir, ParentheticalsFile))
	assert.NotContains(t, string(content), "webhook_url")
}

func TestSetupTestConfigWithWebhook(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfigWithWebhook(t, tmpDir, "https://discord.example/hook")

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "discord:\n  settings_file: ")
	assert.Contains(t, string(content), "  webhook_url: https://discord.example/hook\n")
}

func TestWriteDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), NamesFile)
	entries := map[string]string{"Govisetha": "ගොවිසෙත", "Jayamalla": "<<<Jayamalla>>>"}

	WriteDictionary(t, path, entries)

	assert.Equal(t, entries, ReadDictionary(t, path))
}
