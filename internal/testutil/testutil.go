// Package testutil provides shared test helpers for creating config files and dictionary fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Names of the fixture files SetupTestConfig points the config at.
const (
	NamesFile          = "dictionary.json"
	ParentheticalsFile = "paren_dictionary.json"
	SettingsFile       = "webhook.json"
)

// SetupTestConfig creates a config file using the file backend with every path inside tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := fmt.Sprintf(`dictionaries:
  backend: file
  names_file: %s
  parentheticals_file: %s
discord:
  settings_file: %s
`,
		filepath.Join(tmpDir, NamesFile),
		filepath.Join(tmpDir, ParentheticalsFile),
		filepath.Join(tmpDir, SettingsFile),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithWebhook creates a config file like SetupTestConfig that also
// configures webhookURL for delivery.
func SetupTestConfigWithWebhook(t *testing.T, tmpDir, webhookURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte(fmt.Sprintf("  webhook_url: %s\n", webhookURL))...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// WriteDictionary writes entries in the dictionary file layout.
func WriteDictionary(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	content, err := json.MarshalIndent(map[string]map[string]string{"map": entries}, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0644))
}

// ReadDictionary reads the entries of a dictionary file written in the JSON layout.
func ReadDictionary(t *testing.T, path string) map[string]string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var record struct {
		Map map[string]string `json:"map"`
	}
	require.NoError(t, json.Unmarshal(content, &record))
	return record.Map
}
