package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lottery-translator/internal/testutil"
)

const testResults = "Jayamalla 2025-09-10\nGovisetha: Rs.500000 (agro) lakhs\n"

func writeResults(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "results.txt")
	require.NoError(t, os.WriteFile(path, []byte(testResults), 0644))
	return path
}

func TestNewTranslateCommand(t *testing.T) {
	cmd := newTranslateCommand()

	assert.Equal(t, "translate", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("input"))
	assert.NotNil(t, cmd.Flags().Lookup("dry-run"))
}

func TestTranslateCommand_DryRun(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))
	testutil.WriteDictionary(t, filepath.Join(tmpDir, testutil.NamesFile), map[string]string{
		"Govisetha": "ගොවිසෙත",
	})

	cmd := newTranslateCommand()
	cmd.SetArgs([]string{"--input", writeResults(t, tmpDir), "--dry-run"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, map[string]string{
		"Govisetha": "ගොවිසෙත",
		"Jayamalla": "<<<Jayamalla>>>",
	}, testutil.ReadDictionary(t, filepath.Join(tmpDir, testutil.NamesFile)))
	assert.Equal(t, map[string]string{
		"agro": "<<<agro>>>",
	}, testutil.ReadDictionary(t, filepath.Join(tmpDir, testutil.ParentheticalsFile)))
}

func TestTranslateCommand_SendsToWebhook(t *testing.T) {
	var posted []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Content string `json:"content"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		posted = append(posted, payload.Content)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfigWithWebhook(t, tmpDir, server.URL))

	cmd := newTranslateCommand()
	cmd.SetArgs([]string{"--input", writeResults(t, tmpDir)})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, []string{
		"\n📅 **Jayamalla 2025-09-10**\n\n**Govisetha**: Rs.500000 (**agro**) ලක්ෂ\n\n",
	}, posted)
}

func TestTranslateCommand_Errors(t *testing.T) {
	t.Run("invalid config", func(t *testing.T) {
		setConfigFile(t, setupBrokenConfigFile(t))

		cmd := newTranslateCommand()
		cmd.SetArgs([]string{"--input", writeResults(t, t.TempDir()), "--dry-run"})
		err := cmd.Execute()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "configuration")
	})

	t.Run("missing input file", func(t *testing.T) {
		tmpDir := t.TempDir()
		setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

		cmd := newTranslateCommand()
		cmd.SetArgs([]string{"--input", filepath.Join(tmpDir, "missing.txt"), "--dry-run"})
		err := cmd.Execute()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing.txt")
	})
}
