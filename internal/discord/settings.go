package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Settings is the side file remembering the webhook between runs.
type Settings struct {
	DiscordWebhook string `json:"discord_webhook"`
}

// LoadSettings reads the settings file. A missing or unreadable file yields empty settings.
func LoadSettings(path string) Settings {
	var settings Settings
	contents, err := os.ReadFile(path)
	if err != nil {
		slog.Default().Debug("webhook settings not read", "path", path, "error", err)
		return settings
	}
	if err := json.Unmarshal(contents, &settings); err != nil {
		slog.Default().Warn("webhook settings are corrupt, ignoring", "path", path, "error", err)
		return Settings{}
	}
	return settings
}

// SaveSettings writes the settings file as indented JSON.
func SaveSettings(path string, settings Settings) error {
	contents, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}
	if err := os.WriteFile(path, contents, 0600); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}

// ResolveWebhookURL picks the configured URL, then the settings file, and
// finally asks prompt, remembering its answer in the settings file.
// The save is best-effort.
func ResolveWebhookURL(configured, settingsPath string, prompt func() (string, error)) (string, error) {
	if url := strings.TrimSpace(configured); url != "" {
		return url, nil
	}

	settings := LoadSettings(settingsPath)
	if url := strings.TrimSpace(settings.DiscordWebhook); url != "" {
		return url, nil
	}
	if prompt == nil {
		return "", nil
	}

	answer, err := prompt()
	if err != nil {
		return "", fmt.Errorf("prompt > %w", err)
	}
	settings.DiscordWebhook = strings.TrimSpace(answer)
	if settings.DiscordWebhook != "" {
		if err := SaveSettings(settingsPath, settings); err != nil {
			slog.Default().Warn("failed to save webhook settings", "path", settingsPath, "error", err)
		}
	}
	return settings.DiscordWebhook, nil
}
