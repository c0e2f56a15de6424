package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lottery-translator/internal/cli"
	"github.com/at-ishikawa/lottery-translator/internal/dictionary"
	"github.com/at-ishikawa/lottery-translator/internal/discord"
	"github.com/at-ishikawa/lottery-translator/internal/formatter"
)

func newTranslateCommand() *cobra.Command {
	var inputFile string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate pasted lottery results and send them to Discord",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			stores, closeStores, err := openStores(cfg)
			if err != nil {
				return err
			}
			defer closeStores()

			timeout := time.Duration(cfg.Discord.TimeoutSeconds) * time.Second
			translateCLI := cli.NewTranslateCLI(
				stores[dictionary.ScopeNames],
				stores[dictionary.ScopeParentheticals],
				func(webhookURL string) discord.Notifier {
					return discord.NewNotifier(webhookURL, timeout, cfg.Discord.MessageLimit)
				},
				cli.TranslateOptions{
					Formatter: formatter.Options{
						EmphasizeHeaderParentheses:       cfg.Formatter.EmphasizeHeaderParentheses,
						EmphasizeContinuationParentheses: cfg.Formatter.EmphasizeContinuationParentheses,
					},
					WebhookURL:   cfg.Discord.WebhookURL,
					SettingsFile: cfg.Discord.SettingsFile,
					DryRun:       dryRun,
				},
			)

			var raw string
			if inputFile != "" {
				content, err := os.ReadFile(inputFile)
				if err != nil {
					return fmt.Errorf("os.ReadFile(%s) > %w", inputFile, err)
				}
				raw = string(content)
			} else {
				raw, err = translateCLI.ReadPastedResults()
				if err != nil {
					return fmt.Errorf("translateCLI.ReadPastedResults() > %w", err)
				}
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			return translateCLI.Run(ctx, raw)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read results from a file instead of the terminal")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Translate and save dictionaries without sending to Discord")
	return cmd
}
