package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/lottery-translator/internal/dictionary"
	"github.com/at-ishikawa/lottery-translator/internal/discord"
	"github.com/at-ishikawa/lottery-translator/internal/formatter"
	"github.com/at-ishikawa/lottery-translator/internal/translation"
)

// NotifierFactory builds the notifier for a resolved webhook URL.
// An empty URL means delivery is skipped.
type NotifierFactory func(webhookURL string) discord.Notifier

// TranslateOptions controls a translate session.
type TranslateOptions struct {
	Formatter    formatter.Options
	WebhookURL   string
	SettingsFile string
	DryRun       bool
}

// TranslateCLI runs one translate session: substitute, persist, deliver, report.
type TranslateCLI struct {
	names          dictionary.Store
	parentheticals dictionary.Store
	newNotifier    NotifierFactory
	options        TranslateOptions
	stdinReader    *bufio.Reader
	stdoutWriter   io.Writer
	stderrWriter   io.Writer
	bold           *color.Color
	green          *color.Color
	red            *color.Color
	yellow         *color.Color
}

func NewTranslateCLI(
	names dictionary.Store,
	parentheticals dictionary.Store,
	newNotifier NotifierFactory,
	options TranslateOptions,
) *TranslateCLI {
	return &TranslateCLI{
		names:          names,
		parentheticals: parentheticals,
		newNotifier:    newNotifier,
		options:        options,
		stdinReader:    bufio.NewReader(os.Stdin),
		stdoutWriter:   os.Stdout,
		stderrWriter:   os.Stderr,
		bold:           color.New(color.Bold),
		green:          color.New(color.FgGreen),
		red:            color.New(color.FgRed),
		yellow:         color.New(color.FgYellow),
	}
}

// ReadPastedResults prompts for results on the terminal and reads them up to the first blank line.
func (cli *TranslateCLI) ReadPastedResults() (string, error) {
	fmt.Fprintln(cli.stdoutWriter, "👉 Paste your lottery results (end with a blank line):")
	return ReadUntilBlankLine(cli.stdinReader)
}

// ReadUntilBlankLine collects lines until the first whitespace-only line or EOF.
// Each collected line ends with a newline. Nothing past the blank line is consumed
// from reader, so later prompts can keep reading from it.
func ReadUntilBlankLine(reader *bufio.Reader) (string, error) {
	var b strings.Builder
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reader.ReadString > %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			return b.String(), nil
		}
		b.WriteString(line)
		b.WriteString("\n")
		if err != nil {
			return b.String(), nil
		}
	}
}

// Run translates raw results, saves both dictionaries, delivers the message
// and prints it followed by the terms that still need a translation.
// Delivery failures are reported but do not fail the session.
func (cli *TranslateCLI) Run(ctx context.Context, raw string) error {
	if strings.TrimSpace(raw) == "" {
		cli.yellow.Fprintln(cli.stdoutWriter, "Nothing to translate.")
		return nil
	}

	names := dictionary.Load(ctx, cli.names)
	parentheticals := dictionary.Load(ctx, cli.parentheticals)

	pipeline := translation.NewPipeline(names, parentheticals, cli.options.Formatter)
	substituted := pipeline.Substitute(raw)

	dictionary.Save(ctx, cli.names, names)
	dictionary.Save(ctx, cli.parentheticals, parentheticals)

	message := pipeline.Format(substituted)

	if err := cli.deliver(ctx, message); err != nil {
		return err
	}

	fmt.Fprintln(cli.stdoutWriter)
	cli.bold.Fprintln(cli.stdoutWriter, "✅ Translated Output:")
	fmt.Fprintln(cli.stdoutWriter)
	fmt.Fprintln(cli.stdoutWriter, message)

	cli.warnUnresolved("New lottery names found", cli.names, names)
	cli.warnUnresolved("New parenthetical terms found", cli.parentheticals, parentheticals)
	return nil
}

func (cli *TranslateCLI) deliver(ctx context.Context, message string) error {
	if cli.options.DryRun {
		cli.yellow.Fprintln(cli.stdoutWriter, "Dry run: not sending to Discord.")
		return nil
	}

	webhookURL, err := discord.ResolveWebhookURL(cli.options.WebhookURL, cli.options.SettingsFile, cli.promptWebhookURL)
	if err != nil {
		return fmt.Errorf("discord.ResolveWebhookURL > %w", err)
	}
	if webhookURL == "" {
		cli.yellow.Fprintln(cli.stdoutWriter, "No Discord webhook configured, skipping delivery.")
		return nil
	}

	if err := cli.newNotifier(webhookURL).Send(ctx, message); err != nil {
		cli.red.Fprintf(cli.stderrWriter, "❌ Failed to send to Discord: %v\n", err)
		return nil
	}
	cli.green.Fprintln(cli.stdoutWriter, "✅ Sent translation to Discord webhook!")
	return nil
}

func (cli *TranslateCLI) promptWebhookURL() (string, error) {
	fmt.Fprint(cli.stdoutWriter, "🔹 Enter Discord webhook URL: ")
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("stdinReader.ReadString > %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (cli *TranslateCLI) warnUnresolved(title string, store dictionary.Store, d *dictionary.Dictionary) {
	terms := d.Unresolved()
	if len(terms) == 0 {
		return
	}
	cli.yellow.Fprintf(cli.stdoutWriter, "⚠️ %s (add translations to %s):\n", title, store.Location())
	for _, term := range terms {
		fmt.Fprintf(cli.stdoutWriter, "  - %s\n", term)
	}
}
