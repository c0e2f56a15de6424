package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/lottery-translator/internal/dictionary"
)

// Scope selects a dictionary on the command line. The zero value means every dictionary.
type Scope string

// Set implements pflag.Value.
func (s *Scope) Set(val string) error {
	scope, err := dictionary.ParseScope(val)
	if err != nil {
		return fmt.Errorf("invalid scope %q, valid values are %v", val, dictionary.AllScopes)
	}
	*s = Scope(scope)
	return nil
}

// String implements pflag.Value.
func (s *Scope) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *Scope) Type() string {
	return "Scope"
}

func (s Scope) scopes() []dictionary.Scope {
	if s == "" {
		return dictionary.AllScopes
	}
	return []dictionary.Scope{dictionary.Scope(s)}
}

var (
	_ pflag.Value = (*Scope)(nil)
)

func newDictionaryCommand() *cobra.Command {
	dictionaryCommand := &cobra.Command{
		Use:   "dictionary",
		Short: "Inspect and maintain the translation dictionaries",
	}
	var scope Scope
	dictionaryCommand.PersistentFlags().Var(&scope, "scope", fmt.Sprintf("Dictionary to use. Possible values are %v", dictionary.AllScopes))

	dictionaryCommand.AddCommand(
		newDictionaryUnresolvedCommand(&scope),
		newDictionarySetCommand(&scope),
		newDictionaryCleanupCommand(&scope),
	)
	return dictionaryCommand
}

func newDictionaryUnresolvedCommand(scope *Scope) *cobra.Command {
	return &cobra.Command{
		Use:   "unresolved",
		Short: "List terms that still need a translation",
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

			out := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			yellow := color.New(color.FgYellow)
			for _, s := range scope.scopes() {
				store := stores[s]
				terms := dictionary.Load(cmd.Context(), store).Unresolved()

				bold.Fprintf(out, "%s (%s)\n", s, store.Location())
				if len(terms) == 0 {
					fmt.Fprintln(out, "  no unresolved terms")
					continue
				}
				for _, term := range terms {
					yellow.Fprintf(out, "  - %s\n", term)
				}
			}
			return nil
		},
	}
}

func newDictionarySetCommand(scope *Scope) *cobra.Command {
	return &cobra.Command{
		Use:   "set TERM TRANSLATION",
		Short: "Store the translation of a term",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if *scope == "" {
				return fmt.Errorf("--scope is required, possible values are %v", dictionary.AllScopes)
			}
			term := dictionary.NormalizeTerm(args[0])
			translation := strings.TrimSpace(args[1])
			if term == "" || translation == "" {
				return errors.New("term and translation must not be empty")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			stores, closeStores, err := openStores(cfg)
			if err != nil {
				return err
			}
			defer closeStores()

			ctx := cmd.Context()
			store := stores[dictionary.Scope(*scope)]
			d, err := store.Load(ctx)
			if errors.Is(err, fs.ErrNotExist) {
				d = dictionary.New()
			} else if err != nil {
				return fmt.Errorf("store.Load(%s) > %w", store.Location(), err)
			}

			d.Set(term, translation)
			if err := store.Save(ctx, d); err != nil {
				return fmt.Errorf("store.Save(%s) > %w", store.Location(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %q to %q in %s\n", term, translation, store.Location())
			return nil
		},
	}
}

func newDictionaryCleanupCommand(scope *Scope) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Rewrite dictionary files keyed by trimmed terms, keeping the first duplicate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			stores := fileStores(cfg)
			for _, s := range scope.scopes() {
				store := stores[s]
				dropped, err := store.Cleanup(cmd.Context())
				if errors.Is(err, fs.ErrNotExist) {
					fmt.Fprintf(out, "%s not found, skipped\n", store.Location())
					continue
				}
				if err != nil {
					return fmt.Errorf("store.Cleanup(%s) > %w", store.Location(), err)
				}
				color.New(color.FgGreen).Fprintf(out, "✅ %s cleaned, %d duplicates removed\n", store.Location(), dropped)
			}
			return nil
		},
	}
}
