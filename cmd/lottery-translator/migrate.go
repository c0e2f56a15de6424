package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lottery-translator/internal/database"
	"github.com/at-ishikawa/lottery-translator/internal/datasync"
	"github.com/at-ishikawa/lottery-translator/internal/dictionary"
	"github.com/at-ishikawa/lottery-translator/schemas"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(newMigrateSchemaCommand())
	migrateCmd.AddCommand(newMigrateImportDBCommand())
	migrateCmd.AddCommand(newMigrateExportDBCommand())

	return migrateCmd
}

func newMigrateSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the database tables of the mysql backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer db.Close()

			applied, err := database.Migrate(cmd.Context(), db, schemas.Migrations, schemas.MigrationsDir)
			if err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			for _, name := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "  applied %s\n", name)
			}
			return nil
		},
	}
}

func newMigrateImportDBCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-db",
		Short: "Import dictionary files into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, true, datasync.SyncOptions{DryRun: dryRun})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	return cmd
}

func newMigrateExportDBCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "export-db",
		Short: "Export dictionaries from the database into the dictionary files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, false, datasync.SyncOptions{DryRun: dryRun})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the dictionary files")
	return cmd
}

// runSync copies every dictionary from the files into the database, or back when toDB is false.
func runSync(cmd *cobra.Command, toDB bool, opts datasync.SyncOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	files := fileStores(cfg)
	tables := dbStores(db)
	syncer := datasync.NewSyncer(out)

	results := make(map[dictionary.Scope]*datasync.SyncResult, len(dictionary.AllScopes))
	for _, scope := range dictionary.AllScopes {
		var from, to dictionary.Store = files[scope], tables[scope]
		if !toDB {
			from, to = to, from
		}
		fmt.Fprintf(out, "%s -> %s\n", from.Location(), to.Location())
		result, err := syncer.Sync(cmd.Context(), from, to, opts)
		if err != nil {
			return fmt.Errorf("syncer.Sync(%s) > %w", scope, err)
		}
		results[scope] = result
	}

	fmt.Fprintln(out, "\nSync Summary:")
	if opts.DryRun {
		fmt.Fprintln(out, "  (dry-run mode, no changes made)")
	}
	for _, scope := range dictionary.AllScopes {
		result := results[scope]
		fmt.Fprintf(out, "  %-15s %d new, %d skipped, %d updated\n", scope+":", result.New, result.Skipped, result.Updated)
	}
	return nil
}
