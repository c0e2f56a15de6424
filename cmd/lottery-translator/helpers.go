package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/lottery-translator/internal/config"
	"github.com/at-ishikawa/lottery-translator/internal/database"
	"github.com/at-ishikawa/lottery-translator/internal/dictionary"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func fileStores(cfg *config.Config) map[dictionary.Scope]*dictionary.FileStore {
	return map[dictionary.Scope]*dictionary.FileStore{
		dictionary.ScopeNames:          dictionary.NewFileStore(cfg.Dictionaries.NamesFile),
		dictionary.ScopeParentheticals: dictionary.NewFileStore(cfg.Dictionaries.ParentheticalsFile),
	}
}

func dbStores(db *sqlx.DB) map[dictionary.Scope]*dictionary.DBStore {
	return map[dictionary.Scope]*dictionary.DBStore{
		dictionary.ScopeNames:          dictionary.NewDBStore(db, dictionary.ScopeNames),
		dictionary.ScopeParentheticals: dictionary.NewDBStore(db, dictionary.ScopeParentheticals),
	}
}

// openStores returns the stores of the configured backend and a function releasing them.
func openStores(cfg *config.Config) (map[dictionary.Scope]dictionary.Store, func(), error) {
	stores := make(map[dictionary.Scope]dictionary.Store, len(dictionary.AllScopes))
	if cfg.Dictionaries.Backend != config.BackendMySQL {
		for scope, store := range fileStores(cfg) {
			stores[scope] = store
		}
		return stores, func() {}, nil
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	for scope, store := range dbStores(db) {
		stores[scope] = store
	}
	return stores, func() { _ = db.Close() }, nil
}
