package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
)

//go:generate mockgen -source=store.go -destination=../mocks/dictionary/mock_store.go -package=mock_dictionary

// Store persists a Dictionary.
type Store interface {
	Load(ctx context.Context) (*Dictionary, error)
	Save(ctx context.Context, dictionary *Dictionary) error
	Location() string
}

// Scope identifies one of the independently persisted dictionaries.
type Scope string

const (
	ScopeNames          Scope = "names"
	ScopeParentheticals Scope = "parentheticals"
)

var (
	AllScopes = []Scope{ScopeNames, ScopeParentheticals}

	ErrUnknownScope = errors.New("unknown dictionary scope")
)

// ParseScope converts a string into a Scope.
func ParseScope(value string) (Scope, error) {
	for _, scope := range AllScopes {
		if value == string(scope) {
			return scope, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownScope, value)
}

// Load reads the dictionary from store and never fails: any error yields an empty Dictionary.
func Load(ctx context.Context, store Store) *Dictionary {
	dictionary, err := store.Load(ctx)
	if err == nil {
		return dictionary
	}
	if errors.Is(err, fs.ErrNotExist) {
		slog.Default().Debug("dictionary not found, starting empty",
			"location", store.Location())
	} else {
		slog.Default().Warn("failed to load dictionary, starting empty",
			"location", store.Location(),
			"error", err)
	}
	return New()
}

// Save writes the dictionary to store on a best-effort basis.
// It reports whether the write succeeded.
func Save(ctx context.Context, store Store, dictionary *Dictionary) bool {
	if err := store.Save(ctx, dictionary); err != nil {
		slog.Default().Warn("failed to save dictionary",
			"location", store.Location(),
			"error", err)
		return false
	}
	return true
}
