// Package datasync copies dictionaries between the file store and the database.
package datasync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/at-ishikawa/lottery-translator/internal/dictionary"
)

// SyncResult tracks counts for one dictionary copy.
type SyncResult struct {
	New     int
	Skipped int
	Updated int
}

// SyncOptions controls sync behavior.
type SyncOptions struct {
	DryRun bool
}

// Syncer merges the entries of one store into another.
type Syncer struct {
	writer io.Writer
}

// NewSyncer creates a new Syncer reporting each entry to writer.
func NewSyncer(writer io.Writer) *Syncer {
	return &Syncer{
		writer: writer,
	}
}

// Sync merges every entry of from into to. A real translation is never
// replaced by a placeholder, and entries only present in to are kept.
func (s *Syncer) Sync(ctx context.Context, from, to dictionary.Store, opts SyncOptions) (*SyncResult, error) {
	source, err := loadOrEmpty(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("loadOrEmpty(%s) > %w", from.Location(), err)
	}
	target, err := loadOrEmpty(ctx, to)
	if err != nil {
		return nil, fmt.Errorf("loadOrEmpty(%s) > %w", to.Location(), err)
	}

	var result SyncResult
	for _, term := range source.Terms() {
		translation, _ := source.Lookup(term)
		existing, ok := target.Lookup(term)
		switch {
		case !ok:
			fmt.Fprintf(s.writer, "  [NEW]  %q (%s)\n", term, translation)
			result.New++
		case existing == translation || dictionary.IsUnresolved(translation):
			fmt.Fprintf(s.writer, "  [SKIP]  %q (%s)\n", term, existing)
			result.Skipped++
			continue
		default:
			fmt.Fprintf(s.writer, "  [UPDATE]  %q (%s -> %s)\n", term, existing, translation)
			result.Updated++
		}
		target.Set(term, translation)
	}

	if opts.DryRun || result.New+result.Updated == 0 {
		return &result, nil
	}
	if err := to.Save(ctx, target); err != nil {
		return nil, fmt.Errorf("Save(%s) > %w", to.Location(), err)
	}
	return &result, nil
}

func loadOrEmpty(ctx context.Context, store dictionary.Store) (*dictionary.Dictionary, error) {
	d, err := store.Load(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		return dictionary.New(), nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
