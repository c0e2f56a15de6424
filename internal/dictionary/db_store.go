package dictionary

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/lottery-translator/internal/database"
)

// termRow is one row of dictionary_terms.
type termRow struct {
	Term        string `db:"term"`
	Translation string `db:"translation"`
}

// DBStore keeps one scope of the dictionary in the dictionary_terms table.
type DBStore struct {
	db    *sqlx.DB
	scope Scope
}

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB, scope Scope) *DBStore {
	return &DBStore{db: db, scope: scope}
}

func (s *DBStore) Location() string {
	return "mysql:dictionary_terms/" + string(s.scope)
}

// Load returns every term of the scope.
func (s *DBStore) Load(ctx context.Context) (*Dictionary, error) {
	var rows []termRow
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT term, translation FROM dictionary_terms WHERE scope = ? ORDER BY term",
		string(s.scope),
	); err != nil {
		return nil, fmt.Errorf("db.SelectContext(dictionary_terms) > %w", err)
	}

	dictionary := New()
	for _, row := range rows {
		dictionary.add(row.Term, row.Translation)
	}
	return dictionary, nil
}

// Save upserts every entry in one transaction. Rows are never deleted, and a
// placeholder never replaces a stored real translation.
func (s *DBStore) Save(ctx context.Context, dictionary *Dictionary) error {
	entries := dictionary.Entries()
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, term := range dictionary.Terms() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO dictionary_terms (scope, term, translation)
				VALUES (?, ?, ?)
				ON DUPLICATE KEY UPDATE translation = IF(VALUES(translation) LIKE '<<<%', translation, VALUES(translation))`,
				string(s.scope), term, entries[term],
			); err != nil {
				return fmt.Errorf("tx.ExecContext(upsert dictionary_term %s) > %w", term, err)
			}
		}
		return nil
	})
}
