package dictionary

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBStore_Load(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      map[string]string
		wantErr   bool
	}{
		{
			name: "returns the terms of the scope",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"term", "translation"}).
					AddRow("Govisetha", "ගොවිසෙත").
					AddRow("Jayamalla", "<<<Jayamalla>>>")
				mock.ExpectQuery("SELECT term, translation FROM dictionary_terms WHERE scope = \\? ORDER BY term").
					WithArgs("names").
					WillReturnRows(rows)
			},
			want: map[string]string{"Govisetha": "ගොවිසෙත", "Jayamalla": "<<<Jayamalla>>>"},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT term, translation FROM dictionary_terms").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			store := NewDBStore(sqlx.NewDb(db, "mysql"), ScopeNames)
			tt.setupMock(mock)

			got, err := store.Load(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Entries())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStore_Save(t *testing.T) {
	tests := []struct {
		name      string
		entries   map[string]string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name:    "upserts every term in order within one transaction",
			entries: map[string]string{"wonder": "<<<wonder>>>", "agro": "කෘෂි"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO dictionary_terms").
					WithArgs("parentheticals", "agro", "කෘෂි").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO dictionary_terms").
					WithArgs("parentheticals", "wonder", "<<<wonder>>>").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:    "rolls back when an upsert fails",
			entries: map[string]string{"agro": "කෘෂි"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO dictionary_terms").
					WillReturnError(fmt.Errorf("deadlock"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name:    "empty dictionary commits nothing",
			entries: nil,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			store := NewDBStore(sqlx.NewDb(db, "mysql"), ScopeParentheticals)
			tt.setupMock(mock)

			err = store.Save(context.Background(), NewFromMap(tt.entries))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStore_Location(t *testing.T) {
	store := NewDBStore(nil, ScopeNames)
	assert.Equal(t, "mysql:dictionary_terms/names", store.Location())
}
