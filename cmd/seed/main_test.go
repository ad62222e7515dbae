package main

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockSeeder(t *testing.T) (seeder, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return newSeeder(sqlx.NewDb(db, "sqlmock")), mock
}

func TestClearDeletesInOrder(t *testing.T) {
	s, mock := newMockSeeder(t)
	for _, table := range []string{"users", "courses", "testimonials", "contacts"} {
		mock.ExpectExec("DELETE FROM " + table).WillReturnResult(sqlmock.NewResult(0, 3))
	}

	require.NoError(t, s.clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearReturnsStoreErrors(t *testing.T) {
	s, mock := newMockSeeder(t)
	mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM courses").WillReturnError(errors.New("connection reset"))

	err := s.clear(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}
