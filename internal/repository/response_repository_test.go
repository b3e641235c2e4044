package repository

import (
	"context"
	"testing"

	"tactile-quiz/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupResponseTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

var responseRowColumns = []string{
	"id", "test_session_id", "direction", "user_answer",
	"correct_answer", "is_correct", "reaction_time_ms",
}

func TestResponseDatabaseAdapter_Create_AssignsID(t *testing.T) {
	db, mock := setupResponseTestDB(t)
	repo := NewResponseDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectQuery(`(?s)INSERT INTO responses (.+) RETURNING id`).
		WithArgs(int64(42), "up", "S,T,C", "S,T,C", true, int64(1800)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	response := &domain.Response{
		TestSessionID:  42,
		Direction:      "up",
		UserAnswer:     "S,T,C",
		CorrectAnswer:  "S,T,C",
		IsCorrect:      true,
		ReactionTimeMS: 1800,
	}
	err := repo.Create(context.Background(), response)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), response.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResponseDatabaseAdapter_ListBySessionIDs_Groups(t *testing.T) {
	db, mock := setupResponseTestDB(t)
	repo := NewResponseDatabaseAdapter(db)
	defer db.Close()

	rows := sqlmock.NewRows(responseRowColumns).
		AddRow(1, 10, "up", "S,T,C", "S,T,C", true, 1800).
		AddRow(2, 10, "down", "T,C,S", "C,T,S", false, 2400).
		AddRow(3, 11, "left", "T,S,C", "T,S,C", true, 1500)

	mock.ExpectQuery(`(?s)SELECT (.+) FROM responses WHERE test_session_id IN \(\?, \?\) ORDER BY id`).
		WithArgs(int64(10), int64(11)).
		WillReturnRows(rows)

	grouped, err := repo.ListBySessionIDs(context.Background(), []int64{10, 11})

	assert.NoError(t, err)
	require.Len(t, grouped, 2)
	require.Len(t, grouped[10], 2)
	require.Len(t, grouped[11], 1)
	assert.Equal(t, "down", grouped[10][1].Direction)
	assert.False(t, grouped[10][1].IsCorrect)
	assert.Equal(t, "C,T,S", grouped[10][1].CorrectAnswer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResponseDatabaseAdapter_ListBySessionIDs_Empty(t *testing.T) {
	db, mock := setupResponseTestDB(t)
	repo := NewResponseDatabaseAdapter(db)
	defer db.Close()

	grouped, err := repo.ListBySessionIDs(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, grouped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResponseDatabaseAdapter_DeleteByQuestionID_Subquery(t *testing.T) {
	db, mock := setupResponseTestDB(t)
	repo := NewResponseDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectExec(`(?s)DELETE FROM responses WHERE test_session_id IN \(\s*SELECT id FROM test_sessions WHERE question_id = \$1\s*\)`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 16))

	deleted, err := repo.DeleteByQuestionID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(16), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
