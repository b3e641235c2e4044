package repository

import (
	"context"
	"fmt"

	"tactile-quiz/internal/domain"
	"tactile-quiz/internal/repository/models"
	"tactile-quiz/internal/util"

	"github.com/jmoiron/sqlx"
)

const responseColumns = `id, test_session_id, direction, user_answer,
	correct_answer, is_correct, reaction_time_ms`

// ResponseDatabaseAdapter implements domain.ResponseRepository using sqlx
type ResponseDatabaseAdapter struct {
	db DBTX
}

// NewResponseDatabaseAdapter creates a new instance of ResponseDatabaseAdapter
func NewResponseDatabaseAdapter(db *sqlx.DB) domain.ResponseRepository {
	return &ResponseDatabaseAdapter{db: db}
}

func toDomainResponse(m *models.Response) *domain.Response {
	if m == nil {
		return nil
	}
	return &domain.Response{
		ID:             m.ID,
		TestSessionID:  m.TestSessionID,
		Direction:      m.Direction,
		UserAnswer:     m.UserAnswer,
		CorrectAnswer:  m.CorrectAnswer.String,
		IsCorrect:      m.IsCorrect,
		ReactionTimeMS: m.ReactionTimeMS,
	}
}

// Create implements domain.ResponseRepository
func (a *ResponseDatabaseAdapter) Create(ctx context.Context, response *domain.Response) error {
	if response == nil {
		return fmt.Errorf("cannot create nil response")
	}

	executor := GetExecutor(ctx, a.db)
	query := `INSERT INTO responses (
		test_session_id, direction, user_answer, correct_answer, is_correct, reaction_time_ms
	) VALUES (
		$1, $2, $3, $4, $5, $6
	) RETURNING id`

	err := executor.QueryRowxContext(ctx, query,
		response.TestSessionID,
		response.Direction,
		response.UserAnswer,
		util.StringToNullString(response.CorrectAnswer),
		response.IsCorrect,
		response.ReactionTimeMS,
	).Scan(&response.ID)
	if err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}
	return nil
}

// ListBySessionID implements domain.ResponseRepository
func (a *ResponseDatabaseAdapter) ListBySessionID(ctx context.Context, sessionID int64) ([]*domain.Response, error) {
	executor := GetExecutor(ctx, a.db)

	var modelResponses []models.Response
	query := `SELECT ` + responseColumns + ` FROM responses WHERE test_session_id = $1 ORDER BY id`
	if err := executor.SelectContext(ctx, &modelResponses, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to list responses of session %d: %w", sessionID, err)
	}

	responses := make([]*domain.Response, 0, len(modelResponses))
	for i := range modelResponses {
		responses = append(responses, toDomainResponse(&modelResponses[i]))
	}
	return responses, nil
}

// ListBySessionIDs implements domain.ResponseRepository
func (a *ResponseDatabaseAdapter) ListBySessionIDs(ctx context.Context, sessionIDs []int64) (map[int64][]*domain.Response, error) {
	grouped := make(map[int64][]*domain.Response)
	if len(sessionIDs) == 0 {
		return grouped, nil
	}

	executor := GetExecutor(ctx, a.db)
	query, args, err := sqlx.In(`SELECT `+responseColumns+` FROM responses WHERE test_session_id IN (?) ORDER BY id`, sessionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build response listing query: %w", err)
	}
	query = executor.Rebind(query)

	var modelResponses []models.Response
	if err := executor.SelectContext(ctx, &modelResponses, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	for i := range modelResponses {
		r := toDomainResponse(&modelResponses[i])
		grouped[r.TestSessionID] = append(grouped[r.TestSessionID], r)
	}
	return grouped, nil
}

// DeleteBySessionID implements domain.ResponseRepository
func (a *ResponseDatabaseAdapter) DeleteBySessionID(ctx context.Context, sessionID int64) (int64, error) {
	executor := GetExecutor(ctx, a.db)

	result, err := executor.ExecContext(ctx, `DELETE FROM responses WHERE test_session_id = $1`, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete responses of session %d: %w", sessionID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows, nil
}

// DeleteByQuestionID implements domain.ResponseRepository
func (a *ResponseDatabaseAdapter) DeleteByQuestionID(ctx context.Context, questionID int64) (int64, error) {
	executor := GetExecutor(ctx, a.db)

	query := `DELETE FROM responses WHERE test_session_id IN (
		SELECT id FROM test_sessions WHERE question_id = $1
	)`
	result, err := executor.ExecContext(ctx, query, questionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete responses of question %d: %w", questionID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows, nil
}
