package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tactile-quiz/internal/domain"
	"tactile-quiz/internal/repository/models"
	"tactile-quiz/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id, image_path,
	square_x, square_y, triangle_x, triangle_y, circle_x, circle_y,
	answer_up, answer_down, answer_left, answer_right,
	answer_ne, answer_nw, answer_se, answer_sw,
	is_active, created_at`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx
type QuestionDatabaseAdapter struct {
	db DBTX
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	return &domain.Question{
		ID:        m.ID,
		ImagePath: m.ImagePath.String,
		SquareX:   m.SquareX,
		SquareY:   m.SquareY,
		TriangleX: m.TriangleX,
		TriangleY: m.TriangleY,
		CircleX:   m.CircleX,
		CircleY:   m.CircleY,
		Answers: map[domain.Direction]string{
			domain.DirectionUp:    m.AnswerUp,
			domain.DirectionDown:  m.AnswerDown,
			domain.DirectionLeft:  m.AnswerLeft,
			domain.DirectionRight: m.AnswerRight,
			domain.DirectionNE:    m.AnswerNE,
			domain.DirectionNW:    m.AnswerNW,
			domain.DirectionSE:    m.AnswerSE,
			domain.DirectionSW:    m.AnswerSW,
		},
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func fromDomainQuestion(q *domain.Question) *models.Question {
	if q == nil {
		return nil
	}
	return &models.Question{
		ID:          q.ID,
		ImagePath:   util.StringToNullString(q.ImagePath),
		SquareX:     q.SquareX,
		SquareY:     q.SquareY,
		TriangleX:   q.TriangleX,
		TriangleY:   q.TriangleY,
		CircleX:     q.CircleX,
		CircleY:     q.CircleY,
		AnswerUp:    q.Answers[domain.DirectionUp],
		AnswerDown:  q.Answers[domain.DirectionDown],
		AnswerLeft:  q.Answers[domain.DirectionLeft],
		AnswerRight: q.Answers[domain.DirectionRight],
		AnswerNE:    q.Answers[domain.DirectionNE],
		AnswerNW:    q.Answers[domain.DirectionNW],
		AnswerSE:    q.Answers[domain.DirectionSE],
		AnswerSW:    q.Answers[domain.DirectionSW],
		IsActive:    q.IsActive,
		CreatedAt:   q.CreatedAt,
	}
}

// List implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) List(ctx context.Context) ([]*domain.Question, error) {
	executor := GetExecutor(ctx, a.db)

	var modelQuestions []models.Question
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY id DESC`
	if err := executor.SelectContext(ctx, &modelQuestions, query); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := make([]*domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		questions = append(questions, toDomainQuestion(&modelQuestions[i]))
	}
	return questions, nil
}

// GetByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	executor := GetExecutor(ctx, a.db)

	var modelQuestion models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`
	err := executor.GetContext(ctx, &modelQuestion, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %d: %w", id, err)
	}
	return toDomainQuestion(&modelQuestion), nil
}

// GetRandomActive implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetRandomActive(ctx context.Context) (*domain.Question, error) {
	executor := GetExecutor(ctx, a.db)

	var modelQuestion models.Question
	query := `SELECT ` + questionColumns + ` FROM questions
	WHERE is_active = TRUE
	ORDER BY RANDOM()
	LIMIT 1`
	err := executor.GetContext(ctx, &modelQuestion, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get random active question: %w", err)
	}
	return toDomainQuestion(&modelQuestion), nil
}

// Create implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Create(ctx context.Context, question *domain.Question) error {
	modelQuestion := fromDomainQuestion(question)
	if modelQuestion == nil {
		return fmt.Errorf("cannot create nil question")
	}
	if modelQuestion.CreatedAt.IsZero() {
		modelQuestion.CreatedAt = time.Now()
	}

	executor := GetExecutor(ctx, a.db)
	query := `INSERT INTO questions (
		image_path,
		square_x, square_y, triangle_x, triangle_y, circle_x, circle_y,
		answer_up, answer_down, answer_left, answer_right,
		answer_ne, answer_nw, answer_se, answer_sw,
		is_active, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
	) RETURNING id`

	err := executor.QueryRowxContext(ctx, query,
		modelQuestion.ImagePath,
		modelQuestion.SquareX, modelQuestion.SquareY,
		modelQuestion.TriangleX, modelQuestion.TriangleY,
		modelQuestion.CircleX, modelQuestion.CircleY,
		modelQuestion.AnswerUp, modelQuestion.AnswerDown,
		modelQuestion.AnswerLeft, modelQuestion.AnswerRight,
		modelQuestion.AnswerNE, modelQuestion.AnswerNW,
		modelQuestion.AnswerSE, modelQuestion.AnswerSW,
		modelQuestion.IsActive, modelQuestion.CreatedAt,
	).Scan(&modelQuestion.ID)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	question.ID = modelQuestion.ID
	question.CreatedAt = modelQuestion.CreatedAt
	return nil
}

// Update implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Update(ctx context.Context, question *domain.Question) error {
	modelQuestion := fromDomainQuestion(question)
	if modelQuestion == nil {
		return fmt.Errorf("cannot update nil question")
	}
	if modelQuestion.ID == 0 {
		return fmt.Errorf("cannot update question without ID")
	}

	executor := GetExecutor(ctx, a.db)
	query := `UPDATE questions SET
		image_path = $1,
		square_x = $2, square_y = $3,
		triangle_x = $4, triangle_y = $5,
		circle_x = $6, circle_y = $7,
		answer_up = $8, answer_down = $9,
		answer_left = $10, answer_right = $11,
		answer_ne = $12, answer_nw = $13,
		answer_se = $14, answer_sw = $15,
		is_active = $16
	WHERE id = $17`

	result, err := executor.ExecContext(ctx, query,
		modelQuestion.ImagePath,
		modelQuestion.SquareX, modelQuestion.SquareY,
		modelQuestion.TriangleX, modelQuestion.TriangleY,
		modelQuestion.CircleX, modelQuestion.CircleY,
		modelQuestion.AnswerUp, modelQuestion.AnswerDown,
		modelQuestion.AnswerLeft, modelQuestion.AnswerRight,
		modelQuestion.AnswerNE, modelQuestion.AnswerNW,
		modelQuestion.AnswerSE, modelQuestion.AnswerSW,
		modelQuestion.IsActive,
		modelQuestion.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update question %d: %w", modelQuestion.ID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("question %d does not exist", modelQuestion.ID)
	}
	return nil
}

// SetActive implements domain.QuestionRepository. Missing ids are skipped by
// the filter; the statement never fails on them.
func (a *QuestionDatabaseAdapter) SetActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := GetExecutor(ctx, a.db)
	query, args, err := sqlx.In(`UPDATE questions SET is_active = ? WHERE id IN (?)`, active, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to build batch toggle query: %w", err)
	}
	query = executor.Rebind(query)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to set active flag: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows, nil
}

// Delete implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Delete(ctx context.Context, id int64) (int64, error) {
	executor := GetExecutor(ctx, a.db)

	result, err := executor.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows, nil
}
