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

const sessionColumns = `id, question_id,
	tester_name, tester_age_group, tester_gender, tester_education,
	tester_vision_status, tester_injury_age, tester_braille_ability,
	tester_mobility_ability, tester_drawing_frequency, tester_museum_experience,
	question_order, finished_at, overall_accuracy, average_reaction_time`

// SessionDatabaseAdapter implements domain.SessionRepository using sqlx
type SessionDatabaseAdapter struct {
	db DBTX
}

// NewSessionDatabaseAdapter creates a new instance of SessionDatabaseAdapter
func NewSessionDatabaseAdapter(db *sqlx.DB) domain.SessionRepository {
	return &SessionDatabaseAdapter{db: db}
}

func toDomainSession(m *models.TestSession) *domain.TestSession {
	if m == nil {
		return nil
	}

	order := make([]domain.Direction, 0, len(m.QuestionOrder))
	for _, d := range m.QuestionOrder {
		order = append(order, domain.Direction(d))
	}

	session := &domain.TestSession{
		ID:         m.ID,
		QuestionID: m.QuestionID,
		Tester: domain.TesterProfile{
			Name:             m.TesterName.String,
			AgeGroup:         m.TesterAgeGroup,
			Gender:           m.TesterGender,
			Education:        m.TesterEducation,
			VisionStatus:     m.TesterVisionStatus,
			InjuryAge:        util.NullInt64ToIntPtr(m.TesterInjuryAge),
			BrailleAbility:   m.TesterBrailleAbility,
			MobilityAbility:  m.TesterMobilityAbility,
			DrawingFrequency: m.TesterDrawingFrequency,
			MuseumExperience: m.TesterMuseumExperience,
		},
		QuestionOrder: order,
	}
	if m.FinishedAt.Valid {
		t := m.FinishedAt.Time
		session.FinishedAt = &t
	}
	if m.OverallAccuracy.Valid {
		v := m.OverallAccuracy.Float64
		session.OverallAccuracy = &v
	}
	if m.AverageReactionTime.Valid {
		v := m.AverageReactionTime.Int64
		session.AverageReactionTimeMS = &v
	}
	return session
}

func fromDomainSession(s *domain.TestSession) *models.TestSession {
	if s == nil {
		return nil
	}

	order := make(models.DirectionOrder, 0, len(s.QuestionOrder))
	for _, d := range s.QuestionOrder {
		order = append(order, string(d))
	}

	m := &models.TestSession{
		ID:                     s.ID,
		QuestionID:             s.QuestionID,
		TesterName:             util.StringToNullString(s.Tester.Name),
		TesterAgeGroup:         s.Tester.AgeGroup,
		TesterGender:           s.Tester.Gender,
		TesterEducation:        s.Tester.Education,
		TesterVisionStatus:     s.Tester.VisionStatus,
		TesterInjuryAge:        util.IntPtrToNullInt64(s.Tester.InjuryAge),
		TesterBrailleAbility:   s.Tester.BrailleAbility,
		TesterMobilityAbility:  s.Tester.MobilityAbility,
		TesterDrawingFrequency: s.Tester.DrawingFrequency,
		TesterMuseumExperience: s.Tester.MuseumExperience,
		QuestionOrder:          order,
	}
	if s.FinishedAt != nil {
		m.FinishedAt = util.TimeToNullTime(*s.FinishedAt)
	}
	if s.OverallAccuracy != nil {
		m.OverallAccuracy = sql.NullFloat64{Float64: *s.OverallAccuracy, Valid: true}
	}
	if s.AverageReactionTimeMS != nil {
		m.AverageReactionTime = sql.NullInt64{Int64: *s.AverageReactionTimeMS, Valid: true}
	}
	return m
}

// Create implements domain.SessionRepository
func (a *SessionDatabaseAdapter) Create(ctx context.Context, session *domain.TestSession) error {
	m := fromDomainSession(session)
	if m == nil {
		return fmt.Errorf("cannot create nil session")
	}

	executor := GetExecutor(ctx, a.db)
	query := `INSERT INTO test_sessions (
		question_id,
		tester_name, tester_age_group, tester_gender, tester_education,
		tester_vision_status, tester_injury_age, tester_braille_ability,
		tester_mobility_ability, tester_drawing_frequency, tester_museum_experience,
		question_order
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
	) RETURNING id`

	err := executor.QueryRowxContext(ctx, query,
		m.QuestionID,
		m.TesterName, m.TesterAgeGroup, m.TesterGender, m.TesterEducation,
		m.TesterVisionStatus, m.TesterInjuryAge, m.TesterBrailleAbility,
		m.TesterMobilityAbility, m.TesterDrawingFrequency, m.TesterMuseumExperience,
		m.QuestionOrder,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("failed to create test session: %w", err)
	}

	session.ID = m.ID
	return nil
}

// GetByID implements domain.SessionRepository
func (a *SessionDatabaseAdapter) GetByID(ctx context.Context, id int64) (*domain.TestSession, error) {
	executor := GetExecutor(ctx, a.db)

	var m models.TestSession
	query := `SELECT ` + sessionColumns + ` FROM test_sessions WHERE id = $1`
	err := executor.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get test session by ID %d: %w", id, err)
	}
	return toDomainSession(&m), nil
}

// List implements domain.SessionRepository
func (a *SessionDatabaseAdapter) List(ctx context.Context) ([]*domain.TestSession, error) {
	executor := GetExecutor(ctx, a.db)

	var modelSessions []models.TestSession
	query := `SELECT ` + sessionColumns + ` FROM test_sessions ORDER BY id DESC`
	if err := executor.SelectContext(ctx, &modelSessions, query); err != nil {
		return nil, fmt.Errorf("failed to list test sessions: %w", err)
	}

	sessions := make([]*domain.TestSession, 0, len(modelSessions))
	for i := range modelSessions {
		sessions = append(sessions, toDomainSession(&modelSessions[i]))
	}
	return sessions, nil
}

// Finalize implements domain.SessionRepository. Repeated calls overwrite the
// previous aggregates.
func (a *SessionDatabaseAdapter) Finalize(ctx context.Context, id int64, accuracy float64, avgReactionMS int64, finishedAt time.Time) error {
	executor := GetExecutor(ctx, a.db)

	query := `UPDATE test_sessions SET
		overall_accuracy = $1,
		average_reaction_time = $2,
		finished_at = $3
	WHERE id = $4`

	result, err := executor.ExecContext(ctx, query, accuracy, avgReactionMS, finishedAt, id)
	if err != nil {
		return fmt.Errorf("failed to finalize test session %d: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("test session %d does not exist", id)
	}
	return nil
}

// Delete implements domain.SessionRepository
func (a *SessionDatabaseAdapter) Delete(ctx context.Context, id int64) (int64, error) {
	executor := GetExecutor(ctx, a.db)

	result, err := executor.ExecContext(ctx, `DELETE FROM test_sessions WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete test session %d: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows, nil
}

// DeleteByQuestionID implements domain.SessionRepository
func (a *SessionDatabaseAdapter) DeleteByQuestionID(ctx context.Context, questionID int64) (int64, error) {
	executor := GetExecutor(ctx, a.db)

	result, err := executor.ExecContext(ctx, `DELETE FROM test_sessions WHERE question_id = $1`, questionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sessions of question %d: %w", questionID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows, nil
}
