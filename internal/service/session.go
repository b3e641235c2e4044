package service

import (
	"context"
	"fmt"

	"tactile-quiz/internal/domain"
	"tactile-quiz/internal/dto"
)

// SessionService defines the admin-facing operations on recorded sessions
type SessionService interface {
	ListSessions(ctx context.Context) ([]*dto.SessionDetail, error)
	DeleteSession(ctx context.Context, id int64) (*dto.DeleteSessionResponse, error)
	BatchDeleteSessions(ctx context.Context, req *dto.BatchDeleteSessionsRequest) (*dto.BatchDeleteSessionsResponse, error)
}

// sessionService implements SessionService
type sessionService struct {
	sessions  domain.SessionRepository
	responses domain.ResponseRepository
	txManager domain.TransactionManager
}

// NewSessionService creates a new instance of sessionService
func NewSessionService(
	sessions domain.SessionRepository,
	responses domain.ResponseRepository,
	txManager domain.TransactionManager,
) SessionService {
	return &sessionService{
		sessions:  sessions,
		responses: responses,
		txManager: txManager,
	}
}

func toSessionDetail(s *domain.TestSession, responses []*domain.Response) *dto.SessionDetail {
	order := make([]string, 0, len(s.QuestionOrder))
	for _, d := range s.QuestionOrder {
		order = append(order, string(d))
	}

	detail := &dto.SessionDetail{
		ID:                     s.ID,
		QuestionID:             s.QuestionID,
		TesterName:             s.Tester.Name,
		TesterAgeGroup:         s.Tester.AgeGroup,
		TesterGender:           s.Tester.Gender,
		TesterEducation:        s.Tester.Education,
		TesterVisionStatus:     s.Tester.VisionStatus,
		TesterInjuryAge:        s.Tester.InjuryAge,
		TesterBrailleAbility:   s.Tester.BrailleAbility,
		TesterMobilityAbility:  s.Tester.MobilityAbility,
		TesterDrawingFrequency: s.Tester.DrawingFrequency,
		TesterMuseumExperience: s.Tester.MuseumExperience,
		QuestionOrder:          order,
		FinishedAt:             s.FinishedAt,
		OverallAccuracy:        s.OverallAccuracy,
		AverageReactionTime:    s.AverageReactionTimeMS,
		Responses:              make([]dto.ResponseDetail, 0, len(responses)),
	}

	for _, r := range responses {
		var correctAnswer *string
		if r.CorrectAnswer != "" {
			answer := r.CorrectAnswer
			correctAnswer = &answer
		}
		detail.Responses = append(detail.Responses, dto.ResponseDetail{
			ID:             r.ID,
			Direction:      r.Direction,
			UserAnswer:     r.UserAnswer,
			CorrectAnswer:  correctAnswer,
			IsCorrect:      r.IsCorrect,
			ReactionTimeMS: r.ReactionTimeMS,
		})
	}
	return detail
}

// ListSessions implements SessionService
func (s *sessionService) ListSessions(ctx context.Context) ([]*dto.SessionDetail, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list test sessions", err)
	}

	ids := make([]int64, 0, len(sessions))
	for _, sess := range sessions {
		ids = append(ids, sess.ID)
	}
	grouped, err := s.responses.ListBySessionIDs(ctx, ids)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list responses", err)
	}

	details := make([]*dto.SessionDetail, 0, len(sessions))
	for _, sess := range sessions {
		details = append(details, toSessionDetail(sess, grouped[sess.ID]))
	}
	return details, nil
}

// DeleteSession implements SessionService
func (s *sessionService) DeleteSession(ctx context.Context, id int64) (*dto.DeleteSessionResponse, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get test session", err)
	}
	if session == nil {
		return nil, domain.NewSessionNotFoundError(id)
	}

	var deletedResponses int64
	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		if deletedResponses, err = s.responses.DeleteBySessionID(ctx, id); err != nil {
			return err
		}
		_, err = s.sessions.Delete(ctx, id)
		return err
	})
	if err != nil {
		return nil, domain.NewStorageError("Failed to delete test session", err)
	}

	return &dto.DeleteSessionResponse{
		Message:          fmt.Sprintf("Test session %d deleted", id),
		DeletedResponses: deletedResponses,
	}, nil
}

// BatchDeleteSessions implements SessionService. Every listed id must exist;
// a single missing one fails the whole request before anything is deleted.
func (s *sessionService) BatchDeleteSessions(ctx context.Context, req *dto.BatchDeleteSessionsRequest) (*dto.BatchDeleteSessionsResponse, error) {
	if len(req.SessionIDs) == 0 {
		return nil, domain.NewValidationError("session_ids must not be empty")
	}

	for _, id := range req.SessionIDs {
		session, err := s.sessions.GetByID(ctx, id)
		if err != nil {
			return nil, domain.NewInternalError("Failed to get test session", err)
		}
		if session == nil {
			return nil, domain.NewSessionNotFoundError(id)
		}
	}

	var deletedSessions, deletedResponses int64
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		for _, id := range req.SessionIDs {
			responses, err := s.responses.DeleteBySessionID(ctx, id)
			if err != nil {
				return err
			}
			deleted, err := s.sessions.Delete(ctx, id)
			if err != nil {
				return err
			}
			deletedSessions += deleted
			deletedResponses += responses
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewStorageError("Failed to delete test sessions", err)
	}

	return &dto.BatchDeleteSessionsResponse{
		Message:          fmt.Sprintf("Deleted %d test sessions", deletedSessions),
		DeletedSessions:  deletedSessions,
		DeletedResponses: deletedResponses,
	}, nil
}
