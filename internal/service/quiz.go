package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"tactile-quiz/internal/domain"
	"tactile-quiz/internal/dto"
	"tactile-quiz/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the quiz-taking operations: opening a session,
// recording answers and finalizing the result.
type QuizService interface {
	StartQuiz(ctx context.Context, req *dto.StartQuizRequest) (*dto.StartQuizResponse, error)
	SubmitAnswer(ctx context.Context, sessionID int64, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	GetResult(ctx context.Context, sessionID int64) (*dto.QuizResultResponse, error)
}

// quizService implements QuizService
type quizService struct {
	questions domain.QuestionRepository
	sessions  domain.SessionRepository
	responses domain.ResponseRepository
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	questions domain.QuestionRepository,
	sessions domain.SessionRepository,
	responses domain.ResponseRepository,
) QuizService {
	return &quizService{
		questions: questions,
		sessions:  sessions,
		responses: responses,
	}
}

// StartQuiz implements QuizService. One active question is chosen uniformly
// at random and the direction order is shuffled per group.
func (s *quizService) StartQuiz(ctx context.Context, req *dto.StartQuizRequest) (*dto.StartQuizResponse, error) {
	tester := domain.TesterProfile{
		Name:             req.Name,
		AgeGroup:         req.AgeGroup,
		Gender:           req.Gender,
		Education:        req.Education,
		VisionStatus:     req.VisionStatus,
		BrailleAbility:   req.BrailleAbility,
		MobilityAbility:  req.MobilityAbility,
		DrawingFrequency: req.DrawingFrequency,
		MuseumExperience: req.MuseumExperience,
	}
	if err := tester.Validate(); err != nil {
		return nil, err
	}
	if req.InjuryAge != "" {
		injuryAge, err := strconv.Atoi(req.InjuryAge)
		if err != nil {
			return nil, domain.NewValidationError("injury_age must be a number")
		}
		tester.InjuryAge = &injuryAge
	}

	question, err := s.questions.GetRandomActive(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to pick a question", err)
	}
	if question == nil {
		return nil, domain.NewNotFoundError("no active questions available")
	}

	session := domain.NewTestSession(question.ID, tester)
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, domain.NewStorageError("Failed to create test session", err)
	}

	logger.Get().Info("test session started",
		zap.Int64("session_id", session.ID),
		zap.Int64("question_id", question.ID),
	)

	order := make([]string, 0, len(session.QuestionOrder))
	for _, d := range session.QuestionOrder {
		order = append(order, string(d))
	}

	return &dto.StartQuizResponse{
		Message:       "Test session created",
		SessionID:     session.ID,
		QuestionID:    question.ID,
		QuestionOrder: order,
		QuestionImage: question.ImagePath,
		SquareX:       question.SquareX,
		SquareY:       question.SquareY,
		TriangleX:     question.TriangleX,
		TriangleY:     question.TriangleY,
		CircleX:       question.CircleX,
		CircleY:       question.CircleY,
	}, nil
}

// SubmitAnswer implements QuizService. Correctness is an exact, case
// sensitive string match against the stored answer; an unknown direction has
// no stored answer and always scores false. Every call appends a row, also
// for repeated submissions of the same direction.
func (s *quizService) SubmitAnswer(ctx context.Context, sessionID int64, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get test session", err)
	}
	if session == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}

	question, err := s.questions.GetByID(ctx, session.QuestionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(session.QuestionID)
	}

	var correctAnswer *string
	isCorrect := false
	if direction, ok := domain.ParseDirection(req.Direction); ok {
		if answer, ok := question.AnswerFor(direction); ok {
			correctAnswer = &answer
			isCorrect = answer == req.Answer
		}
	}

	response := &domain.Response{
		TestSessionID:  session.ID,
		Direction:      req.Direction,
		UserAnswer:     req.Answer,
		IsCorrect:      isCorrect,
		ReactionTimeMS: req.TimeMS,
	}
	if correctAnswer != nil {
		response.CorrectAnswer = *correctAnswer
	}
	if err := s.responses.Create(ctx, response); err != nil {
		return nil, domain.NewStorageError("Failed to save response", err)
	}

	return &dto.SubmitAnswerResponse{
		IsCorrect:     isCorrect,
		CorrectAnswer: correctAnswer,
	}, nil
}

// GetResult implements QuizService. Aggregates are computed over whatever
// responses exist and written back onto the session; calling again
// recomputes and overwrites them.
func (s *quizService) GetResult(ctx context.Context, sessionID int64) (*dto.QuizResultResponse, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get test session", err)
	}
	if session == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}

	responses, err := s.responses.ListBySessionID(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list responses", err)
	}
	if len(responses) == 0 {
		return nil, domain.NewNotFoundError("no responses recorded for this session")
	}

	total := len(responses)
	correct := 0
	var totalTimeMS int64
	for _, r := range responses {
		if r.IsCorrect {
			correct++
		}
		totalTimeMS += r.ReactionTimeMS
	}

	accuracy := float64(correct) / float64(total) * 100
	avgTimeMS := float64(totalTimeMS) / float64(total)

	if err := s.sessions.Finalize(ctx, sessionID, accuracy, int64(math.Round(avgTimeMS)), time.Now()); err != nil {
		return nil, domain.NewStorageError("Failed to finalize test session", err)
	}

	return &dto.QuizResultResponse{
		Accuracy:            fmt.Sprintf("%.2f%%", accuracy),
		AverageReactionTime: fmt.Sprintf("%.2f", avgTimeMS/1000),
	}, nil
}
