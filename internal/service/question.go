package service

import (
	"context"
	"fmt"
	"io"

	"tactile-quiz/internal/domain"
	"tactile-quiz/internal/dto"
	"tactile-quiz/internal/logger"

	"go.uber.org/zap"
)

// QuestionService defines the admin-facing operations on the question store
type QuestionService interface {
	ListQuestions(ctx context.Context) ([]*dto.QuestionDetail, error)
	GetQuestion(ctx context.Context, id int64) (*dto.QuestionDetail, error)
	CreateQuestion(ctx context.Context, fields *dto.QuestionFields, image io.Reader, imageName string) (*dto.CreateQuestionResponse, error)
	UpdateQuestion(ctx context.Context, id int64, fields *dto.QuestionFields, image io.Reader, imageName string) (*dto.UpdateQuestionResponse, error)
	ToggleQuestion(ctx context.Context, id int64) (*dto.ToggleQuestionResponse, error)
	BatchToggle(ctx context.Context, req *dto.BatchToggleRequest) (*dto.BatchToggleResponse, error)
	DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
}

// questionService implements QuestionService
type questionService struct {
	questions domain.QuestionRepository
	sessions  domain.SessionRepository
	responses domain.ResponseRepository
	images    domain.ImageStore
	txManager domain.TransactionManager
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(
	questions domain.QuestionRepository,
	sessions domain.SessionRepository,
	responses domain.ResponseRepository,
	images domain.ImageStore,
	txManager domain.TransactionManager,
) QuestionService {
	return &questionService{
		questions: questions,
		sessions:  sessions,
		responses: responses,
		images:    images,
		txManager: txManager,
	}
}

func toQuestionDetail(q *domain.Question) *dto.QuestionDetail {
	return &dto.QuestionDetail{
		ID:          q.ID,
		ImagePath:   q.ImagePath,
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
	}
}

// ListQuestions implements QuestionService
func (s *questionService) ListQuestions(ctx context.Context) ([]*dto.QuestionDetail, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}

	details := make([]*dto.QuestionDetail, 0, len(questions))
	for _, q := range questions {
		details = append(details, toQuestionDetail(q))
	}
	return details, nil
}

// GetQuestion implements QuestionService
func (s *questionService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionDetail, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	return toQuestionDetail(question), nil
}

// CreateQuestion implements QuestionService. The image is converted before
// anything touches the database; a failed insert removes the stored file so
// no orphan survives.
func (s *questionService) CreateQuestion(ctx context.Context, fields *dto.QuestionFields, image io.Reader, imageName string) (*dto.CreateQuestionResponse, error) {
	if image == nil || imageName == "" {
		return nil, domain.NewValidationError("image file is required")
	}
	if err := requireAllFields(fields); err != nil {
		return nil, err
	}

	imagePath, err := s.images.Save(image, imageName)
	if err != nil {
		return nil, err
	}

	question := domain.NewQuestion(imagePath,
		*fields.SquareX, *fields.SquareY,
		*fields.TriangleX, *fields.TriangleY,
		*fields.CircleX, *fields.CircleY,
		map[domain.Direction]string{
			domain.DirectionUp:    *fields.AnswerUp,
			domain.DirectionDown:  *fields.AnswerDown,
			domain.DirectionLeft:  *fields.AnswerLeft,
			domain.DirectionRight: *fields.AnswerRight,
			domain.DirectionNE:    *fields.AnswerNE,
			domain.DirectionNW:    *fields.AnswerNW,
			domain.DirectionSE:    *fields.AnswerSE,
			domain.DirectionSW:    *fields.AnswerSW,
		})
	if err := question.Validate(); err != nil {
		s.removeImage(imagePath)
		return nil, err
	}

	if err := s.questions.Create(ctx, question); err != nil {
		s.removeImage(imagePath)
		return nil, domain.NewStorageError("Failed to save question", err)
	}

	return &dto.CreateQuestionResponse{
		Message:    "Question created",
		QuestionID: question.ID,
	}, nil
}

// UpdateQuestion implements QuestionService. Fields absent from the form keep
// their stored value; a replacement image is converted and stored before the
// old file is removed.
func (s *questionService) UpdateQuestion(ctx context.Context, id int64, fields *dto.QuestionFields, image io.Reader, imageName string) (*dto.UpdateQuestionResponse, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}

	oldImagePath := ""
	newImagePath := ""
	if image != nil && imageName != "" {
		newImagePath, err = s.images.Save(image, imageName)
		if err != nil {
			return nil, err
		}
		oldImagePath = question.ImagePath
		question.ImagePath = newImagePath
	}

	applyFields(question, fields)
	if err := question.Validate(); err != nil {
		s.removeImage(newImagePath)
		return nil, err
	}

	if err := s.questions.Update(ctx, question); err != nil {
		s.removeImage(newImagePath)
		return nil, domain.NewStorageError("Failed to update question", err)
	}

	// The replaced file goes away only after the new one is committed.
	s.removeImage(oldImagePath)

	return &dto.UpdateQuestionResponse{
		Message: fmt.Sprintf("Question %d updated", id),
	}, nil
}

// ToggleQuestion implements QuestionService
func (s *questionService) ToggleQuestion(ctx context.Context, id int64) (*dto.ToggleQuestionResponse, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}

	question.IsActive = !question.IsActive
	if err := s.questions.Update(ctx, question); err != nil {
		return nil, domain.NewStorageError("Failed to toggle question", err)
	}

	message := "Question disabled"
	if question.IsActive {
		message = "Question enabled"
	}
	return &dto.ToggleQuestionResponse{
		Message:  message,
		IsActive: question.IsActive,
	}, nil
}

// BatchToggle implements QuestionService. The flag flips for every listed id
// in one statement inside one transaction; ids without a matching row are
// skipped without aborting the rest.
func (s *questionService) BatchToggle(ctx context.Context, req *dto.BatchToggleRequest) (*dto.BatchToggleResponse, error) {
	if len(req.QuestionIDs) == 0 {
		return nil, domain.NewValidationError("question_ids must not be empty")
	}

	var updated int64
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.questions.SetActive(ctx, req.QuestionIDs, req.IsActive)
		return err
	})
	if err != nil {
		return nil, domain.NewStorageError("Failed to toggle questions", err)
	}

	action := "disabled"
	if req.IsActive {
		action = "enabled"
	}
	return &dto.BatchToggleResponse{
		Message: fmt.Sprintf("Successfully %s %d questions", action, updated),
		Updated: updated,
	}, nil
}

// DeleteQuestion implements QuestionService. Responses, sessions and the
// question go in one transaction; the image file is removed afterwards,
// best-effort.
func (s *questionService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}

	var deletedSessions, deletedResponses int64
	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		if deletedResponses, err = s.responses.DeleteByQuestionID(ctx, id); err != nil {
			return err
		}
		if deletedSessions, err = s.sessions.DeleteByQuestionID(ctx, id); err != nil {
			return err
		}
		_, err = s.questions.Delete(ctx, id)
		return err
	})
	if err != nil {
		return nil, domain.NewStorageError("Failed to delete question", err)
	}

	s.removeImage(question.ImagePath)

	return &dto.DeleteQuestionResponse{
		Message:          fmt.Sprintf("Question %d deleted", id),
		DeletedSessions:  deletedSessions,
		DeletedResponses: deletedResponses,
	}, nil
}

// removeImage deletes a stored image file best-effort; failures are logged,
// never surfaced.
func (s *questionService) removeImage(relPath string) {
	if relPath == "" {
		return
	}
	if err := s.images.Remove(relPath); err != nil {
		logger.Get().Warn("failed to remove image file",
			zap.String("path", relPath), zap.Error(err))
	}
}

func requireAllFields(fields *dto.QuestionFields) error {
	required := []struct {
		field string
		ok    bool
	}{
		{"square_x", fields.SquareX != nil},
		{"square_y", fields.SquareY != nil},
		{"triangle_x", fields.TriangleX != nil},
		{"triangle_y", fields.TriangleY != nil},
		{"circle_x", fields.CircleX != nil},
		{"circle_y", fields.CircleY != nil},
		{"answer_up", fields.AnswerUp != nil},
		{"answer_down", fields.AnswerDown != nil},
		{"answer_left", fields.AnswerLeft != nil},
		{"answer_right", fields.AnswerRight != nil},
		{"answer_ne", fields.AnswerNE != nil},
		{"answer_nw", fields.AnswerNW != nil},
		{"answer_se", fields.AnswerSE != nil},
		{"answer_sw", fields.AnswerSW != nil},
	}
	for _, r := range required {
		if !r.ok {
			return domain.NewMissingFieldError(r.field)
		}
	}
	return nil
}

func applyFields(q *domain.Question, fields *dto.QuestionFields) {
	if fields.SquareX != nil {
		q.SquareX = *fields.SquareX
	}
	if fields.SquareY != nil {
		q.SquareY = *fields.SquareY
	}
	if fields.TriangleX != nil {
		q.TriangleX = *fields.TriangleX
	}
	if fields.TriangleY != nil {
		q.TriangleY = *fields.TriangleY
	}
	if fields.CircleX != nil {
		q.CircleX = *fields.CircleX
	}
	if fields.CircleY != nil {
		q.CircleY = *fields.CircleY
	}
	setAnswer := func(d domain.Direction, v *string) {
		if v != nil {
			q.Answers[d] = *v
		}
	}
	setAnswer(domain.DirectionUp, fields.AnswerUp)
	setAnswer(domain.DirectionDown, fields.AnswerDown)
	setAnswer(domain.DirectionLeft, fields.AnswerLeft)
	setAnswer(domain.DirectionRight, fields.AnswerRight)
	setAnswer(domain.DirectionNE, fields.AnswerNE)
	setAnswer(domain.DirectionNW, fields.AnswerNW)
	setAnswer(domain.DirectionSE, fields.AnswerSE)
	setAnswer(domain.DirectionSW, fields.AnswerSW)
}
