package handler

import (
	"tactile-quiz/internal/domain"
	"tactile-quiz/internal/dto"
	"tactile-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles the quiz-taking endpoints
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// StartQuiz handles POST /api/quiz/start
func (h *QuizHandler) StartQuiz(c *fiber.Ctx) error {
	var req dto.StartQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("request body must be valid JSON")
	}

	resp, err := h.service.StartQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// SubmitAnswer handles POST /api/quiz/:session_id/answer
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	sessionID, err := paramID(c, "session_id")
	if err != nil {
		return err
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("request body must be valid JSON")
	}
	if req.Direction == "" || req.Answer == "" {
		return domain.NewValidationError("direction and answer are required")
	}

	resp, err := h.service.SubmitAnswer(c.Context(), sessionID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetResult handles GET /api/quiz/:session_id/result
func (h *QuizHandler) GetResult(c *fiber.Ctx) error {
	sessionID, err := paramID(c, "session_id")
	if err != nil {
		return err
	}

	resp, err := h.service.GetResult(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
