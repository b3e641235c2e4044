package handler

import (
	"io"
	"strconv"

	"tactile-quiz/internal/domain"
	"tactile-quiz/internal/dto"
	"tactile-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles the admin question endpoints
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// ListQuestions handles GET /api/admin/questions
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	questions, err := h.service.ListQuestions(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// GetQuestion handles GET /api/admin/questions/:id
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	question, err := h.service.GetQuestion(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(question)
}

// CreateQuestion handles POST /api/admin/questions (multipart form)
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	fields, err := parseQuestionForm(c)
	if err != nil {
		return err
	}

	image, imageName, cleanup, err := openFormImage(c, true)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := h.service.CreateQuestion(c.Context(), fields, image, imageName)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateQuestion handles PUT /api/admin/questions/:id (multipart form, all
// fields optional)
func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	fields, err := parseQuestionForm(c)
	if err != nil {
		return err
	}

	image, imageName, cleanup, err := openFormImage(c, false)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := h.service.UpdateQuestion(c.Context(), id, fields, image, imageName)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion handles DELETE /api/admin/questions/:id
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.service.DeleteQuestion(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ToggleQuestion handles POST /api/admin/questions/:id/toggle
func (h *QuestionHandler) ToggleQuestion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.service.ToggleQuestion(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// BatchToggle handles POST /api/admin/questions/batch-toggle
func (h *QuestionHandler) BatchToggle(c *fiber.Ctx) error {
	var req dto.BatchToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("request body must be valid JSON")
	}
	resp, err := h.service.BatchToggle(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// paramID parses an integer route parameter.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(name + " must be an integer")
	}
	return id, nil
}

// openFormImage returns the uploaded image stream, or (nil, "") when the form
// has no image part and one is not required.
func openFormImage(c *fiber.Ctx, required bool) (io.Reader, string, func(), error) {
	noop := func() {}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		if required {
			return nil, "", noop, domain.NewValidationError("image file is required")
		}
		return nil, "", noop, nil
	}
	if fileHeader.Filename == "" {
		if required {
			return nil, "", noop, domain.NewValidationError("no file selected")
		}
		return nil, "", noop, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", noop, domain.NewInternalError("Failed to read uploaded file", err)
	}
	return file, fileHeader.Filename, func() { file.Close() }, nil
}

// parseQuestionForm collects the coordinate and answer fields present in the
// multipart form, leaving absent fields nil.
func parseQuestionForm(c *fiber.Ctx) (*dto.QuestionFields, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, domain.NewValidationError("request must be a multipart form")
	}

	formValue := func(key string) *string {
		values, ok := form.Value[key]
		if !ok || len(values) == 0 {
			return nil
		}
		return &values[0]
	}
	formInt := func(key string) (*int, error) {
		raw := formValue(key)
		if raw == nil {
			return nil, nil
		}
		v, err := strconv.Atoi(*raw)
		if err != nil {
			return nil, domain.NewValidationError(key + " must be an integer")
		}
		return &v, nil
	}

	fields := &dto.QuestionFields{
		AnswerUp:    formValue("answer_up"),
		AnswerDown:  formValue("answer_down"),
		AnswerLeft:  formValue("answer_left"),
		AnswerRight: formValue("answer_right"),
		AnswerNE:    formValue("answer_ne"),
		AnswerNW:    formValue("answer_nw"),
		AnswerSE:    formValue("answer_se"),
		AnswerSW:    formValue("answer_sw"),
	}

	coords := []struct {
		key  string
		dest **int
	}{
		{"square_x", &fields.SquareX},
		{"square_y", &fields.SquareY},
		{"triangle_x", &fields.TriangleX},
		{"triangle_y", &fields.TriangleY},
		{"circle_x", &fields.CircleX},
		{"circle_y", &fields.CircleY},
	}
	for _, coord := range coords {
		v, err := formInt(coord.key)
		if err != nil {
			return nil, err
		}
		*coord.dest = v
	}

	return fields, nil
}
