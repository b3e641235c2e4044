package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"tactile-quiz/internal/dto"
	"tactile-quiz/internal/handler"
	"tactile-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockQuestionService
type MockQuestionService struct {
	ListQuestionsFunc  func(ctx context.Context) ([]*dto.QuestionDetail, error)
	GetQuestionFunc    func(ctx context.Context, id int64) (*dto.QuestionDetail, error)
	CreateQuestionFunc func(ctx context.Context, fields *dto.QuestionFields, image io.Reader, imageName string) (*dto.CreateQuestionResponse, error)
	UpdateQuestionFunc func(ctx context.Context, id int64, fields *dto.QuestionFields, image io.Reader, imageName string) (*dto.UpdateQuestionResponse, error)
	ToggleQuestionFunc func(ctx context.Context, id int64) (*dto.ToggleQuestionResponse, error)
	BatchToggleFunc    func(ctx context.Context, req *dto.BatchToggleRequest) (*dto.BatchToggleResponse, error)
	DeleteQuestionFunc func(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
}

func (m *MockQuestionService) ListQuestions(ctx context.Context) ([]*dto.QuestionDetail, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx)
	}
	panic("MockQuestionService.ListQuestionsFunc not implemented")
}

func (m *MockQuestionService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionDetail, error) {
	if m.GetQuestionFunc != nil {
		return m.GetQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.GetQuestionFunc not implemented")
}

func (m *MockQuestionService) CreateQuestion(ctx context.Context, fields *dto.QuestionFields, image io.Reader, imageName string) (*dto.CreateQuestionResponse, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, fields, image, imageName)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}

func (m *MockQuestionService) UpdateQuestion(ctx context.Context, id int64, fields *dto.QuestionFields, image io.Reader, imageName string) (*dto.UpdateQuestionResponse, error) {
	if m.UpdateQuestionFunc != nil {
		return m.UpdateQuestionFunc(ctx, id, fields, image, imageName)
	}
	panic("MockQuestionService.UpdateQuestionFunc not implemented")
}

func (m *MockQuestionService) ToggleQuestion(ctx context.Context, id int64) (*dto.ToggleQuestionResponse, error) {
	if m.ToggleQuestionFunc != nil {
		return m.ToggleQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.ToggleQuestionFunc not implemented")
}

func (m *MockQuestionService) BatchToggle(ctx context.Context, req *dto.BatchToggleRequest) (*dto.BatchToggleResponse, error) {
	if m.BatchToggleFunc != nil {
		return m.BatchToggleFunc(ctx, req)
	}
	panic("MockQuestionService.BatchToggleFunc not implemented")
}

func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.DeleteQuestionFunc not implemented")
}

func newQuestionTestApp(svc *MockQuestionService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	h := handler.NewQuestionHandler(svc)
	app.Get("/api/admin/questions", h.ListQuestions)
	app.Post("/api/admin/questions", h.CreateQuestion)
	app.Post("/api/admin/questions/batch-toggle", h.BatchToggle)
	app.Get("/api/admin/questions/:id", h.GetQuestion)
	app.Put("/api/admin/questions/:id", h.UpdateQuestion)
	app.Delete("/api/admin/questions/:id", h.DeleteQuestion)
	app.Post("/api/admin/questions/:id/toggle", h.ToggleQuestion)
	return app
}

// buildQuestionForm assembles a multipart body with the given text fields and
// an optional image part.
func buildQuestionForm(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestQuestionHandler_ListQuestions(t *testing.T) {
	svc := &MockQuestionService{
		ListQuestionsFunc: func(ctx context.Context) ([]*dto.QuestionDetail, error) {
			return []*dto.QuestionDetail{
				{ID: 2, ImagePath: "uploads/b_1700000001.png", IsActive: true},
				{ID: 1, ImagePath: "uploads/a_1700000000.png", IsActive: false},
			}, nil
		},
	}
	app := newQuestionTestApp(svc)

	req := httptest.NewRequest("GET", "/api/admin/questions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []dto.QuestionDetail
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, int64(2), body[0].ID)
	assert.False(t, body[1].IsActive)
}

func TestQuestionHandler_CreateQuestion(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotFields *dto.QuestionFields
		var gotImageName string
		svc := &MockQuestionService{
			CreateQuestionFunc: func(ctx context.Context, fields *dto.QuestionFields, image io.Reader, imageName string) (*dto.CreateQuestionResponse, error) {
				gotFields = fields
				gotImageName = imageName
				return &dto.CreateQuestionResponse{Message: "Question created", QuestionID: 11}, nil
			},
		}
		app := newQuestionTestApp(svc)

		body, contentType := buildQuestionForm(t, map[string]string{
			"square_x": "1", "square_y": "2",
			"triangle_x": "3", "triangle_y": "1",
			"circle_x": "2", "circle_y": "3",
			"answer_up": "S,T,C", "answer_down": "C,T,S",
			"answer_left": "T,S,C", "answer_right": "C,S,T",
			"answer_ne": "S,C,T", "answer_nw": "T,C,S",
			"answer_se": "S,T", "answer_sw": "T,S",
		}, "scene.png")

		req := httptest.NewRequest("POST", "/api/admin/questions", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		require.NotNil(t, gotFields)
		require.NotNil(t, gotFields.SquareX)
		assert.Equal(t, 1, *gotFields.SquareX)
		require.NotNil(t, gotFields.AnswerSW)
		assert.Equal(t, "T,S", *gotFields.AnswerSW)
		assert.Equal(t, "scene.png", gotImageName)

		var respBody dto.CreateQuestionResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		assert.Equal(t, int64(11), respBody.QuestionID)
	})

	t.Run("Not Multipart", func(t *testing.T) {
		app := newQuestionTestApp(&MockQuestionService{})

		req := httptest.NewRequest("POST", "/api/admin/questions", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Missing Image", func(t *testing.T) {
		app := newQuestionTestApp(&MockQuestionService{})

		body, contentType := buildQuestionForm(t, map[string]string{"square_x": "1"}, "")
		req := httptest.NewRequest("POST", "/api/admin/questions", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var errResp middleware.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, "image file is required", errResp.Message)
	})

	t.Run("Non Integer Coordinate", func(t *testing.T) {
		app := newQuestionTestApp(&MockQuestionService{})

		body, contentType := buildQuestionForm(t, map[string]string{"square_x": "one"}, "scene.png")
		req := httptest.NewRequest("POST", "/api/admin/questions", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestQuestionHandler_UpdateQuestion_PartialForm(t *testing.T) {
	var gotFields *dto.QuestionFields
	var gotImageName string
	svc := &MockQuestionService{
		UpdateQuestionFunc: func(ctx context.Context, id int64, fields *dto.QuestionFields, image io.Reader, imageName string) (*dto.UpdateQuestionResponse, error) {
			assert.Equal(t, int64(7), id)
			gotFields = fields
			gotImageName = imageName
			return &dto.UpdateQuestionResponse{Message: "Question 7 updated"}, nil
		},
	}
	app := newQuestionTestApp(svc)

	// Only one field, no image part.
	body, contentType := buildQuestionForm(t, map[string]string{"answer_up": "C,S,T"}, "")
	req := httptest.NewRequest("PUT", "/api/admin/questions/7", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, gotFields)
	require.NotNil(t, gotFields.AnswerUp)
	assert.Equal(t, "C,S,T", *gotFields.AnswerUp)
	assert.Nil(t, gotFields.SquareX)
	assert.Empty(t, gotImageName)
}

func TestQuestionHandler_BatchToggle(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockQuestionService{
			BatchToggleFunc: func(ctx context.Context, req *dto.BatchToggleRequest) (*dto.BatchToggleResponse, error) {
				assert.Equal(t, []int64{1, 2, 999}, req.QuestionIDs)
				assert.False(t, req.IsActive)
				return &dto.BatchToggleResponse{Message: "Successfully disabled 2 questions", Updated: 2}, nil
			},
		}
		app := newQuestionTestApp(svc)

		reqBody, _ := json.Marshal(dto.BatchToggleRequest{QuestionIDs: []int64{1, 2, 999}, IsActive: false})
		req := httptest.NewRequest("POST", "/api/admin/questions/batch-toggle", bytes.NewReader(reqBody))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body dto.BatchToggleResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, int64(2), body.Updated)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		app := newQuestionTestApp(&MockQuestionService{})

		req := httptest.NewRequest("POST", "/api/admin/questions/batch-toggle", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestQuestionHandler_DeleteQuestion(t *testing.T) {
	svc := &MockQuestionService{
		DeleteQuestionFunc: func(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
			assert.Equal(t, int64(7), id)
			return &dto.DeleteQuestionResponse{
				Message:          "Question 7 deleted",
				DeletedSessions:  2,
				DeletedResponses: 16,
			}, nil
		},
	}
	app := newQuestionTestApp(svc)

	req := httptest.NewRequest("DELETE", "/api/admin/questions/7", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.DeleteQuestionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body.DeletedSessions)
	assert.Equal(t, int64(16), body.DeletedResponses)
}

func TestQuestionHandler_ToggleQuestion_BadID(t *testing.T) {
	app := newQuestionTestApp(&MockQuestionService{})

	req := httptest.NewRequest("POST", "/api/admin/questions/abc/toggle", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
