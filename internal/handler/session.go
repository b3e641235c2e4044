package handler

import (
	"tactile-quiz/internal/domain"
	"tactile-quiz/internal/dto"
	"tactile-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles the admin test-session endpoints
type SessionHandler struct {
	service service.SessionService
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// ListSessions handles GET /api/admin/test-sessions
func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.service.ListSessions(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(sessions)
}

// DeleteSession handles DELETE /api/admin/test-sessions/:id
func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.service.DeleteSession(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// BatchDeleteSessions handles POST /api/admin/test-sessions/batch-delete
func (h *SessionHandler) BatchDeleteSessions(c *fiber.Ctx) error {
	var req dto.BatchDeleteSessionsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("request body must be valid JSON")
	}
	resp, err := h.service.BatchDeleteSessions(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
