package handler

import (
	"civicvoter/internal/dto"
	"civicvoter/internal/logger"
	"civicvoter/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHandler handles session lifecycle requests
type SessionHandler struct {
	sessions service.SessionService
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(sessions service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// CreateSession godoc
// @Summary Create a new session
// @Description Creates a session and returns its ID; pass it back in the X-Session-ID header
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	sessionID, err := h.sessions.NewSession(c.Context())
	if err != nil {
		return err
	}
	logger.Get().Info("Session created", zap.String("sessionID", sessionID))
	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{SessionID: sessionID})
}
