package handler

import (
	"civicvoter/internal/domain"
	"civicvoter/internal/dto"
	"civicvoter/internal/middleware"
	"civicvoter/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ChecklistHandler handles voter checklist requests
type ChecklistHandler struct {
	sessions service.SessionService
}

// NewChecklistHandler creates a new ChecklistHandler instance
func NewChecklistHandler(sessions service.SessionService) *ChecklistHandler {
	return &ChecklistHandler{sessions: sessions}
}

// GetChecklist godoc
// @Summary Get a checklist's completion state
// @Tags checklist
// @Produce json
// @Param name path string true "Checklist name (get-ready or home)"
// @Success 200 {object} dto.ChecklistResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /checklist/{name} [get]
func (h *ChecklistHandler) GetChecklist(c *fiber.Ctx) error {
	name := c.Params("name")
	items, err := h.sessions.GetChecklist(c.Context(), middleware.SessionID(c), name)
	if err != nil {
		return err
	}
	return c.JSON(dto.ChecklistResponse{Name: name, Items: items})
}

// UpdateChecklist godoc
// @Summary Update checklist items
// @Description Merges the given item flags into the checklist
// @Tags checklist
// @Accept json
// @Produce json
// @Param name path string true "Checklist name (get-ready or home)"
// @Param request body dto.UpdateChecklistRequest true "Item flags to merge"
// @Success 200 {object} dto.ChecklistResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /checklist/{name} [put]
func (h *ChecklistHandler) UpdateChecklist(c *fiber.Ctx) error {
	name := c.Params("name")
	var req dto.UpdateChecklistRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	sessionID := middleware.SessionID(c)
	if err := h.sessions.PutChecklist(c.Context(), sessionID, name, req.Items); err != nil {
		return err
	}
	items, err := h.sessions.GetChecklist(c.Context(), sessionID, name)
	if err != nil {
		return err
	}
	return c.JSON(dto.ChecklistResponse{Name: name, Items: items})
}
