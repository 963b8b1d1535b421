package handler

import (
	"time"

	"civicvoter/internal/domain"
	"civicvoter/internal/dto"
	"civicvoter/internal/middleware"
	"civicvoter/internal/service"

	"github.com/gofiber/fiber/v2"
)

// BallotHandler handles election and candidate requests
type BallotHandler struct {
	ballot    service.BallotService
	selection service.SelectionService
}

// NewBallotHandler creates a new BallotHandler instance
func NewBallotHandler(ballot service.BallotService, selection service.SelectionService) *BallotHandler {
	return &BallotHandler{ballot: ballot, selection: selection}
}

// ListElections godoc
// @Summary List the election calendar
// @Description Returns all elections with a countdown in days
// @Tags elections
// @Produce json
// @Success 200 {array} dto.ElectionResponse
// @Router /elections [get]
func (h *BallotHandler) ListElections(c *fiber.Ctx) error {
	return c.JSON(h.ballot.ListElections(time.Now()))
}

// ListCandidates godoc
// @Summary List candidates
// @Description Lists candidates, optionally scoped to a level and filtered to the session's relevant jurisdictions
// @Tags candidates
// @Produce json
// @Param level query string false "Election level (state/county/city/port/school/special)"
// @Param relevant query bool false "Filter to the session's resolved districts"
// @Success 200 {object} dto.CandidateListResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /candidates [get]
func (h *BallotHandler) ListCandidates(c *fiber.Ctx) error {
	relevant := c.QueryBool("relevant")
	resp, err := h.ballot.ListCandidates(c.Context(), middleware.SessionID(c), c.Query("level"), relevant)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetCandidate godoc
// @Summary Get one candidate
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /candidates/{id} [get]
func (h *BallotHandler) GetCandidate(c *fiber.Ctx) error {
	resp, err := h.ballot.GetCandidate(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ToggleSelection godoc
// @Summary Toggle a candidate in the comparison selection
// @Description Adds or removes a candidate; at most three can be selected, a fourth add is a no-op
// @Tags selection
// @Accept json
// @Produce json
// @Param request body dto.ToggleSelectionRequest true "Candidate to toggle"
// @Success 200 {object} dto.SelectionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /selection/toggle [post]
func (h *BallotHandler) ToggleSelection(c *fiber.Ctx) error {
	var req dto.ToggleSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.selection.Toggle(c.Context(), middleware.SessionID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetSelection godoc
// @Summary Get the current comparison selection
// @Tags selection
// @Produce json
// @Success 200 {object} dto.SelectionResponse
// @Router /selection [get]
func (h *BallotHandler) GetSelection(c *fiber.Ctx) error {
	resp, err := h.selection.Get(c.Context(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CompareSelection godoc
// @Summary Compare the selected candidates side by side
// @Tags selection
// @Produce json
// @Success 200 {object} dto.CompareResponse
// @Router /selection/compare [get]
func (h *BallotHandler) CompareSelection(c *fiber.Ctx) error {
	resp, err := h.selection.Compare(c.Context(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
