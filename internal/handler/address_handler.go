package handler

import (
	"civicvoter/internal/domain"
	"civicvoter/internal/dto"
	"civicvoter/internal/middleware"
	"civicvoter/internal/service"
	"civicvoter/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AddressHandler handles address resolution requests
type AddressHandler struct {
	districts service.DistrictService
	sessions  service.SessionService
	validator *validation.Validator
}

// NewAddressHandler creates a new AddressHandler instance
func NewAddressHandler(districts service.DistrictService, sessions service.SessionService) *AddressHandler {
	return &AddressHandler{
		districts: districts,
		sessions:  sessions,
		validator: validation.NewValidator(),
	}
}

// ResolveAddress godoc
// @Summary Resolve an address into electoral districts
// @Description Geocodes the address, queries the district-boundary layers and falls back to the static ZIP table
// @Tags address
// @Accept json
// @Produce json
// @Param request body dto.ResolveAddressRequest true "Address to resolve"
// @Success 200 {object} dto.ResolveAddressResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /address/resolve [post]
func (h *AddressHandler) ResolveAddress(c *fiber.Ctx) error {
	var req dto.ResolveAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateResolveAddressRequest(req.Address); len(errs) > 0 {
		return errs
	}
	resp, err := h.districts.Resolve(c.Context(), middleware.SessionID(c), req.Address)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetAddress godoc
// @Summary Get the saved address and districts
// @Description Returns the address and district bundle saved on this session, 404 if none
// @Tags address
// @Produce json
// @Success 200 {object} dto.SavedAddressResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /address [get]
func (h *AddressHandler) GetAddress(c *fiber.Ctx) error {
	saved, err := h.sessions.GetAddress(c.Context(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	if saved == nil {
		return domain.NewNotFoundError("No address saved on this session")
	}
	return c.JSON(dto.SavedAddressResponse{
		Input:     saved.Input,
		Address:   saved.Address,
		Districts: saved.Districts,
		Source:    saved.Source,
	})
}

// GetFallbackDistricts godoc
// @Summary Look up the static fallback districts for a ZIP code
// @Tags address
// @Produce json
// @Param zip path string true "5-digit ZIP code"
// @Success 200 {object} dto.FallbackDistrictsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /districts/fallback/{zip} [get]
func (h *AddressHandler) GetFallbackDistricts(c *fiber.Ctx) error {
	zip := c.Params("zip")
	if errs := h.validator.ValidateZipCode(zip); len(errs) > 0 {
		return errs
	}
	return c.JSON(h.districts.FallbackDistricts(zip))
}
