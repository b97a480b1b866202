package handler

import (
	"errors"
	"net/http"

	"banner-buddy/internal/features/editor/domain"
	"banner-buddy/internal/features/editor/ports"

	"github.com/gofiber/fiber/v2"
)

// EditorHandler handles HTTP requests for the configuration editors.
type EditorHandler struct {
	service ports.EditorService
}

// NewEditorHandler creates a new EditorHandler.
func NewEditorHandler(service ports.EditorService) *EditorHandler {
	return &EditorHandler{
		service: service,
	}
}

// ValidationResponse lists validation failures.
type ValidationResponse struct {
	Valid  bool                     `json:"valid"`
	Errors []domain.ValidationError `json:"errors"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id"`
}

// RegisterRoutes mounts the editor routes on r.
func (h *EditorHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/editor")
	g.Post("/property/load", h.LoadProperty)
	g.Post("/property/change", h.ChangeProperty)
	g.Post("/property/reset", h.ResetProperty)
	g.Post("/property/validate", h.ValidateProperty)
	g.Post("/experience/change", h.ChangeExperience)
}

// LoadProperty handles POST /editor/property/load.
// @Summary Load the property editor
// @Tags Editor
// @Accept json
// @Produce json
// @Param request body ports.PropertyRequest true "Input variables"
// @Success 200 {object} ports.PropertyState
// @Failure 400 {object} ErrorResponse
// @Router /editor/property/load [post]
func (h *EditorHandler) LoadProperty(c *fiber.Ctx) error {
	var req ports.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	return c.Status(http.StatusOK).JSON(h.service.LoadProperty(req))
}

// ChangeProperty handles POST /editor/property/change.
// @Summary Change one property editor field
// @Description Applies a field change and returns the value change event for the host.
// @Tags Editor
// @Accept json
// @Produce json
// @Param request body ports.PropertyRequest true "Input variables, field and value"
// @Success 200 {object} ports.PropertyState
// @Failure 400 {object} ErrorResponse
// @Router /editor/property/change [post]
func (h *EditorHandler) ChangeProperty(c *fiber.Ctx) error {
	var req ports.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	state, err := h.service.ChangeProperty(req)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownField) {
			return respondError(c, http.StatusBadRequest, "Unknown field: "+req.Field)
		}
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.Status(http.StatusOK).JSON(state)
}

// ResetProperty handles POST /editor/property/reset.
// @Summary Reset preset overrides
// @Tags Editor
// @Accept json
// @Produce json
// @Param request body ports.PropertyRequest true "Input variables"
// @Success 200 {object} ports.PropertyState
// @Failure 400 {object} ErrorResponse
// @Router /editor/property/reset [post]
func (h *EditorHandler) ResetProperty(c *fiber.Ctx) error {
	var req ports.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	return c.Status(http.StatusOK).JSON(h.service.ResetProperty(req))
}

// ValidateProperty handles POST /editor/property/validate.
// @Summary Validate property editor values
// @Tags Editor
// @Accept json
// @Produce json
// @Param request body ports.PropertyRequest true "Input variables"
// @Success 200 {object} ValidationResponse
// @Failure 400 {object} ErrorResponse
// @Router /editor/property/validate [post]
func (h *EditorHandler) ValidateProperty(c *fiber.Ctx) error {
	var req ports.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	errs := h.service.ValidateProperty(req)
	return c.Status(http.StatusOK).JSON(ValidationResponse{
		Valid:  len(errs) == 0,
		Errors: errs,
	})
}

// ChangeExperience handles POST /editor/experience/change.
// @Summary Edit a grouped configuration
// @Tags Editor
// @Accept json
// @Produce json
// @Param request body ports.ExperienceRequest true "Grouped configuration and edit"
// @Success 200 {object} ports.ExperienceState
// @Failure 400 {object} ErrorResponse
// @Router /editor/experience/change [post]
func (h *EditorHandler) ChangeExperience(c *fiber.Ctx) error {
	var req ports.ExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	return c.Status(http.StatusOK).JSON(h.service.ChangeExperience(req))
}

func respondError(c *fiber.Ctx, status int, msg string) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID,
	})
}
