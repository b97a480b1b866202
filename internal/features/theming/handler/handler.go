package handler

import (
	"net/http"
	"strings"

	"banner-buddy/internal/features/theming/domain"
	"banner-buddy/internal/features/theming/ports"

	"github.com/gofiber/fiber/v2"
)

// ThemeHandler handles HTTP requests for theme resolution.
type ThemeHandler struct {
	service ports.ThemeService
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(service ports.ThemeService) *ThemeHandler {
	return &ThemeHandler{
		service: service,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id"`
}

// RegisterRoutes mounts the theme routes on r.
func (h *ThemeHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/theme/tokens", h.ResolveTokens)
	r.Get("/theme/presets", h.ListPresets)
	r.Get("/theme/contrast", h.Contrast)
}

// ResolveTokens handles POST /theme/tokens.
// @Summary Resolve a theme
// @Description Resolves tokens, variant colors and CSS custom properties from a grouped config and individual values.
// @Tags Theme
// @Accept json
// @Produce json
// @Param layers body domain.Layers false "Grouped configuration and individual values"
// @Success 200 {object} ports.Theme
// @Failure 400 {object} ErrorResponse
// @Router /theme/tokens [post]
func (h *ThemeHandler) ResolveTokens(c *fiber.Ctx) error {
	var layers domain.Layers
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&layers); err != nil {
			return respondError(c, http.StatusBadRequest, "Invalid request body")
		}
	}

	return c.Status(http.StatusOK).JSON(h.service.Resolve(layers))
}

// ListPresets handles GET /theme/presets.
// @Summary List token presets
// @Tags Theme
// @Produce json
// @Success 200 {array} domain.TokenPreset
// @Router /theme/presets [get]
func (h *ThemeHandler) ListPresets(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Presets())
}

// Contrast handles GET /theme/contrast.
// @Summary Readable text color
// @Description Picks dark or light text for a background color.
// @Tags Theme
// @Produce json
// @Param color query string true "Background color, e.g. #ffcc00"
// @Success 200 {object} ports.Contrast
// @Failure 400 {object} ErrorResponse
// @Router /theme/contrast [get]
func (h *ThemeHandler) Contrast(c *fiber.Ctx) error {
	color := strings.TrimSpace(c.Query("color"))
	if color == "" {
		return respondError(c, http.StatusBadRequest, "Query parameter 'color' is required")
	}

	return c.Status(http.StatusOK).JSON(h.service.Contrast(color))
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
