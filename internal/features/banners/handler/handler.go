package handler

import (
	"errors"
	"net/http"

	"banner-buddy/internal/core/logger"
	"banner-buddy/internal/features/banners/domain"
	"banner-buddy/internal/features/banners/ports"
	theming "banner-buddy/internal/features/theming/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BannerHandler handles HTTP requests for display sessions and banner records.
type BannerHandler struct {
	service ports.SessionService
}

// NewBannerHandler creates a new BannerHandler.
func NewBannerHandler(service ports.SessionService) *BannerHandler {
	return &BannerHandler{
		service: service,
	}
}

// MountRequest represents the request body for mounting a display session.
type MountRequest struct {
	// SessionID is the browsing session id; generated when empty.
	SessionID string `json:"sessionId"`
	// BannerConfig is the grouped configuration object.
	BannerConfig map[string]any `json:"bannerConfig"`
}

// ConfigRequest represents the request body for replacing the grouped configuration.
type ConfigRequest struct {
	BannerConfig map[string]any `json:"bannerConfig"`
}

// BannersResponse lists the active banner records.
type BannersResponse struct {
	Banners []domain.Banner        `json:"banners"`
	Errors  []domain.ProviderError `json:"errors,omitempty"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// RegisterRoutes mounts the session and banner routes on r.
func (h *BannerHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/sessions", h.Mount)
	r.Get("/sessions/:id", h.View)
	r.Post("/sessions/:id/dismiss", h.Dismiss)
	r.Post("/sessions/:id/refresh", h.Refresh)
	r.Put("/sessions/:id/config", h.UpdateConfig)
	r.Delete("/sessions/:id", h.Unmount)
	r.Get("/banners", h.ListActive)
}

// Mount handles POST /sessions.
// @Summary Mount a display session
// @Description Creates (or replaces) a display session and loads the active banners. Provider failures are reported in the errors field.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session body MountRequest false "Session id and grouped configuration"
// @Success 201 {object} domain.DisplayView
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (h *BannerHandler) Mount(c *fiber.Ctx) error {
	var req MountRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, http.StatusBadRequest, "Invalid request body")
		}
	}

	view, err := h.service.Mount(c.UserContext(), ports.MountRequest{
		SessionID:    req.SessionID,
		BannerConfig: theming.Config(req.BannerConfig),
	})
	if err != nil {
		return h.fail(c, "Failed to mount session", req.SessionID, err)
	}

	return c.Status(http.StatusCreated).JSON(view)
}

// View handles GET /sessions/:id.
// @Summary Get a display session
// @Description Returns the current view-model of a display session.
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.DisplayView
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (h *BannerHandler) View(c *fiber.Ctx) error {
	id := c.Params("id")
	view, err := h.service.View(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "Failed to get session", id, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// Dismiss handles POST /sessions/:id/dismiss.
// @Summary Dismiss the current banner
// @Description Dismisses the current sticky banner for the rest of the browsing session. No-op in ticker mode.
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.DisplayView
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions/{id}/dismiss [post]
func (h *BannerHandler) Dismiss(c *fiber.Ctx) error {
	id := c.Params("id")
	view, err := h.service.Dismiss(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "Failed to dismiss banner", id, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// Refresh handles POST /sessions/:id/refresh.
// @Summary Refetch banners
// @Description Refetches the active banners of a session. On provider failure the previous banners stay.
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.DisplayView
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/refresh [post]
func (h *BannerHandler) Refresh(c *fiber.Ctx) error {
	id := c.Params("id")
	view, err := h.service.Refresh(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "Failed to refresh session", id, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// UpdateConfig handles PUT /sessions/:id/config.
// @Summary Replace the grouped configuration
// @Description Replaces the grouped configuration of a session and re-applies its display mode.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param config body ConfigRequest true "Grouped configuration"
// @Success 200 {object} domain.DisplayView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/config [put]
func (h *BannerHandler) UpdateConfig(c *fiber.Ctx) error {
	id := c.Params("id")

	var req ConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	view, err := h.service.UpdateConfig(c.UserContext(), id, theming.Config(req.BannerConfig))
	if err != nil {
		return h.fail(c, "Failed to update session config", id, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// Unmount handles DELETE /sessions/:id.
// @Summary Tear down a display session
// @Description Cancels the session's auto-dismiss timer and forgets the session.
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [delete]
func (h *BannerHandler) Unmount(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Unmount(c.UserContext(), id); err != nil {
		return h.fail(c, "Failed to unmount session", id, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListActive handles GET /banners.
// @Summary List active banners
// @Description Returns the active banner records, newest start date first.
// @Tags Banners
// @Produce json
// @Success 200 {object} BannersResponse
// @Failure 500 {object} ErrorResponse
// @Router /banners [get]
func (h *BannerHandler) ListActive(c *fiber.Ctx) error {
	banners, err := h.service.ActiveBanners(c.UserContext())
	if err != nil {
		var fe *domain.FetchError
		if errors.As(err, &fe) {
			return c.Status(http.StatusOK).JSON(BannersResponse{
				Banners: []domain.Banner{},
				Errors:  fe.Errors,
			})
		}
		return h.fail(c, "Failed to list banners", "", err)
	}

	if banners == nil {
		banners = []domain.Banner{}
	}
	return c.Status(http.StatusOK).JSON(BannersResponse{Banners: banners})
}

// fail maps service errors to HTTP statuses and logs unexpected ones.
func (h *BannerHandler) fail(c *fiber.Ctx, logMsg, sessionID string, err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return respondError(c, http.StatusNotFound, "Session not found")
	case errors.Is(err, domain.ErrControllerClosed):
		return respondError(c, http.StatusConflict, "Session is closed")
	}

	logger.Get().Error(logMsg,
		zap.String("session_id", sessionID),
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)
	return respondError(c, http.StatusInternalServerError, "Internal server error")
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

func respondError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}
