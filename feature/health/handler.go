package health

import (
	"object-gateway/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/health")
	group.Get("/", h.HandleLiveness)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleLiveness reports that the process is serving requests.
// @Summary Liveness
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Router /health [get]
func (h *Handler) HandleLiveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleStorageCheck probes the storage provider.
// @Summary Check Storage
// @Description Checks that the storage provider answers a bucket existence request for the configured probe bucket.
// @Tags health
// @Produce json
// @Success 200 {object} StorageReport "Storage Report"
// @Failure 503 {object} map[string]string "Service Unavailable"
// @Router /health/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckStorage(c.Context())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
