package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"wallfit/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedDemoResponse represents the seed response.
type SeedDemoResponse struct {
	Message string              `json:"message"`
	Result  *service.SeedResult `json:"result"`
}

// SeedDemo godoc
// @Summary Seed demo users, groups and posts
// @Tags seed
// @Produce json
// @Success 200 {object} SeedDemoResponse
// @Failure 500 {object} map[string]string
// @Router /seed/demo [get]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	result, err := h.seedService.SeedDemo(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("failed to seed demo data: %v", err),
		})
	}

	return c.JSON(http.StatusOK, SeedDemoResponse{
		Message: "demo data seeded successfully",
		Result:  result,
	})
}
