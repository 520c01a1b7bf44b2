package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errSeederDisabled = errors.New("catalog ingestion is not configured")
	errSeedFailed     = errors.New("catalog ingestion failed")
)

// SeedResponse reports a finished ingestion run.
type SeedResponse struct {
	Success    bool   `json:"success"`
	Pages      int    `json:"pages,omitempty"`
	Games      int64  `json:"games,omitempty"`
	DurationMS int64  `json:"duration_ms,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Seed godoc
// @Summary      Run catalog ingestion
// @Description  Called by the external scheduler with the cron secret as bearer token. Runs synchronously.
// @Tags         operations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  SeedResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  SeedResponse
// @Router       /api/cron/seed [get]
func (h *Handler) Seed(c *gin.Context) {
	if h.seeder == nil {
		c.JSON(http.StatusInternalServerError, SeedResponse{Error: errSeederDisabled.Error()})
		return
	}
	res, err := h.seeder.Run(c.Request.Context())
	if err != nil {
		// The seeder has logged the cause.
		c.JSON(http.StatusInternalServerError, SeedResponse{Error: errSeedFailed.Error()})
		return
	}
	c.JSON(http.StatusOK, SeedResponse{
		Success:    true,
		Pages:      res.Pages,
		Games:      res.Games,
		DurationMS: res.Duration.Milliseconds(),
	})
}
