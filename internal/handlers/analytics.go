package handlers

import (
	"net/http"
	"strconv"
	"time"

	"journal-backend/internal/models"
	"journal-backend/internal/services"
	"journal-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) GetMoodDistribution(c *gin.Context) {
	from, to, ok := optionalRange(c)
	if !ok {
		return
	}

	dist, err := h.analyticsService.GetMoodDistribution(currentUserID(c), from, to)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, dist)
}

func (h *AnalyticsHandler) GetTagUsage(c *gin.Context) {
	from, to, ok := optionalRange(c)
	if !ok {
		return
	}

	topN := 0
	if raw := c.Query("top_n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.Error(c, http.StatusBadRequest, "invalid top_n")
			return
		}
		topN = parsed
	}

	usage, err := h.analyticsService.GetTagUsage(currentUserID(c), from, to, topN)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, usage)
}

func (h *AnalyticsHandler) GetWordCountTrend(c *gin.Context) {
	from, err := time.Parse(models.DateFormat, c.Query("from"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid from, expected "+models.DateFormat)
		return
	}
	to, err := time.Parse(models.DateFormat, c.Query("to"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid to, expected "+models.DateFormat)
		return
	}

	trend, err := h.analyticsService.GetWordCountTrend(currentUserID(c), from, to)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, trend)
}

// optionalRange parses the from/to query params, either of which may be
// absent. It writes the error response itself when a supplied value is bad.
func optionalRange(c *gin.Context) (from, to *time.Time, ok bool) {
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(models.DateFormat, raw)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "invalid from, expected "+models.DateFormat)
			return nil, nil, false
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(models.DateFormat, raw)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "invalid to, expected "+models.DateFormat)
			return nil, nil, false
		}
		to = &parsed
	}
	return from, to, true
}
