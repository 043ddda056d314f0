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

type StreakHandler struct {
	streakService *services.StreakService
}

func NewStreakHandler(streakService *services.StreakService) *StreakHandler {
	return &StreakHandler{streakService: streakService}
}

func (h *StreakHandler) GetStreakInfo(c *gin.Context) {
	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse(models.DateFormat, raw)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "invalid as_of, expected "+models.DateFormat)
			return
		}
		asOf = parsed
	}

	info, err := h.streakService.GetStreakInfo(currentUserID(c), asOf)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, info)
}

func (h *StreakHandler) GetMissedDays(c *gin.Context) {
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

	missed, err := h.streakService.GetMissedDays(currentUserID(c), from, to)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, gin.H{"missed_days": missed})
}

func (h *StreakHandler) GetCalendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid year")
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		utils.Error(c, http.StatusBadRequest, "invalid month")
		return
	}

	data, err := h.streakService.GetCalendar(currentUserID(c), year, time.Month(month), time.Now())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, data)
}
