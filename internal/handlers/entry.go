package handlers

import (
	"net/http"
	"time"

	"journal-backend/internal/models"
	"journal-backend/internal/services"
	"journal-backend/internal/utils"
	"journal-backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

type EntryHandler struct {
	entryService *services.EntryService
}

func NewEntryHandler(entryService *services.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

func (h *EntryHandler) Upsert(c *gin.Context) {
	var req models.EntryUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	entry, err := h.entryService.Upsert(currentUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, entry)
}

func (h *EntryHandler) Search(c *gin.Context) {
	var req models.EntrySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	result, err := h.entryService.Search(currentUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, result)
}

func (h *EntryHandler) GetEntry(c *gin.Context) {
	entry, err := h.entryService.GetEntryByID(currentUserID(c), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, entry)
}

func (h *EntryHandler) GetEntryByDate(c *gin.Context) {
	date, err := time.Parse(models.DateFormat, c.Param("date"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid date, expected "+models.DateFormat)
		return
	}

	entry, err := h.entryService.GetEntryByDate(currentUserID(c), date)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, entry)
}

func (h *EntryHandler) HasEntryForDate(c *gin.Context) {
	date, err := time.Parse(models.DateFormat, c.Param("date"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid date, expected "+models.DateFormat)
		return
	}

	exists, err := h.entryService.HasEntryForDate(currentUserID(c), date)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, gin.H{"date": c.Param("date"), "has_entry": exists})
}

func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	if err := h.entryService.DeleteEntry(currentUserID(c), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "entry deleted", nil)
}
