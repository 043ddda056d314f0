package handlers

import (
	"net/http"

	"journal-backend/internal/models"
	"journal-backend/internal/services"
	"journal-backend/internal/utils"
	"journal-backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService *services.TagService
}

func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, tags)
}

func (h *TagHandler) GetPrebuiltTags(c *gin.Context) {
	tags, err := h.tagService.GetPrebuiltTags()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, tags)
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	tag, err := h.tagService.CreateTag(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "tag created", tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	if err := h.tagService.DeleteTag(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "tag deleted", nil)
}
