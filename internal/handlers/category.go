package handlers

import (
	"net/http"

	"journal-backend/internal/models"
	"journal-backend/internal/services"
	"journal-backend/internal/utils"
	"journal-backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "category created", category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "category updated", category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "category deleted", nil)
}
