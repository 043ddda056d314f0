package handlers

import (
	"errors"
	"net/http"

	"journal-backend/internal/config"
	"journal-backend/internal/models"
	"journal-backend/internal/services"
	"journal-backend/internal/utils"
	"journal-backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
	config      *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		config:      cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	token, err := utils.GenerateToken(
		user.ID, user.Username,
		h.config.JWT.Secret, h.config.JWT.ExpireHours)
	if err != nil {
		utils.InternalError(c)
		return
	}

	utils.SuccessWithMessage(c, "registered", models.AuthResponse{
		User:  user,
		Token: token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	user, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.Unauthorized(c, err.Error())
			return
		}
		handleServiceError(c, err)
		return
	}

	token, err := utils.GenerateToken(
		user.ID, user.Username,
		h.config.JWT.Secret, h.config.JWT.ExpireHours)
	if err != nil {
		utils.InternalError(c)
		return
	}

	utils.SuccessWithMessage(c, "logged in", models.AuthResponse{
		User:  user,
		Token: token,
	})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	user, err := h.authService.GetUserByID(currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, user)
}

func (h *AuthHandler) UpdateTheme(c *gin.Context) {
	var req models.ThemeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	user, err := h.authService.UpdateTheme(currentUserID(c), req.Theme)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, user)
}

// Logout exists for API symmetry; tokens are stateless, so the client just
// discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SuccessWithMessage(c, "logged out", nil)
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.authService.DeleteUser(currentUserID(c)); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "account deleted", nil)
}
