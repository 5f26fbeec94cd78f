package handlers

import (
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
	userRepo    repositories.UserRepository
}

func NewAuthHandler(base BaseHandler, authService services.AuthService, userRepo repositories.UserRepository) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService, userRepo: userRepo}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)

		protected := auth.Group("", middleware.AuthMiddleware(h.userRepo))
		{
			protected.GET("/me", h.Me)
			protected.PUT("/password", h.ChangePassword)
		}
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(middleware.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, user)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(middleware.GetUserID(c), &req); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "Password updated")
}
