package handlers

import (
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	BaseHandler
	applicationService services.ApplicationService
	userRepo           repositories.UserRepository
}

func NewApplicationHandler(
	base BaseHandler,
	applicationService services.ApplicationService,
	userRepo repositories.UserRepository,
) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		userRepo:           userRepo,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications", middleware.AuthMiddleware(h.userRepo))
	{
		applications.POST("",
			middleware.RequirePermission("applications:create"), h.Apply)
		applications.GET("/my",
			middleware.RequirePermission("applications:read:own"), h.MyApplications)
		applications.GET("/company",
			middleware.RequirePermission("applications:read:company"), h.CompanyApplications)
		applications.GET("/:id", h.Get)
		applications.PUT("/:id/status",
			middleware.RequirePermission("applications:update-status"), h.UpdateStatus)
		applications.DELETE("/:id",
			middleware.RequirePermission("applications:withdraw"), h.Withdraw)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(middleware.GetUserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, application)
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	applications, err := h.applicationService.ListForCandidate(middleware.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, applications)
}

func (h *ApplicationHandler) CompanyApplications(c *gin.Context) {
	applications, err := h.applicationService.ListForCompany(middleware.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, applications)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	user := middleware.GetUser(c)
	application, err := h.applicationService.GetByID(c.Param("id"), user.ID, user.Role)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, application)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(c.Param("id"), middleware.GetUserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, application)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	if err := h.applicationService.Withdraw(c.Param("id"), middleware.GetUserID(c)); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "Application withdrawn")
}
