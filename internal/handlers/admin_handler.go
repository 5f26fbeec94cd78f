package handlers

import (
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	BaseHandler
	adminService services.AdminService
	userRepo     repositories.UserRepository
}

func NewAdminHandler(base BaseHandler, adminService services.AdminService, userRepo repositories.UserRepository) *AdminHandler {
	return &AdminHandler{BaseHandler: base, adminService: adminService, userRepo: userRepo}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin",
		middleware.AuthMiddleware(h.userRepo),
		middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/users/:id", h.GetUser)
		admin.PUT("/users/:id/toggle-active", h.ToggleUserActive)
		admin.PUT("/users/:id", h.UpdateUser)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.GET("/jobs", h.ListJobs)
		admin.GET("/jobs/:id", h.GetJob)
		admin.PUT("/jobs/:id/status", h.UpdateJobStatus)
		admin.DELETE("/jobs/:id", h.DeleteJob)

		admin.GET("/audit-logs", h.AuditLogs)
	}
}

func (h *AdminHandler) auditContext(c *gin.Context) services.AuditContext {
	return services.AuditContext{
		AdminID:   middleware.GetUserID(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.AdminUserListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	users, pagination, err := h.adminService.ListUsers(&query)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Paginated(c, users, pagination)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	detail, err := h.adminService.GetUserDetail(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, detail)
}

func (h *AdminHandler) ToggleUserActive(c *gin.Context) {
	user, err := h.adminService.ToggleUserActive(c.Param("id"), h.auditContext(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, user)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.adminService.UpdateUser(c.Param("id"), &req, h.auditContext(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminService.DeleteUser(c.Param("id"), h.auditContext(c)); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "User deleted")
}

func (h *AdminHandler) ListJobs(c *gin.Context) {
	var query dto.AdminJobListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	jobs, pagination, err := h.adminService.ListJobs(&query)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Paginated(c, jobs, pagination)
}

func (h *AdminHandler) GetJob(c *gin.Context) {
	detail, err := h.adminService.GetJobDetail(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, detail)
}

func (h *AdminHandler) UpdateJobStatus(c *gin.Context) {
	var req dto.AdminUpdateJobStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.adminService.UpdateJobStatus(c.Param("id"), &req, h.auditContext(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, job)
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	if err := h.adminService.DeleteJob(c.Param("id"), h.auditContext(c)); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "Job deleted")
}

func (h *AdminHandler) AuditLogs(c *gin.Context) {
	var query dto.AuditLogQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	entries, pagination, err := h.adminService.GetAuditLogs(&query)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Paginated(c, entries, pagination)
}
