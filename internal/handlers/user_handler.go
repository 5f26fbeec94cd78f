package handlers

import (
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
	userRepo    repositories.UserRepository
}

func NewUserHandler(base BaseHandler, userService services.UserService, userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService, userRepo: userRepo}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/profile/:id", h.PublicProfile)

	users := rg.Group("/users", middleware.AuthMiddleware(h.userRepo))
	{
		users.GET("/profile", h.GetProfile)
		users.PUT("/profile",
			middleware.RequirePermission("profile:write:own"), h.UpdateProfile)

		saved := users.Group("", middleware.RequirePermission("jobs:save"))
		{
			saved.GET("/saved-jobs", h.SavedJobs)
			saved.POST("/saved-jobs/:jobId", h.SaveJob)
			saved.DELETE("/saved-jobs/:jobId", h.UnsaveJob)
		}

		follows := users.Group("", middleware.RequirePermission("companies:follow"))
		{
			follows.GET("/followed-companies", h.FollowedCompanies)
			follows.POST("/followed-companies/:companyId", h.FollowCompany)
			follows.DELETE("/followed-companies/:companyId", h.UnfollowCompany)
		}
	}
}

func (h *UserHandler) PublicProfile(c *gin.Context) {
	user, err := h.userService.GetPublicProfile(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, user)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetProfile(middleware.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(middleware.GetUserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, user)
}

func (h *UserHandler) SavedJobs(c *gin.Context) {
	jobs, err := h.userService.GetSavedJobs(middleware.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, jobs)
}

func (h *UserHandler) SaveJob(c *gin.Context) {
	if err := h.userService.SaveJob(middleware.GetUserID(c), c.Param("jobId")); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "Job saved")
}

func (h *UserHandler) UnsaveJob(c *gin.Context) {
	if err := h.userService.UnsaveJob(middleware.GetUserID(c), c.Param("jobId")); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "Job removed from saved")
}

func (h *UserHandler) FollowedCompanies(c *gin.Context) {
	companies, err := h.userService.GetFollowedCompanies(middleware.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, companies)
}

func (h *UserHandler) FollowCompany(c *gin.Context) {
	if err := h.userService.FollowCompany(middleware.GetUserID(c), c.Param("companyId")); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "Company followed")
}

func (h *UserHandler) UnfollowCompany(c *gin.Context) {
	if err := h.userService.UnfollowCompany(middleware.GetUserID(c), c.Param("companyId")); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "Company unfollowed")
}
