package handlers

import (
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	BaseHandler
	jobService         services.JobService
	applicationService services.ApplicationService
	userRepo           repositories.UserRepository
}

func NewJobHandler(
	base BaseHandler,
	jobService services.JobService,
	applicationService services.ApplicationService,
	userRepo repositories.UserRepository,
) *JobHandler {
	return &JobHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
		userRepo:           userRepo,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/meta", h.Meta)
		jobs.GET("/company/:companyId", h.CompanyJobs)
		jobs.GET("/:id", h.Get)

		employer := jobs.Group("", middleware.AuthMiddleware(h.userRepo))
		{
			employer.POST("",
				middleware.RequirePermission("jobs:create"), h.Create)
			employer.PUT("/:id",
				middleware.RequirePermission("jobs:write:own"), h.Update)
			employer.DELETE("/:id",
				middleware.RequirePermission("jobs:delete:own"), h.Delete)
			employer.GET("/:id/applications",
				middleware.RequirePermission("applications:read:company"), h.ListApplications)
		}
	}

	// Employer's own postings, all statuses.
	rg.GET("/employer/jobs",
		middleware.AuthMiddleware(h.userRepo),
		middleware.RequirePermission("jobs:read:own"),
		h.MyJobs)
}

func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	jobs, pagination, err := h.jobService.List(&query)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Paginated(c, jobs, pagination)
}

func (h *JobHandler) Meta(c *gin.Context) {
	h.OK(c, h.jobService.Meta())
}

func (h *JobHandler) Get(c *gin.Context) {
	// Viewer identity is optional here; owners browsing their own posting
	// should not bump the counter.
	viewerID := optionalUserID(c, h.userRepo)

	job, err := h.jobService.GetByID(c.Param("id"), viewerID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Param("id"), middleware.GetUserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobService.Delete(c.Param("id"), middleware.GetUserID(c)); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "Job deleted")
}

// CompanyJobs is the public view of one company's postings, active only.
func (h *JobHandler) CompanyJobs(c *gin.Context) {
	jobs, err := h.jobService.ListByCompany(c.Param("companyId"), true)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, jobs)
}

func (h *JobHandler) MyJobs(c *gin.Context) {
	jobs, err := h.jobService.ListByCompany(middleware.GetUserID(c), false)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, jobs)
}

func (h *JobHandler) ListApplications(c *gin.Context) {
	applications, err := h.applicationService.ListForJob(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, applications)
}
