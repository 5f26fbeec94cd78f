package handlers

import (
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	BaseHandler
	reviewService services.ReviewService
	userRepo      repositories.UserRepository
}

func NewReviewHandler(base BaseHandler, reviewService services.ReviewService, userRepo repositories.UserRepository) *ReviewHandler {
	return &ReviewHandler{BaseHandler: base, reviewService: reviewService, userRepo: userRepo}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews")
	{
		reviews.GET("/company/:companyId", h.CompanyReviews)

		candidate := reviews.Group("", middleware.AuthMiddleware(h.userRepo))
		{
			candidate.POST("",
				middleware.RequirePermission("reviews:create"), h.Create)
			candidate.GET("/my",
				middleware.RequirePermission("reviews:read:own"), h.MyReviews)
			candidate.GET("/eligibility/:companyId",
				middleware.RequirePermission("reviews:create"), h.Eligibility)
		}
	}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, review)
}

func (h *ReviewHandler) CompanyReviews(c *gin.Context) {
	resp, err := h.reviewService.GetCompanyReviews(c.Param("companyId"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ReviewHandler) Eligibility(c *gin.Context) {
	eligibility, err := h.reviewService.Eligibility(middleware.GetUserID(c), c.Param("companyId"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, eligibility)
}

func (h *ReviewHandler) MyReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetMyReviews(middleware.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, reviews)
}
