package handlers

import (
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	BaseHandler
	companyService services.CompanyService
	userRepo       repositories.UserRepository
}

func NewCompanyHandler(base BaseHandler, companyService services.CompanyService, userRepo repositories.UserRepository) *CompanyHandler {
	return &CompanyHandler{BaseHandler: base, companyService: companyService, userRepo: userRepo}
}

func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	{
		companies.GET("", h.List)
		companies.GET("/:id", h.Get)
	}
}

func (h *CompanyHandler) List(c *gin.Context) {
	var query dto.CompanyListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	companies, pagination, err := h.companyService.List(&query)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Paginated(c, companies, pagination)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	resp, err := h.companyService.GetDetail(c.Param("id"), optionalUserID(c, h.userRepo))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}
