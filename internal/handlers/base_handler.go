package handlers

import (
	"net/http"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// SuccessResponse is the success half of the API envelope:
// {success:true, data?, message?, pagination?}.
type SuccessResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Message    string          `json:"message,omitempty"`
	Pagination *dto.Pagination `json:"pagination,omitempty"`
}

// BaseHandler is embedded by every handler and carries the shared helpers.
type BaseHandler struct {
	Validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{Validator: v}
}

// BindAndValidateJSON binds the body and validates it; on failure it writes
// the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	if err := h.Validator.Validate(obj); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(ve.Errors))
		} else {
			apperrors.HandleError(c, err)
		}
		return false
	}
	return true
}

func (h *BaseHandler) OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: message})
}

func (h *BaseHandler) Paginated(c *gin.Context, data interface{}, pagination *dto.Pagination) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data, Pagination: pagination})
}

func (h *BaseHandler) Error(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// optionalUserID resolves the caller from a bearer token when one is present
// on a public endpoint. Invalid or missing tokens yield the empty string.
func optionalUserID(c *gin.Context, userRepo repositories.UserRepository) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}

	claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return ""
	}

	user, err := userRepo.FindByID(claims.UserID)
	if err != nil || !user.IsActive {
		return ""
	}
	return user.ID
}
