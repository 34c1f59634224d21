package contacts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"tourly/internal/shared/utils/response"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// CreateContact godoc
// @Summary      Send a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      CreateContactRequest  true  "Contact form"
// @Success      201      {object}  response.StandardApiResponse
// @Failure      400      {object}  response.StandardApiResponse
// @Router       /contact [post]
func (c *Controller) CreateContact(ctx *gin.Context) {
	var req CreateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Name, email and message are required", nil, response.ValidationErrors(err))
		return
	}

	if _, err := c.service.Create(ctx.Request.Context(), req); err != nil {
		_ = ctx.Error(err)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to send message", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Message received", nil, nil)
}

// DeleteContact godoc
// @Summary      Delete a contact message
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact id"
// @Success      200  {object}  response.StandardApiResponse
// @Failure      404  {object}  response.StandardApiResponse
// @Router       /admin/contacts/{id} [delete]
func (c *Controller) DeleteContact(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, ErrContactNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Contact not found", nil, nil)
			return
		}
		_ = ctx.Error(err)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete contact", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Contact deleted", nil, nil)
}
