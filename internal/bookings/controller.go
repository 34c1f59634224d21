package bookings

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

// CreateBooking godoc
// @Summary      Submit a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      CreateBookingRequest  true  "Booking form"
// @Success      201      {object}  CreateBookingResponse
// @Failure      400      {object}  response.StandardApiResponse
// @Router       /bookings [post]
func (c *Controller) CreateBooking(ctx *gin.Context) {
	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Missing or invalid booking fields", nil, response.ValidationErrors(err))
		return
	}

	booking, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		_ = ctx.Error(err)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to save booking", nil, nil)
		return
	}

	ctx.JSON(http.StatusCreated, CreateBookingResponse{
		StandardApiResponse: response.StandardApiResponse{
			Success: true,
			Message: "Booking submitted successfully",
		},
		BookingID: booking.ID,
	})
}

// GetBooking godoc
// @Summary      Get one booking
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  response.StandardApiResponse{data=Booking}
// @Failure      404  {object}  response.StandardApiResponse
// @Router       /admin/bookings/{id} [get]
func (c *Controller) GetBooking(ctx *gin.Context) {
	booking, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
			return
		}
		_ = ctx.Error(err)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve booking", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

// UpdateStatus godoc
// @Summary      Confirm or cancel a pending booking
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string               true  "Booking id"
// @Param        status  body      UpdateStatusRequest  true  "New status"
// @Success      200     {object}  response.StandardApiResponse
// @Failure      400,404,409  {object}  response.StandardApiResponse
// @Router       /admin/bookings/{id}/status [put]
func (c *Controller) UpdateStatus(ctx *gin.Context) {
	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := c.service.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Status must be pending, confirmed or cancelled", nil, nil)
		case errors.Is(err, ErrBookingNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		case errors.Is(err, ErrInvalidTransition):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Only pending bookings can be confirmed or cancelled", nil, err.Error())
		default:
			_ = ctx.Error(err)
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update booking", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking status updated", booking, nil)
}

// DeleteBooking godoc
// @Summary      Delete a booking
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  response.StandardApiResponse
// @Failure      404  {object}  response.StandardApiResponse
// @Router       /admin/bookings/{id} [delete]
func (c *Controller) DeleteBooking(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
			return
		}
		_ = ctx.Error(err)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete booking", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking deleted", nil, nil)
}
