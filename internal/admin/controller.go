package admin

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourly/internal/dashboard"
	"tourly/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListBookings godoc
// @Summary      List bookings
// @Description  Newest first unless a sort is given. Every filter is optional; "all" disables it.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        search         query     string  false  "Name, email, trip or phone contains"
// @Param        tripType       query     string  false  "Exact trip title"
// @Param        status         query     string  false  "pending, confirmed or cancelled"
// @Param        package        query     string  false  "Exact package name"
// @Param        dateFrom       query     string  false  "YYYY-MM-DD inclusive"
// @Param        dateTo         query     string  false  "YYYY-MM-DD inclusive"
// @Param        participants   query     int     false  "Exact participant count"
// @Param        language       query     string  false  "en or ar"
// @Param        sortField      query     string  false  "createdAt, date, name or status"
// @Param        sortDirection  query     string  false  "asc or desc"
// @Success      200  {object}  response.StandardApiResponse
// @Failure      401  {object}  response.StandardApiResponse
// @Failure      403  {object}  response.StandardApiResponse
// @Router       /admin/bookings [get]
func (c *Controller) ListBookings(ctx *gin.Context) {
	filter, sort := dashboard.ParseQuery(ctx.Query)

	list, err := c.service.ListBookings(ctx.Request.Context(), filter, sort)
	if err != nil {
		_ = ctx.Error(err)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch bookings", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", list, nil)
}

// ListContacts godoc
// @Summary      List contact messages
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.StandardApiResponse
// @Failure      401  {object}  response.StandardApiResponse
// @Router       /admin/contacts [get]
func (c *Controller) ListContacts(ctx *gin.Context) {
	list, err := c.service.ListContacts(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch contacts", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Contacts retrieved successfully", list, nil)
}

// GetStats godoc
// @Summary      Dashboard aggregates
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.StandardApiResponse{data=dashboard.Summary}
// @Router       /admin/stats [get]
func (c *Controller) GetStats(ctx *gin.Context) {
	summary, err := c.service.Stats(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to compute stats", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Stats retrieved successfully", summary, nil)
}

// ExportBookings godoc
// @Summary      Export bookings as PDF
// @Description  Accepts the same filter and sort parameters as the list endpoint
// @Tags         admin
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}    file
// @Failure      401  {object}  response.StandardApiResponse
// @Router       /admin/bookings/export.pdf [get]
func (c *Controller) ExportBookings(ctx *gin.Context) {
	filter, sort := dashboard.ParseQuery(ctx.Query)

	data, filename, err := c.service.ExportBookingsPDF(ctx.Request.Context(), filter, sort)
	if err != nil {
		_ = ctx.Error(err)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to export bookings", nil, nil)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, "application/pdf", data)
}
