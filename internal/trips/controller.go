package trips

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"tourly/internal/catalog"
	"tourly/internal/pricing"
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

func language(ctx *gin.Context) catalog.Language {
	return catalog.ParseLanguage(ctx.Query("lang"))
}

func tripID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid trip ID", nil, nil)
		return 0, false
	}
	return id, true
}

func respondPricingError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrTripNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Trip not found", nil, nil)
	case errors.Is(err, pricing.ErrVIPExclusive):
		response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, pricing.ErrUnknownPackage),
		errors.Is(err, pricing.ErrUnknownAddOn),
		errors.Is(err, pricing.ErrDuplicateAddOn),
		errors.Is(err, pricing.ErrInvalidParticipants),
		errors.Is(err, pricing.ErrInvalidTourType):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking selection", nil, err.Error())
	default:
		_ = ctx.Error(err)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to process trip request", nil, nil)
	}
}

// ListTrips godoc
// @Summary      List trips
// @Tags         trips
// @Produce      json
// @Param        lang  query     string  false  "en or ar"
// @Success      200   {object}  response.StandardApiResponse{data=[]catalog.TripSummary}
// @Router       /trips [get]
func (c *Controller) ListTrips(ctx *gin.Context) {
	list, err := c.service.List(ctx.Request.Context(), language(ctx))
	if err != nil {
		respondPricingError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Trips retrieved successfully", list, nil)
}

// GetTrip godoc
// @Summary      Get a trip
// @Tags         trips
// @Produce      json
// @Param        id    path      int     true   "Trip id"
// @Param        lang  query     string  false  "en or ar"
// @Success      200   {object}  response.StandardApiResponse{data=catalog.Trip}
// @Failure      404   {object}  response.StandardApiResponse
// @Router       /trips/{id} [get]
func (c *Controller) GetTrip(ctx *gin.Context) {
	id, ok := tripID(ctx)
	if !ok {
		return
	}
	trip, err := c.service.Get(language(ctx), id)
	if err != nil {
		respondPricingError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Trip retrieved successfully", trip, nil)
}

// GetPackages godoc
// @Summary      Pricing tiers for a tour type
// @Tags         trips
// @Produce      json
// @Param        id        path      int     true   "Trip id"
// @Param        tourType  query     string  false  "private or group"
// @Param        lang      query     string  false  "en or ar"
// @Success      200       {object}  response.StandardApiResponse{data=PackagesResponse}
// @Router       /trips/{id}/packages [get]
func (c *Controller) GetPackages(ctx *gin.Context) {
	id, ok := tripID(ctx)
	if !ok {
		return
	}
	resp, err := c.service.Packages(language(ctx), id, catalog.TourType(ctx.Query("tourType")))
	if err != nil {
		respondPricingError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Packages retrieved successfully", resp, nil)
}

// QuotePrice godoc
// @Summary      Price a booking selection
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        id     path      int           true   "Trip id"
// @Param        lang   query     string        false  "en or ar"
// @Param        draft  body      QuoteRequest  true   "Selection"
// @Success      200    {object}  response.StandardApiResponse{data=QuoteResponse}
// @Failure      400,404  {object}  response.StandardApiResponse
// @Router       /trips/{id}/quote [post]
func (c *Controller) QuotePrice(ctx *gin.Context) {
	id, ok := tripID(ctx)
	if !ok {
		return
	}

	var req QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resp, err := c.service.Quote(language(ctx), id, req)
	if err != nil {
		respondPricingError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Price calculated", resp, nil)
}

// ToggleAddOn godoc
// @Summary      Toggle an add-on in a selection
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        id      path      int                 true   "Trip id"
// @Param        lang    query     string              false  "en or ar"
// @Param        toggle  body      ToggleAddOnRequest  true   "Current selection and clicked add-on"
// @Success      200     {object}  response.StandardApiResponse{data=ToggleAddOnResponse}
// @Failure      400,404,409  {object}  response.StandardApiResponse
// @Router       /trips/{id}/addons/toggle [post]
func (c *Controller) ToggleAddOn(ctx *gin.Context) {
	id, ok := tripID(ctx)
	if !ok {
		return
	}

	var req ToggleAddOnRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, response.ValidationErrors(err))
		return
	}

	addOns, err := c.service.ToggleAddOn(language(ctx), id, req.Selected, req.AddOn)
	if err != nil {
		respondPricingError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Selection updated", ToggleAddOnResponse{AddOns: addOns}, nil)
}
