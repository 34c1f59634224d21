package trips

import "github.com/gin-gonic/gin"

func SetupTripRoutes(router *gin.RouterGroup, controller *Controller) {
	trips := router.Group("/trips")
	{
		trips.GET("", controller.ListTrips)                      // GET /api/trips?lang=
		trips.GET("/:id", controller.GetTrip)                    // GET /api/trips/:id
		trips.GET("/:id/packages", controller.GetPackages)       // GET /api/trips/:id/packages?tourType=
		trips.POST("/:id/quote", controller.QuotePrice)          // POST /api/trips/:id/quote
		trips.POST("/:id/addons/toggle", controller.ToggleAddOn) // POST /api/trips/:id/addons/toggle
	}
}
