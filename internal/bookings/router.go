package bookings

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes registers the public booking form and the admin mutations.
// admin must already carry the auth middleware.
func SetupBookingRoutes(public *gin.RouterGroup, admin *gin.RouterGroup, controller *Controller) {
	public.POST("/bookings", controller.CreateBooking) // POST /api/bookings

	adminBookings := admin.Group("/bookings")
	{
		adminBookings.GET("/:id", controller.GetBooking)          // GET /api/admin/bookings/:id
		adminBookings.PUT("/:id/status", controller.UpdateStatus) // PUT /api/admin/bookings/:id/status
		adminBookings.DELETE("/:id", controller.DeleteBooking)    // DELETE /api/admin/bookings/:id
	}
}
