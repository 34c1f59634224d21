package admin

import "github.com/gin-gonic/gin"

// SetupAdminRoutes registers the dashboard reads. admin must already carry the
// auth middleware.
func SetupAdminRoutes(admin *gin.RouterGroup, controller *Controller) {
	admin.GET("/bookings", controller.ListBookings)              // GET /api/admin/bookings
	admin.GET("/bookings/export.pdf", controller.ExportBookings) // GET /api/admin/bookings/export.pdf
	admin.GET("/contacts", controller.ListContacts)              // GET /api/admin/contacts
	admin.GET("/stats", controller.GetStats)                     // GET /api/admin/stats
}
