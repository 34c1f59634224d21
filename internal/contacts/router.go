package contacts

import "github.com/gin-gonic/gin"

// SetupContactRoutes registers the public contact form and the admin delete.
// admin must already carry the auth middleware.
func SetupContactRoutes(public *gin.RouterGroup, admin *gin.RouterGroup, controller *Controller) {
	public.POST("/contact", controller.CreateContact) // POST /api/contact

	admin.DELETE("/contacts/:id", controller.DeleteContact) // DELETE /api/admin/contacts/:id
}
