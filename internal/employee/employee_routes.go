package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes memasang rute halaman HTML.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", h.List)
		employees.GET("/new", h.NewForm)
		employees.POST("", h.Create)
		employees.GET("/:id/edit", h.EditForm)
		employees.POST("/:id", h.Update)
		employees.POST("/:id/delete", h.Delete)
	}
}

// RegisterAPIRoutes memasang rute JSON untuk klien non-browser.
func RegisterAPIRoutes(r *gin.RouterGroup, h *APIHandler) {
	employees := r.Group("/employees")
	{
		employees.GET("", h.GetAll)
		employees.POST("", h.Create)
		employees.GET("/:id", h.GetById)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
	}
}
