package app

import (
	"database/sql"
	"net/http"

	"go-empdir/internal/assets"
	"go-empdir/internal/config"
	"go-empdir/internal/employee"
	"go-empdir/internal/events"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	fetcher assets.Fetcher,
	publisher events.Publisher,
	cfg config.Config,
) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, publisher, cfg.DBTimeout)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, fetcher, cfg)
	employeeAPIHandler := employee.NewAPIHandler(employeeService)

	// --- Routes Registration ---
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/employees")
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	employee.RegisterRoutes(router, employeeHandler)

	api := router.Group("/api/v1")
	{
		employee.RegisterAPIRoutes(api, employeeAPIHandler)
	}
}
