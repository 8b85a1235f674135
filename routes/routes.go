package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"candidatesync/backend/config"
	"candidatesync/backend/controllers"
	"candidatesync/backend/pipeline"
)

func Register(r *gin.Engine, cfg config.Config, exp *pipeline.Exporter, imp *pipeline.Importer) {
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "candidate-sync"})
		})
		// Export one candidate by id: fetch, write xlsx, attach the file link
		api.POST("/export/:id", controllers.ExportCandidate(exp))
		// Bulk import: one lead per spreadsheet row
		api.POST("/import", controllers.ImportLeads(imp, cfg))
	}
}
