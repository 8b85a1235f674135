package controllers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"candidatesync/backend/config"
	"candidatesync/backend/pipeline"
)

// ImportLeads creates one CRM lead per spreadsheet row. Accepts an
// uploaded workbook in multipart field "file"; without one it falls
// back to the configured local spreadsheet.
func ImportLeads(imp *pipeline.Importer, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := cfg.ImportFile
		if file, header, err := c.Request.FormFile("file"); err == nil {
			defer file.Close()
			if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".xlsx" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type; use .xlsx"})
				return
			}
			tmp, err := os.CreateTemp("", "import-*.xlsx")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stage upload"})
				return
			}
			defer os.Remove(tmp.Name())
			if _, err := io.Copy(tmp, file); err != nil {
				tmp.Close()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stage upload"})
				return
			}
			tmp.Close()
			path = tmp.Name()
		}

		res, err := imp.Run(c.Request.Context(), path)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "result": res})
	}
}
