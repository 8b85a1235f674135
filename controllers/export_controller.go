package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"candidatesync/backend/errs"
	"candidatesync/backend/pipeline"
)

// ExportCandidate exports one candidate by lead id. File creation and
// link attachment are reported as two separate outcomes: a 200 response
// with link_attached=false means the file exists but no link was
// written to the CRM record.
func ExportCandidate(exp *pipeline.Exporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead id"})
			return
		}
		res, err := exp.Run(c.Request.Context(), id)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		out := gin.H{"file": res.FilePath, "link_attached": res.LinkAttached}
		if res.FieldID != 0 {
			out["field_id"] = res.FieldID
		}
		if res.AttachErr != nil {
			out["attach_error"] = res.AttachErr.Error()
		}
		c.JSON(http.StatusOK, out)
	}
}

// statusFor maps an error kind to the HTTP status reported to callers.
func statusFor(err error) int {
	switch errs.KindOf(err) {
	case errs.Data:
		return http.StatusNotFound
	case errs.Validation:
		return http.StatusBadRequest
	case errs.Decode:
		return http.StatusUnprocessableEntity
	case errs.Protocol:
		return http.StatusBadGateway
	case errs.Transport:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
