package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/seanhu1010/vue3-element-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	dateLayout = "2006-01-02"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// firstOrNotFound maps a lookup failure to 404 for missing rows and 500
// otherwise.
func firstOrNotFound(c *gin.Context, err error, what string) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, what+" not found")
	} else {
		resp.ServerError(c, err)
	}
	return false
}

// absoluteUploadURL mirrors request.build_absolute_uri for stored files:
// the serialized form of an upload is a full URL on this host.
func absoluteUploadURL(c *gin.Context, stored string) string {
	if stored == "" {
		return ""
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/uploads/%s", scheme, c.Request.Host, stored)
}
