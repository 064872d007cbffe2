package router

import (
	"net/url"

	"github.com/gigbook/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// URLMiddleware sets the public base URL of the API in the context
// so that handlers can build links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), url.String())
		c.Next()
	}
}
