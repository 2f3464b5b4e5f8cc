package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/pkg"

	"github.com/gin-gonic/gin"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid admin token", http.StatusUnauthorized)

// AdminAuth gates the admin surface behind a static bearer token read from
// ADMIN_API_TOKEN. An unset token locks the admin surface entirely rather
// than leaving it open.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := os.Getenv("ADMIN_API_TOKEN")
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		header := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Next()
	}
}
