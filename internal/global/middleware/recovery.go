package middleware

import (
	"github.com/gin-gonic/gin"

	"defense-management-system/internal/global/response"
)

// Recovery panic 统一转成 500 信封
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer response.Recovery(c)
		c.Next()
	}
}
