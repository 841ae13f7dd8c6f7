package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"defense-management-system/internal/global/response"
)

const (
	TokenHeader = "x-auth-token"
	tokenKey    = "token"
)

// Token 只检查 x-auth-token 是否存在，令牌本身不做校验
func Token() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(TokenHeader))
		if token == "" {
			response.Fail(c, response.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Set(tokenKey, token)
		c.Next()
	}
}

// GetToken 取出 Token 中间件放入的令牌
func GetToken(c *gin.Context) (string, bool) {
	token := c.GetString(tokenKey)
	return token, token != ""
}
