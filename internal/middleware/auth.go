package middleware

import (
	"net/http"
	"strings"
	"web3_journey_backend/internal/config"
	"web3_journey_backend/internal/repository"
	"web3_journey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验 Bearer Token，通过后把用户声明放进上下文
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			util.Error(c, http.StatusUnauthorized, "缺少认证信息")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			util.Error(c, http.StatusUnauthorized, "认证格式错误")
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(parts[1], cfg.JWT.Secret)
		if err != nil {
			util.Error(c, http.StatusUnauthorized, "认证已过期或无效")
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// OptionalAuth 带 token 就解析，不带也放行（游客接口共用的路由组）
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := util.ParseJWT(parts[1], cfg.JWT.Secret); err == nil {
					c.Set("user", claims)
				}
			}
		}
		c.Next()
	}
}

// ActivityMiddleware 异步刷新用户最近活跃时间，失败不影响请求
func ActivityMiddleware(userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		claims := util.GetUserFromContext(c)
		if claims == nil {
			return
		}
		go func(userID uint) {
			userRepo.UpdateLastSeen(userID)
		}(claims.UserID)
	}
}
