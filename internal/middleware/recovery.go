package middleware

import (
	"aquamon-api/pkg/discord"
	pkgLog "aquamon-api/pkg/log"
	"aquamon-api/pkg/response"

	"github.com/gin-gonic/gin"
)

func Recovery(l pkgLog.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				l.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
