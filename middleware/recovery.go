package middleware

import (
	"ClinicDesk/util"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
* Turn a panic into a 500 with the generic message
* The panic value is logged, never sent to the client
 */
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("Recovered from panic",
					zap.String("panic", fmt.Sprint(rec)),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("requestId", c.GetString(RequestIDKey)),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, util.MessageResponse(util.SERVER_ERROR))
			}
		}()
		c.Next()
	}
}
