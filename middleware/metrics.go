package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type RequestRecorder interface {
	IncRequests()
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

/*
* Count the request before the handler runs so /metrics includes itself
* Record method, status and latency once it has finished
 */
func CountRequests(recorder RequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		recorder.IncRequests()
		start := time.Now()
		c.Next()
		recorder.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
