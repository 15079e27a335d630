package inspector

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/free5gc/f1ap/internal/logger"
	"github.com/free5gc/openapi/models"
)

const (
	HeaderRequestID = "X-Request-Id"
	ctxKeyLog       = "inspector.log"
)

// requestID reuses the caller's X-Request-Id or makes a new one, and stores
// a log entry carrying it for the handlers.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Header(HeaderRequestID, id)
		c.Set(ctxKeyLog, logger.InspectorLog.WithField(logger.FieldRequestID, id))
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		requestLog(c).WithFields(logrus.Fields{
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Infof("%s %s", c.Request.Method, c.Request.URL.Path)
	}
}

func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if p := recover(); p != nil {
				requestLog(c).Errorf("panic: %v", p)
				writeProblem(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
			}
		}()
		c.Next()
	}
}

func requestLog(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get(ctxKeyLog); ok {
		if log, ok := v.(*logrus.Entry); ok {
			return log
		}
	}
	return logger.InspectorLog
}

func writeProblem(c *gin.Context, status int, cause, detail string) {
	c.AbortWithStatusJSON(status, models.ProblemDetails{
		Title:  http.StatusText(status),
		Status: int32(status),
		Detail: detail,
		Cause:  cause,
	})
}
