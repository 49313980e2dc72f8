package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/AljayDinoy69/bohol/pkg/common"
	"github.com/AljayDinoy69/bohol/pkg/signalmap"
)

type RestfulServer struct {
	Server           *gin.Engine
	SignalMap        *signalmap.SignalMap
	RateLimiterStore *signalmap.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientKey string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientKey, rate.Limit(clientRate), clientBurst)
}

// RequestLog tags every request with a uuid and logs the outcome.
func (rs *RestfulServer) RequestLog(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Set("request_id", requestID)
	c.Writer.Header().Set("X-Request-ID", requestID)

	start := time.Now()
	c.Next()

	common.GetLoggerWith(common.LoggerNameRestfulServer).Info("Request handled",
		zap.String("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func (rs *RestfulServer) RateLimit(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.AbortWithStatus(http.StatusTooManyRequests)
		return
	}
	c.Next()
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(rs.RequestLog)

	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")
	api.PUT("/limiter", rs.PutLimiter)

	limited := api.Group("", rs.RateLimit)
	{
		limited.GET("/sites", rs.ListSites)
		limited.POST("/sites", rs.CreateSite)
		limited.PUT("/sites/:id", rs.UpdateSite)
		limited.DELETE("/sites/:id", rs.DeleteSite)

		limited.GET("/personnel", rs.ListPersonnel)
		limited.POST("/personnel", rs.CreatePersonnel)
		limited.PUT("/personnel/:id", rs.UpdatePersonnel)
		limited.DELETE("/personnel/:id", rs.DeletePersonnel)

		limited.GET("/activity-logs", rs.ListActivityLogs)
		limited.POST("/activity-logs", rs.CreateActivityLog)
		limited.DELETE("/activity-logs/:id", rs.DeleteActivityLog)

		limited.GET("/analytics", rs.GetAnalytics)

		limited.GET("/towns", rs.ListTowns)
		limited.POST("/towns", rs.CreateTown)
		limited.PUT("/towns/:id", rs.UpdateTown)
		limited.DELETE("/towns/:id", rs.DeleteTown)

		limited.GET("/config", rs.GetConfig)
		limited.PUT("/config", rs.UpdateAppConfig)
	}
}
