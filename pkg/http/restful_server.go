package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/metrics"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/monitor"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/poller"
)

type RestfulServer struct {
	Server           *gin.Engine
	Mon              *monitor.Monitor
	Poller           *poller.Poller
	RateLimiterStore *monitor.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(metrics.Handler()))

	devices := rs.Server.Group("/devices/:device_id")
	{
		devices.POST("", rs.RegisterDevice)
		devices.POST("/readings", rs.PostReading)
		devices.GET("/readings", rs.GetReadings)
		devices.GET("/narrative", rs.GetNarrative)
		devices.POST("/limiter", rs.PostLimiter)
	}

	mon := rs.Server.Group("/monitor")
	{
		mon.GET("/notification", rs.GetNotification)
		mon.POST("/ack", rs.PostAck)
	}
}
