package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/common"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/i18n"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/metrics"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/models"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/monitor"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/series"
)

// row window handed to the narrative builder, about a day of
// five-minute uploads
const narrativeRowLimit = 288

type RegisterRequest struct {
	Name string `json:"name"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Name": z.String().Required(),
})

func (rs *RestfulServer) RegisterDevice(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Mon.Reading.RegisterDevice(deviceID, req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

// ReadingRequest accepts the loose upload format devices actually
// send: timestamp may be RFC3339, epoch seconds or epoch millis, and
// any subset of signal values may be present.
type ReadingRequest struct {
	Timestamp   any      `json:"timestamp"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Pressure    *float64 `json:"pressure"`
	Light       *float64 `json:"light"`
}

func (rs *RestfulServer) PostReading(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.ObserveReading(false)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeMs, ok := series.EpochMillis(req.Timestamp)
	if !ok {
		metrics.ObserveReading(false)
		c.JSON(http.StatusBadRequest, gin.H{"error": "unresolvable timestamp"})
		return
	}

	if req.Temperature == nil && req.Humidity == nil && req.Pressure == nil && req.Light == nil {
		metrics.ObserveReading(false)
		c.JSON(http.StatusBadRequest, gin.H{"error": "no signal values"})
		return
	}

	err := rs.Mon.Reading.StoreReading(deviceID, &models.Reading{
		Timestamp:   time.UnixMilli(timeMs).UTC(),
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		Pressure:    req.Pressure,
		Light:       req.Light,
	})
	if err != nil {
		metrics.ObserveReading(false)
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	metrics.ObserveReading(true)
	c.Status(http.StatusOK)
}

// ReadingResponse is the wire shape of one stored row.
type ReadingResponse struct {
	Timestamp   int64    `json:"timestamp"`
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	Pressure    *float64 `json:"pressure,omitempty"`
	Light       *float64 `json:"light,omitempty"`
}

func (rs *RestfulServer) GetReadings(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(narrativeRowLimit)))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	_, rows, err := rs.Mon.Reading.DeviceRows(deviceID, limit)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
		return
	}

	c.JSON(http.StatusOK, common.Mapper(rows, func(r models.Reading) ReadingResponse {
		return ReadingResponse{
			Timestamp:   r.Timestamp.UnixMilli(),
			Temperature: r.Temperature,
			Humidity:    r.Humidity,
			Pressure:    r.Pressure,
			Light:       r.Light,
		}
	}))
}

func (rs *RestfulServer) GetNarrative(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	mode := monitor.ViewMode(c.DefaultQuery("mode", string(monitor.ViewLive)))
	switch mode {
	case monitor.ViewLive, monitor.ViewDay, monitor.ViewRange:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown mode"})
		return
	}

	name, rows, err := rs.Mon.Reading.DeviceRows(deviceID, narrativeRowLimit)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
		return
	}
	if name == "" {
		name = deviceID
	}

	fromMs, _ := strconv.ParseInt(c.Query("from"), 10, 64)
	toMs, _ := strconv.ParseInt(c.Query("to"), 10, 64)

	result := rs.Mon.Narrative.Summarize(monitor.NarrativeRequest{
		DeviceName: name,
		Rows:       rows,
		Mode:       mode,
		NowMs:      time.Now().UnixMilli(),
		FromMs:     fromMs,
		ToMs:       toMs,
		Lang:       i18n.Lang(c.DefaultQuery("lang", string(i18n.LangAuto))),
	})

	c.JSON(http.StatusOK, result)
}

func (rs *RestfulServer) GetNotification(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Poller.Last())
}

type AckRequest struct {
	EventKey string `json:"eventKey"`
}

var ackRequestSchema = z.Struct(z.Shape{
	"EventKey": z.String().Required(),
})

func (rs *RestfulServer) PostAck(c *gin.Context) {
	var req AckRequest
	if err := ackRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	result, err := rs.Poller.Acknowledge(req.EventKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
