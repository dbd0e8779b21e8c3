package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/common"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/config"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/db"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/monitor"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/monitor/mocks"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/poller"
	_ "github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/testing"
)

func setupTestServer(t *testing.T) *RestfulServer {
	t.Helper()
	common.SetTestLoggerNop()
	gin.SetMode(gin.TestMode)

	dbInstance := db.GetInstance(db.UseMemorySqliteDialector())
	mon := &monitor.Monitor{Db: *dbInstance}
	mon.WithServices(monitor.ServiceOpts{
		Engine:    mon.GetIEngine(),
		Narrative: mon.GetINarrative(),
		Reading:   mon.GetIReading(),
	})

	rs := &RestfulServer{
		Server:           gin.New(),
		Mon:              mon,
		Poller:           poller.New(mon, config.Default()),
		RateLimiterStore: monitor.NewRateLimiterStore(rate.Limit(100), 100),
	}
	rs.Setup()
	return rs
}

func doRequest(rs *RestfulServer, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func registerTestDevice(t *testing.T, rs *RestfulServer, name string) string {
	t.Helper()
	deviceID := uuid.NewString()
	w := doRequest(rs, "POST", "/devices/"+deviceID, fmt.Sprintf(`{"name": %q}`, name))
	require.Equal(t, http.StatusOK, w.Code)
	return deviceID
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer(t)

	w := doRequest(rs, "GET", "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestRegisterDeviceRejectsMissingName(t *testing.T) {
	rs := setupTestServer(t)

	w := doRequest(rs, "POST", "/devices/"+uuid.NewString(), `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostReadingAndNarrativeFlow(t *testing.T) {
	rs := setupTestServer(t)
	deviceID := registerTestDevice(t, rs, "greenhouse")

	now := time.Now().UnixMilli()
	for i, tMs := range []int64{now - 120_000, now - 60_000, now} {
		body := fmt.Sprintf(`{"timestamp": %d, "temperature": 21.5, "humidity": %d}`, tMs, 40+i)
		w := doRequest(rs, "POST", "/devices/"+deviceID+"/readings", body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(rs, "GET", "/devices/"+deviceID+"/narrative?mode=live&lang=en", "")
	require.Equal(t, http.StatusOK, w.Code)

	var result monitor.NarrativeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Live view", result.Title)
	assert.Equal(t, monitor.BadgeOK, result.Badge)
	assert.Equal(t, "Temperature is steady around 21.5°C.", result.Message)
}

func TestGetReadings(t *testing.T) {
	rs := setupTestServer(t)
	deviceID := registerTestDevice(t, rs, "greenhouse")

	now := time.Now().UnixMilli()
	for _, tMs := range []int64{now - 120_000, now - 60_000, now} {
		body := fmt.Sprintf(`{"timestamp": %d, "temperature": 21.5}`, tMs)
		w := doRequest(rs, "POST", "/devices/"+deviceID+"/readings", body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(rs, "GET", "/devices/"+deviceID+"/readings?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var rows []ReadingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, now-60_000, rows[0].Timestamp)
	assert.Equal(t, now, rows[1].Timestamp)
	require.NotNil(t, rows[1].Temperature)
	assert.Equal(t, 21.5, *rows[1].Temperature)

	w = doRequest(rs, "GET", "/devices/"+deviceID+"/readings?limit=zero", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(rs, "GET", "/devices/"+uuid.NewString()+"/readings", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostReadingAcceptsStringTimestamp(t *testing.T) {
	rs := setupTestServer(t)
	deviceID := registerTestDevice(t, rs, "office")

	body := fmt.Sprintf(`{"timestamp": %q, "pressure": 1013.2}`,
		time.Now().UTC().Format(time.RFC3339))
	w := doRequest(rs, "POST", "/devices/"+deviceID+"/readings", body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPostReadingValidation(t *testing.T) {
	rs := setupTestServer(t)
	deviceID := registerTestDevice(t, rs, "office")

	cases := []struct {
		name string
		body string
		want string
	}{
		{"bad timestamp", `{"timestamp": "yesterday", "temperature": 21.0}`, "unresolvable timestamp"},
		{"missing timestamp", `{"temperature": 21.0}`, "unresolvable timestamp"},
		{"no values", fmt.Sprintf(`{"timestamp": %d}`, time.Now().UnixMilli()), "no signal values"},
		{"not json", `timestamp=now`, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := doRequest(rs, "POST", "/devices/"+deviceID+"/readings", c.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			if c.want != "" {
				assert.Contains(t, w.Body.String(), c.want)
			}
		})
	}
}

func TestPostReadingUnknownDeviceFails(t *testing.T) {
	rs := setupTestServer(t)

	body := fmt.Sprintf(`{"timestamp": %d, "temperature": 21.0}`, time.Now().UnixMilli())
	w := doRequest(rs, "POST", "/devices/"+uuid.NewString()+"/readings", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetNarrativeUnknownDevice(t *testing.T) {
	rs := setupTestServer(t)

	w := doRequest(rs, "GET", "/devices/"+uuid.NewString()+"/narrative", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetNarrativeRejectsUnknownMode(t *testing.T) {
	rs := setupTestServer(t)
	deviceID := registerTestDevice(t, rs, "office")

	w := doRequest(rs, "GET", "/devices/"+deviceID+"/narrative?mode=weekly", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown mode")
}

func TestNotificationAndAck(t *testing.T) {
	common.SetTestLoggerNop()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	reading := mocks.NewMockIReading(ctrl)

	mon := &monitor.Monitor{}
	mon.WithServices(monitor.ServiceOpts{
		Engine:    mon.GetIEngine(),
		Narrative: mon.GetINarrative(),
		Reading:   reading,
	})
	rs := &RestfulServer{
		Server: gin.New(),
		Mon:    mon,
		Poller: poller.New(mon, config.Default()),
	}
	rs.Setup()

	// one device that has never reported; its offline condition is the
	// only candidate in every cycle
	reading.EXPECT().
		Snapshots(gomock.Any()).
		Return([]monitor.DeviceSnapshot{{DeviceID: "dev-quiet", Name: "cellar"}}, nil).
		Times(2)

	result, err := rs.Poller.RunCycle()
	require.NoError(t, err)
	require.NotNil(t, result.Modal)

	w := doRequest(rs, "GET", "/monitor/notification", "")
	require.Equal(t, http.StatusOK, w.Code)

	var last monitor.EvalResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &last))
	require.NotNil(t, last.Modal)
	assert.Equal(t, monitor.OfflineKey("dev-quiet"), last.Modal.EventKey)

	w = doRequest(rs, "POST", "/monitor/ack", fmt.Sprintf(`{"eventKey": %q}`, last.Modal.EventKey))
	require.Equal(t, http.StatusOK, w.Code)

	var acked monitor.EvalResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &acked))
	assert.Nil(t, acked.Modal)
	assert.Nil(t, acked.Toast)
}

func TestPostAckRejectsMissingEventKey(t *testing.T) {
	rs := setupTestServer(t)

	w := doRequest(rs, "POST", "/monitor/ack", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLimiterThrottlesUploads(t *testing.T) {
	rs := setupTestServer(t)
	deviceID := registerTestDevice(t, rs, "office")

	w := doRequest(rs, "POST", "/devices/"+deviceID+"/limiter", `{"rate": 1, "burst": 1}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := fmt.Sprintf(`{"timestamp": %d, "light": 250}`, time.Now().UnixMilli())
	w = doRequest(rs, "POST", "/devices/"+deviceID+"/readings", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(rs, "POST", "/devices/"+deviceID+"/readings", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
