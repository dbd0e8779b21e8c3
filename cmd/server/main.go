package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/common"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/config"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/db"
	envHttp "github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/http"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/monitor"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/poller"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	envDbType := os.Getenv(common.EnvKeyEnvDBType)
	switch envDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown ENVDASH_DB_TYPE: " + envDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyEnvHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyEnvDefaultRate), 64); err != nil {
		log.Fatal("Invalid ENVDASH_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyEnvDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid ENVDASH_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	cfg, err := config.Load(os.Getenv(common.EnvKeyEnvConfigPath))
	if err != nil {
		log.Fatal("Failed to load monitor config: ", err)
	}

	mon := &monitor.Monitor{
		Db:     *dbInstance,
		Events: monitor.NewEventStore(),
	}
	mon.WithServices(monitor.ServiceOpts{
		Engine:    mon.GetIEngine(),
		Narrative: mon.GetINarrative(),
		Reading:   mon.GetIReading(),
	})

	p := poller.New(mon, cfg)
	p.Start()
	defer p.Stop()
	logger.Info("Monitor poller started",
		zap.Int64("interval_ms", cfg.Monitor.PollIntervalMs))

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &envHttp.RestfulServer{
		Server:           gin.Default(),
		Mon:              mon,
		Poller:           p,
		RateLimiterStore: monitor.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
