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

	"github.com/AljayDinoy69/bohol/pkg/common"
	"github.com/AljayDinoy69/bohol/pkg/db"
	boholHttp "github.com/AljayDinoy69/bohol/pkg/http"
	"github.com/AljayDinoy69/bohol/pkg/signalmap"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	boholDbType := os.Getenv(common.EnvKeyBoholDBType)
	switch boholDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown BOHOL_DB_TYPE: " + boholDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyBoholHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyBoholDefaultRate), 64); err != nil {
		log.Fatal("Invalid BOHOL_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyBoholDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid BOHOL_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	signalMapCore := signalmap.SignalMap{
		Db:        *dbInstance,
		AppConfig: signalmap.NewAppConfigStore(),
	}
	signalMapCore.WithServices(signalmap.ServiceOpts{
		Site:      signalMapCore.GetISite(),
		Personnel: signalMapCore.GetIPersonnel(),
		Activity:  signalMapCore.GetIActivity(),
		Analytics: signalMapCore.GetIAnalytics(),
		Town:      signalMapCore.GetITown(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &boholHttp.RestfulServer{
		Server:           gin.Default(),
		SignalMap:        &signalMapCore,
		RateLimiterStore: signalmap.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
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
