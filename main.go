package main

import (
	"context"
	"time"

	"partnerapi/config"
	"partnerapi/database"
	"partnerapi/handlers"
	"partnerapi/routes"
	"partnerapi/services"
	"partnerapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// 載入設定（.env + 環境變數）
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	setupLogger(cfg.Server)

	// 初始化 JWTSecret
	utils.InitJWTSecret(cfg.Auth.JWTSecret)

	// 初始化資料庫
	if err := database.InitDB(cfg.Database, cfg.Server.IsRelease()); err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// 執行資料庫遷移
	if err := database.Migrate(database.DB); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	spotRepo := database.NewSpotRepository(database.DB)
	eventRepo := database.NewEventRepository(database.DB)

	authService, err := services.NewAuthService(cfg.Auth.APIKey, cfg.Auth.TokenTTL)
	if err != nil {
		logrus.Fatalf("Failed to initialize auth: %v", err)
	}
	spotsService := services.NewSpotsService(spotRepo)
	eventsService := services.NewEventsService(eventRepo)
	occupancyService := services.NewOccupancyService(spotRepo)

	gin.SetMode(cfg.Server.Mode)
	logrus.Infof("Gin mode set to %s", cfg.Server.Mode)

	r, err := routes.NewRouter(routes.Handlers{
		Auth:   handlers.NewAuthHandler(authService),
		Events: handlers.NewEventHandler(eventsService),
		Spots:  handlers.NewSpotHandler(spotsService),
	})
	if err != nil {
		logrus.Fatalf("Failed to build router: %v", err)
	}

	// 啟動定時任務
	c := cron.New()

	// 車位佔用統計
	_, err = c.AddFunc(cfg.Cron.OccupancyReport, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := occupancyService.Report(ctx); err != nil {
			logrus.Errorf("Failed to report spot occupancy: %v", err)
		}
	})
	if err != nil {
		logrus.Fatalf("Failed to schedule occupancy report cron job: %v", err)
	}

	c.Start()
	defer c.Stop()
	logrus.Info("Cron jobs started")

	// 啟動伺服器
	logrus.Infof("Starting server on %s", cfg.Server.Addr())
	if err := r.Run(cfg.Server.Addr()); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

// setupLogger 生產環境輸出 JSON，其餘輸出文字
func setupLogger(server config.ServerConfig) {
	if server.IsRelease() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.DebugLevel)
}
