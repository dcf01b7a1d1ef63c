package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/glowdesk/salon-scheduler/internal/config"
	dbpkg "github.com/glowdesk/salon-scheduler/internal/db"
	"github.com/glowdesk/salon-scheduler/internal/logging"
	"github.com/glowdesk/salon-scheduler/internal/routes"
)

func main() {

	// .env é opcional; em produção tudo vem do ambiente.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.Init(cfg)
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)
	rdb := dbpkg.NewRedis(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	zap.L().Info("server listening", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zap.L().Fatal("failed to start server", zap.Error(err))
	}
}
