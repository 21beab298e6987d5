package api

import (
	"context"
	"log"
	"net/http"
	"sync"

	"plantnet/config"
	"plantnet/models"
	"plantnet/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		ctx := context.Background()

		client, err := config.ConnectDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect database: %v", err)
		}
		cache := models.InitRedis(ctx, cfg)

		router = routes.NewEngine(cfg, routes.NewServices(cfg, client.Database(cfg.DBName), cache))
	})
}

// Handler is the serverless entry point; the engine is built on first use
// and the mongo client lives as long as the instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
