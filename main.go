package main

import (
	"context"
	"log"

	"plantnet/config"
	_ "plantnet/docs"
	"plantnet/models"
	"plantnet/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx := context.Background()

	client, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer config.CloseDB(client)

	cache := models.InitRedis(ctx, cfg)
	defer models.CloseRedis(cache)

	svc := routes.NewServices(cfg, client.Database(cfg.DBName), cache)
	router := routes.NewEngine(cfg, svc)

	port := ":" + cfg.Port
	log.Printf("plantNet is running on port %s", cfg.Port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
