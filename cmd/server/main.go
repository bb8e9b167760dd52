package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"drawphone/internal/game"
	"drawphone/internal/shared/configs"
	"drawphone/internal/shared/logger"
)

func main() {
	configs.Load()

	if configs.Envs.GIN_MODE == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger.SetDebug()
	}

	allowedOrigins := []string{}
	if configs.Envs.GIN_MODE == "release" {
		allowedOrigins = append(allowedOrigins, "https://"+configs.Envs.FRONTEND_ORIGIN)
		allowedOrigins = append(allowedOrigins, "https://www."+configs.Envs.FRONTEND_ORIGIN)
	} else {
		allowedOrigins = append(allowedOrigins, "http://"+configs.Envs.FRONTEND_ORIGIN)
	}

	r := gin.Default()

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type", "Origin"},
	}))

	if dir := configs.Envs.PUBLIC_DIR; dir != "" {
		if _, err := os.Stat(dir); err == nil {
			r.Static("/app", dir)
		}
	}

	hub := game.NewHub()
	registry := game.NewRegistry(hub, game.NewTickerCreator())
	stop := make(chan struct{})
	go registry.Run(stop)

	game.NewHandler(registry, hub).RegisterRoutes(r)

	addr := ":" + configs.Envs.PORT
	logger.Infof("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("couldn't start server: %v", err)
	}
}
