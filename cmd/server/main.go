package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/sachin6736/crmproject-sub002/config"
	"github.com/sachin6736/crmproject-sub002/internal/routes"
	"github.com/sachin6736/crmproject-sub002/models"
)

func main() {
	config.LoadConfig()
	config.ConnectDB()
	config.ConnectRedis()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Lead{},
		&models.ImportantDate{},
		&models.Order{},
		&models.Vendor{},
	); err != nil {
		slog.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	r := gin.Default()
	routes.SetupRoutes(r)

	addr := ":" + config.AppConfig.Server.Port
	slog.Info("Starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
