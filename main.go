// @title BarPrep Backend API
// @version 1.0
// @description Backend server for the bar exam preparation platform.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"barprep_backend/internal/app"
	"barprep_backend/internal/config"
	"barprep_backend/pkg/configwatcher"
	"barprep_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		if reloaded, ok := newCfg.(*config.Config); ok {
			*cfg = *reloaded
			logger.Log.Info("Configuration reloaded")
		}
	})

	application.Run()
}
