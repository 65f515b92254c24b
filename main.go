// @title QuizDeck API
// @version 1.0
// @description Backend for the QuizDeck single-user quiz application.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"
	"path/filepath"

	"quizdeck_backend/internal/app"
	"quizdeck_backend/internal/config"
	"quizdeck_backend/pkg/configwatcher"
	"quizdeck_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	watch := flag.Bool("watch-config", false, "reload config on file changes")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		go configwatcher.WatchConfig(filepath.Join(*configDir, "config.yaml"), application.ReloadConfig)
	}

	application.Run()
}
