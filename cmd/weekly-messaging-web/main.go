package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/ksylvia16/weekly-messaging/internal/config"
	"github.com/ksylvia16/weekly-messaging/internal/engine"
	"github.com/ksylvia16/weekly-messaging/internal/web"
	"github.com/ksylvia16/weekly-messaging/pkg/logger"
)

var Version = "dev"

func main() {
	log, err := logger.New(getEnv("WM_LOG_FORMAT", "json"), getEnv("WM_LOG_LEVEL", "info"))
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("weekly-messaging-web starting", zap.String("version", Version))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	addr := getEnv("WM_WEB_ADDR", ":8080")
	server := web.NewServer(engine.New(cfg, log))

	log.Info("starting web server", zap.String("addr", addr))
	if err := server.Run(addr); err != nil {
		log.Fatal("web server error", zap.Error(err))
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
