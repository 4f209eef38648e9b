package main

import (
	"foodiespot/config"
	"foodiespot/di"
	"foodiespot/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
