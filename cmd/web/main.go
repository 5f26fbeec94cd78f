package main

import (
	"jobboard_backend/internal/app"
	"jobboard_backend/internal/logger"
)

func main() {
	application, err := app.New()
	if err != nil {
		logger.Fatal("failed to start application", "error", err)
	}

	if err := application.Run(); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
