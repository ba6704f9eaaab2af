// internal/wire/wire.go
package wire

import (
	"airline-reservation/internal/adaptor"
	"airline-reservation/internal/data/repository"
	"airline-reservation/internal/usecase"
	"airline-reservation/pkg/utils"

	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Menu *adaptor.Handler
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Menu: handler,
	}
}
