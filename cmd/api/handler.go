package api

import (
	"github.com/gin-gonic/gin"

	authDelivery "pracsphere-backend/internal/auth/delivery"
	authUsecase "pracsphere-backend/internal/auth/usecase"
	taskDelivery "pracsphere-backend/internal/task/delivery"
	taskUsecase "pracsphere-backend/internal/task/usecase"
	"pracsphere-backend/pkg/config"
)

// Handler owns the gin engine and the wired use cases.
type Handler struct {
	engine *gin.Engine
}

// NewHandler builds the HTTP layer on top of the use cases.
func NewHandler(authUc authUsecase.AuthUsecase, taskUc taskUsecase.TaskUsecase, cfg *config.Config) *Handler {
	engine := gin.Default()

	authHandler := authDelivery.NewAuthHandler(authUc, cfg)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)

	SetupRoutes(engine, authUc, authHandler, taskHandler)

	return &Handler{engine: engine}
}

// Engine exposes the underlying gin engine, used by tests.
func (h *Handler) Engine() *gin.Engine {
	return h.engine
}

// Start runs the HTTP server on the given address.
func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}
