package main

import (
	"log"

	api "pracsphere-backend/cmd/api"
	authdomain "pracsphere-backend/internal/auth/domain"
	authRepo "pracsphere-backend/internal/auth/repository"
	authUsecase "pracsphere-backend/internal/auth/usecase"
	taskdomain "pracsphere-backend/internal/task/domain"
	taskRepo "pracsphere-backend/internal/task/repository"
	taskUsecase "pracsphere-backend/internal/task/usecase"
	"pracsphere-backend/pkg/config"
	"pracsphere-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize use cases
	authUc := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, taskUc, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
