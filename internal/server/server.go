package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"tasklist-backend/internal/auth"
	"tasklist-backend/internal/database"
	"tasklist-backend/internal/service"
)

type Server struct {
	port         int
	authService  service.AuthService
	todoService  service.TodoService
	tokens       *auth.TokenManager
	db           database.Service
	secureCookie bool
}

func NewServer(authService service.AuthService, todoService service.TodoService, tokens *auth.TokenManager, dbService database.Service) *http.Server {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		fmt.Printf("Warning: Invalid PORT environment variable '%s'. Using default 8080. Error: %v", portStr, err)
		port = 8080
	}

	appServer := &Server{
		port:         port,
		authService:  authService,
		todoService:  todoService,
		tokens:       tokens,
		db:           dbService,
		secureCookie: os.Getenv("APP_ENV") == "production",
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", appServer.port),
		Handler:      appServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
