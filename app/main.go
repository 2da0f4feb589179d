package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"task-store/app/config"
	"task-store/app/controllers"
	"task-store/app/routes"
	"task-store/app/services"

	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger := cfg.NewLogger(os.Stdout)

	// The service owns the task collection for the life of the process.
	taskService := services.NewTaskService()
	taskController := controllers.NewTaskController(taskService, logger)

	router := mux.NewRouter()
	routes.RegisterRoutes(router, taskController, logger)

	srv := &http.Server{Addr: cfg.Addr(), Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	idle := make(chan struct{})
	go func() {
		defer close(idle)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("server is running", "addr", "http://"+cfg.Addr())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	<-idle
	logger.Info("server stopped")
}
