package routes

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"task-store/app/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, taskController *controllers.TaskController, log *slog.Logger) {
	router.Use(RequestID, AccessLog(log))

	router.HandleFunc("/health", health).Methods(http.MethodGet)
	handle(router, "/tasks", taskController.GetTasks, http.MethodGet)
	handle(router, "/tasks", taskController.CreateTask, http.MethodPost)
	handle(router, "/tasks/{taskID}", taskController.GetTaskByID, http.MethodGet)
	handle(router, "/tasks/{taskID}", taskController.UpdateTask, http.MethodPut)
	handle(router, "/tasks/{taskID}", taskController.DeleteTask, http.MethodDelete)
}

// handle registers path both with and without a trailing slash.
func handle(router *mux.Router, path string, h http.HandlerFunc, method string) {
	router.HandleFunc(path, h).Methods(method)
	router.HandleFunc(path+"/", h).Methods(method)
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
