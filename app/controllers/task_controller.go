package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"task-store/app/models"
	"task-store/app/services"
	"unicode"

	"github.com/gorilla/mux"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes = 100 << 10

var errEmptyBody = errors.New("empty request body")

// TaskController handles HTTP requests for tasks.
type TaskController struct {
	Service *services.TaskService
	log     *slog.Logger
}

// NewTaskController creates a new TaskController.
func NewTaskController(service *services.TaskService, log *slog.Logger) *TaskController {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &TaskController{Service: service, log: log}
}

// GetTasks handles GET /tasks.
func (c *TaskController) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.Service.GetTasks(r.Context())
	if err != nil {
		c.writeServiceErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// CreateTask handles POST /tasks.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var in models.NewTask
	// An empty body carries no fields and fails validation below.
	if err := decodeBody(w, r, &in); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeErr(w, err)
		return
	}

	task, err := c.Service.CreateTask(r.Context(), in)
	if err != nil {
		c.writeServiceErr(w, r, err)
		return
	}
	c.log.Info("task created", "id", task.ID)
	writeJSON(w, http.StatusCreated, task)
}

// GetTaskByID handles GET /tasks/{taskID}.
func (c *TaskController) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	task, err := c.Service.GetTaskByID(r.Context(), taskID(r))
	if err != nil {
		c.writeServiceErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// UpdateTask handles PUT /tasks/{taskID}.
func (c *TaskController) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var upd models.TaskUpdate
	// An empty body is an update that changes nothing.
	if err := decodeBody(w, r, &upd); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeErr(w, err)
		return
	}

	task, err := c.Service.UpdateTask(r.Context(), taskID(r), upd)
	if err != nil {
		c.writeServiceErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{taskID}.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := taskID(r)
	if err := c.Service.DeleteTask(r.Context(), id); err != nil {
		c.writeServiceErr(w, r, err)
		return
	}
	c.log.Info("task deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// taskID reads the path ID. Unparseable IDs become 0, which no task ever holds.
func taskID(r *http.Request) int {
	return ParseLeadingInt(mux.Vars(r)["taskID"])
}

// ParseLeadingInt reads the integer at the start of s after leading whitespace
// and an optional sign, ignoring whatever follows: "1abc" and "1.0" are both 1.
// It returns 0 when s has no leading digits or the value overflows an int.
func ParseLeadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// decodeBody reads at most MaxBodyBytes and requires exactly one JSON value.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return errEmptyBody
	}
	return json.Unmarshal(data, v)
}

func writeDecodeErr(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeErr(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	writeErr(w, http.StatusBadRequest, "invalid request payload")
}

func (c *TaskController) writeServiceErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeErr(w, http.StatusBadRequest, services.ErrValidation.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		writeErr(w, http.StatusNotFound, services.ErrTaskNotFound.Error())
	default:
		// Unreachable while TaskService returns only the sentinels above.
		c.log.Error("task request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeErr(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
