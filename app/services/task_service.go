package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"task-store/app/models"
)

var (
	// ErrValidation is returned when a new task is missing a required field.
	ErrValidation = errors.New("title and description are required")

	// ErrTaskNotFound is returned when no task matches the given ID.
	ErrTaskNotFound = errors.New("task not found")
)

// TaskService owns the in-memory task collection for the lifetime of the process.
type TaskService struct {
	mu    sync.Mutex
	tasks []models.Task
}

// NewTaskService creates an empty TaskService.
func NewTaskService() *TaskService {
	return &TaskService{tasks: []models.Task{}}
}

// GetTasks returns a copy of every task in insertion order.
func (s *TaskService) GetTasks(ctx context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks, nil
}

// GetTaskByID retrieves the first task with the given ID.
func (s *TaskService) GetTaskByID(ctx context.Context, taskID int) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(taskID)
	if i == -1 {
		return nil, fmt.Errorf("get task %d: %w", taskID, ErrTaskNotFound)
	}
	task := s.tasks[i]
	return &task, nil
}

// CreateTask validates the payload and appends a new, uncompleted task.
//
// The ID is the collection length plus one, so an ID freed by a delete can be
// handed out again while another task still holds it.
func (s *TaskService) CreateTask(ctx context.Context, in models.NewTask) (*models.Task, error) {
	if in.Title == "" || in.Description == "" {
		return nil, fmt.Errorf("create task: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:          len(s.tasks) + 1,
		Title:       in.Title,
		Description: in.Description,
		Completed:   false,
	}
	s.tasks = append(s.tasks, task)
	return &task, nil
}

// UpdateTask applies the update in place and returns the resulting task.
// Empty title or description values are ignored; Completed applies whenever it is set.
func (s *TaskService) UpdateTask(ctx context.Context, taskID int, upd models.TaskUpdate) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(taskID)
	if i == -1 {
		return nil, fmt.Errorf("update task %d: %w", taskID, ErrTaskNotFound)
	}

	task := &s.tasks[i]
	if upd.Title != "" {
		task.Title = upd.Title
	}
	if upd.Description != "" {
		task.Description = upd.Description
	}
	if upd.Completed != nil {
		task.Completed = *upd.Completed
	}

	updated := *task
	return &updated, nil
}

// DeleteTask removes the first task with the given ID.
func (s *TaskService) DeleteTask(ctx context.Context, taskID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(taskID)
	if i == -1 {
		return fmt.Errorf("delete task %d: %w", taskID, ErrTaskNotFound)
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// indexOf must be called with s.mu held.
func (s *TaskService) indexOf(taskID int) int {
	for i, t := range s.tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}
