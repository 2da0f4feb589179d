package models

// Task represents a to-do item held by the task store.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// NewTask is the payload accepted by POST /tasks.
type NewTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TaskUpdate is the payload accepted by PUT /tasks/{taskID}.
// Completed is a pointer so an explicit false can be told apart from an absent field.
type TaskUpdate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   *bool  `json:"completed"`
}
