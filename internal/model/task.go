package model

// Task is a single entry in a user's task list.
// An occupied task always has a non-empty Description.
type Task struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Completed   bool   `json:"completed"`
}
