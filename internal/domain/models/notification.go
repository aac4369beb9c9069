package models

import "time"

// Notification is an in-memory user-facing notice. Lists are kept
// newest-first and do not survive a restart.
type Notification struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
	Date  time.Time `json:"date"`
}
