package models

import "time"

// Exercise is a single logged activity owned by a user.
type Exercise struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `json:"user_id" gorm:"index;type:varchar(26);not null"`
	Description string    `json:"description" gorm:"not null"`
	Duration    int       `json:"duration" gorm:"not null"` // minutes
	Date        time.Time `json:"date" gorm:"not null"`
	CreatedAt   time.Time `json:"-"`
}

// LogEntry is the projection of an exercise that appears in a user's log.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// Entry projects the exercise into a log entry with a calendar-day date.
func (e Exercise) Entry() LogEntry {
	return LogEntry{
		Description: e.Description,
		Duration:    e.Duration,
		Date:        FormatDate(e.Date),
	}
}

// ExerciseLog is the filtered, ordered and limited view of a user's exercises.
type ExerciseLog struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"id"`
	Log      []LogEntry `json:"log"`
}

// LoggedExercise is the response body returned after adding an exercise.
// ID is the owning user's id.
type LoggedExercise struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"id"`
}
