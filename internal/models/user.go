package models

import "time"

// User represents a registered exercise tracker account.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(26)"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100);not null"`
	CreatedAt time.Time `json:"-"`
}

// UserSummary is the public projection of a user returned by the API.
type UserSummary struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// Summary projects the user to its public fields.
func (u User) Summary() UserSummary {
	return UserSummary{Username: u.Username, ID: u.ID}
}
