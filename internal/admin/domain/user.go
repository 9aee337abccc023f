package domain

import "time"

// User is an account as seen from the admin context.
type User struct {
	ID        string
	Name      string
	Email     string
	Image     string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
