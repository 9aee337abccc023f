package domain

import "time"

// User represents an account. PasswordHash never leaves the application
// boundary; outward payloads are built from projection DTOs that have no
// password field at all.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Image        string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
